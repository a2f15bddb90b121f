package docusaurus

import (
	"bytes"
	stdErrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/security-e/security-e.github.io/internal/foundation/errors"
)

// WriteFile replaces path with data through a temporary file and rename.
// It reports false without touching the file when the content is unchanged.
func WriteFile(path string, data []byte) (bool, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false, errors.FileSystemError("output path is a directory").
			WithContext("path", path).Build()
	}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, data):
		return false, nil
	case err != nil && !stdErrors.Is(err, fs.ErrNotExist):
		return false, errors.WrapError(err, errors.CategoryFileSystem, "read existing output").
			WithContext("path", path).Build()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return false, errors.WrapError(err, errors.CategoryFileSystem, "ensure output directory").
				WithContext("path", dir).Build()
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "write temp output").
			WithContext("path", tmp).Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, errors.WrapError(err, errors.CategoryFileSystem, "atomic rename output").
			WithContext("path", path).Build()
	}
	return true, nil
}
