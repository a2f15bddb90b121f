package docusaurus

import (
	"github.com/security-e/security-e.github.io/internal/foundation/normalization"
)

// Format is a rendering target.
type Format string

const (
	FormatTS   Format = "ts"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTS, FormatJSON, FormatYAML}

var formatNormalizer = normalization.NewNormalizer(map[string]Format{
	"ts":         FormatTS,
	"typescript": FormatTS,
	"json":       FormatJSON,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
}, FormatTS)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithError(raw)
}

// DefaultFilename is the file Render output is written to when no path is given.
func (f Format) DefaultFilename() string {
	return "docusaurus.config." + string(f)
}
