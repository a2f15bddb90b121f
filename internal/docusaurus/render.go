package docusaurus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/security-e/security-e.github.io/internal/config"
	"github.com/security-e/security-e.github.io/internal/foundation/errors"
)

// Render serializes cfg in the requested format.
func Render(cfg *config.Config, format Format) ([]byte, error) {
	doc := Document(cfg)
	var (
		out []byte
		err error
	)
	switch format {
	case FormatTS:
		out, err = encodeTS(doc)
	case FormatJSON:
		out, err = encodeJSON(doc)
	case FormatYAML:
		out, err = encodeYAML(doc)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unsupported format %q", format)).
			WithContext("format", string(format)).Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryBuild, "failed to render configuration").
			WithContext("format", string(format)).Build()
	}
	return out, nil
}

func encodeJSON(doc Object) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(doc Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# " + generatedHeader + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
