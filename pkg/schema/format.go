package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a description document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything that is not
// .json is read as YAML, which also accepts plain JSON.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Parse reads a document in the given format.
func Parse(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON: %w", domain.ErrMalformedSpecification, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: invalid YAML: %w", domain.ErrMalformedSpecification, err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedSpecification)
	}
	return doc, nil
}

// Marshal renders a description in the given format.
func Marshal(desc Description, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(desc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(desc)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
