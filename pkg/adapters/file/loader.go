package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/turing/pkg/schema"
)

// Loader implements ports.MachineLoader by reading a JSON or YAML file.
// The format follows the file extension; see schema.FormatFor.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the description file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the file. It is re-read on every call.
func (l *Loader) Load(ctx context.Context) (map[string]any, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine description: %w", err)
	}

	doc, err := schema.Parse(data, schema.FormatFor(l.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(l.path), err)
	}
	return doc, nil
}

// Source returns the file path.
func (l *Loader) Source() string {
	return l.path
}
