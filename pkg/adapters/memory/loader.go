package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/pkg/schema"
)

// Loader implements ports.MachineLoader over an in-memory document.
type Loader struct {
	data   []byte
	format schema.Format
}

// NewLoader creates a Loader from raw description data in the given format.
func NewLoader(data string, format schema.Format) *Loader {
	return &Loader{
		data:   []byte(data),
		format: format,
	}
}

// NewFromDescription creates a Loader from a description value.
// This handles serialization automatically, improving DX for tests.
func NewFromDescription(desc schema.Description) (*Loader, error) {
	data, err := schema.Marshal(desc, schema.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal description: %w", err)
	}
	return &Loader{data: data, format: schema.FormatJSON}, nil
}

// Load parses the held document.
func (l *Loader) Load(ctx context.Context) (map[string]any, error) {
	return schema.Parse(l.data, l.format)
}

// Source implements ports.MachineLoader.
func (l *Loader) Source() string {
	return "memory"
}
