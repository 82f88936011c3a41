package ports

import "context"

// MachineLoader defines how the engine retrieves a machine description.
// This allows the storage layer (file, memory) to be decoupled.
type MachineLoader interface {
	// Load returns the raw description document, ready for schema.Compile.
	Load(ctx context.Context) (map[string]any, error)

	// Source names where the description comes from (a path, "memory", ...).
	Source() string
}
