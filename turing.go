package turing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/schema"
)

// Result is the outcome of a traced run: verdict, step count and final configuration.
type Result = runtime.Result

// Engine is the high-level entry point for the simulator.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	table       *domain.Table
	loader      ports.MachineLoader
	store       ports.VerdictStore
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	fingerprint string
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom MachineLoader, bypassing the default file loader.
func WithLoader(l ports.MachineLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithVerdictStore enables verdict caching.
func WithVerdictStore(store ports.VerdictStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// New loads and compiles a machine description.
// By default, it reads the JSON or YAML file at path.
// If WithLoader option is provided, path can be empty and only labels the engine.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		eng.loader = file.NewLoader(path)
	}
	if path != "" {
		eng.Name = filepath.Base(path)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("machine", eng.Name)
	}

	doc, err := eng.loader.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load machine from %s: %w", eng.loader.Source(), err)
	}

	table, err := schema.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid machine %s: %w", eng.loader.Source(), err)
	}

	eng.table = table
	eng.fingerprint = schema.Fingerprint(table)
	eng.runtime = runtime.NewEngine(table,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)

	eng.logger.Debug("machine loaded",
		"source", eng.loader.Source(),
		"transitions", len(table.Transitions()),
		"fingerprint", eng.fingerprint[:12],
	)
	return eng, nil
}

// Evaluate decides word. With a verdict store configured, known words skip the
// simulation; store failures are logged and never change the verdict.
// The only error is ctx's, checked before the simulation starts.
func (e *Engine) Evaluate(ctx context.Context, word string) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rejected, err
	}

	if e.store != nil {
		verdict, err := e.store.Get(ctx, e.fingerprint, word)
		if err == nil {
			return verdict, nil
		}
		if !errors.Is(err, domain.ErrVerdictNotFound) {
			e.logger.Warn("verdict store lookup failed", "word", word, "err", err)
		}
	}

	verdict := e.runtime.Run(ctx, word).Verdict

	if e.store != nil {
		if err := e.store.Put(ctx, e.fingerprint, word, verdict); err != nil {
			e.logger.Warn("verdict store save failed", "word", word, "err", err)
		}
	}
	return verdict, nil
}

// Trace runs word without consulting the verdict store and returns the full result.
func (e *Engine) Trace(ctx context.Context, word string) Result {
	return e.runtime.Run(ctx, word)
}

// Table returns the compiled Transition Table.
func (e *Engine) Table() *domain.Table {
	return e.table
}

// Fingerprint identifies the machine's behaviour; it namespaces cached verdicts.
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}

// Source names where the machine was loaded from.
func (e *Engine) Source() string {
	return e.loader.Source()
}
