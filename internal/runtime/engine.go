package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// Configuration is the live state of one simulation run.
// It is created per word and never shared.
type Configuration struct {
	State domain.State
	Tape  *Tape
	Head  int
}

// NewConfiguration places the machine in its initial state over a fresh tape.
func NewConfiguration(table *domain.Table, word []domain.Symbol) *Configuration {
	return &Configuration{
		State: table.Initial(),
		Tape:  NewTape(word, table.Blank()),
	}
}

// Result is the outcome of a run together with the final configuration.
type Result struct {
	Verdict domain.Verdict
	Steps   int
	State   domain.State
	Head    int
	Tape    string
}

// Engine executes words against a Transition Table.
// It holds no per-word state, so one Engine may serve concurrent callers.
type Engine struct {
	table  *domain.Table
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers step and halt observers.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the logger used for per-word debug tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine bound to table.
func NewEngine(table *domain.Table, opts ...EngineOption) *Engine {
	e := &Engine{
		table:  table,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the table the engine runs.
func (e *Engine) Table() *domain.Table {
	return e.table
}

// Run simulates word until the machine accepts or gets stuck.
// The loop never observes ctx cancellation; ctx is only handed to the hooks.
// A machine that neither halts nor gets stuck makes Run loop forever.
func (e *Engine) Run(ctx context.Context, word string) Result {
	cfg := NewConfiguration(e.table, domain.SymbolsOf(word))
	steps := 0

	verdict := domain.Accepted
	for !e.table.IsFinal(cfg.State) {
		read := cfg.Tape.Read(cfg.Head)
		tr, ok := e.table.Find(cfg.State, read)
		if !ok {
			verdict = domain.Rejected
			break
		}

		cfg.Tape.Write(cfg.Head, tr.Write)
		cfg.Head += int(tr.Move)
		cfg.State = tr.To
		steps++

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				Step:       steps,
				Read:       read,
				Transition: tr,
				Head:       cfg.Head,
			})
		}
	}

	res := Result{
		Verdict: verdict,
		Steps:   steps,
		State:   cfg.State,
		Head:    cfg.Head,
		Tape:    cfg.Tape.String(),
	}

	e.logger.Debug("word evaluated",
		"word", word,
		"verdict", verdict.String(),
		"steps", steps,
		"state", int(cfg.State),
	)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{
			Verdict: verdict,
			Steps:   steps,
			State:   cfg.State,
			Head:    cfg.Head,
		})
	}
	return res
}

// Run decides word against table with no tracing.
func Run(table *domain.Table, word string) domain.Verdict {
	return NewEngine(table).Run(context.Background(), word).Verdict
}
