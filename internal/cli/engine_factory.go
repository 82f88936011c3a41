package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
)

// Session bundles an engine with the resources it holds.
type Session struct {
	Engine *turing.Engine
	Logger *slog.Logger

	closers []io.Closer
}

// Close releases the verdict store and the log file.
func (s *Session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenSession initializes an engine with standard CLI conventions:
// logger, debug hooks and an optional Redis verdict cache.
// Extra hooks run after the debug hooks.
func OpenSession(opts EngineOptions, extra ...domain.LifecycleHooks) (*Session, error) {
	logger, logCloser, err := createLogger(opts.Debug, opts.LogFile)
	if err != nil {
		return nil, err
	}
	s := &Session{Logger: logger, closers: []io.Closer{logCloser}}

	engineOpts := []turing.Option{turing.WithLogger(logger)}
	hooks := make([]domain.LifecycleHooks, 0, len(extra)+1)
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}

	if opts.RedisAddr != "" {
		store := redis.New(opts.RedisAddr, "", 0, redis.WithTTL(opts.CacheTTL))
		s.closers = append(s.closers, store)
		engineOpts = append(engineOpts, turing.WithVerdictStore(store))
		logger.Debug("verdict cache enabled", "redis", opts.RedisAddr, "ttl", opts.CacheTTL)
	}

	hooks = append(hooks, extra...)
	engineOpts = append(engineOpts, turing.WithLifecycleHooks(domain.CombineHooks(hooks...)))

	engine, err := turing.New(opts.MachinePath, engineOpts...)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	s.Engine = engine
	return s, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step",
				"step", e.Step,
				"state", e.Transition.From,
				"read", e.Read,
				"to", e.Transition.To,
				"write", e.Transition.Write,
				"dir", e.Transition.Move,
				"head", e.Head,
			)
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			logger.Debug("Halt", "verdict", e.Verdict, "steps", e.Steps, "state", e.State, "head", e.Head)
		},
	}
}
