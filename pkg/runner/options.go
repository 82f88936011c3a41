package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithConcurrency sets how many words are evaluated at once.
// Values below 1 mean sequential evaluation.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.Concurrency = n
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithFormatter replaces FormatResult, e.g. to colour verdicts on a terminal.
func WithFormatter(f Formatter) Option {
	return func(r *Runner) {
		r.Format = f
	}
}
