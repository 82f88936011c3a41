package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Runner evaluates word lists.
type Runner struct {
	Concurrency int
	Logger      *slog.Logger
	Format      Formatter
}

// Summary counts the verdicts of one run.
type Summary struct {
	Total    int
	Accepted int
	Rejected int
}

func (s *Summary) add(v domain.Verdict) {
	s.Total++
	if v == domain.Accepted {
		s.Accepted++
	} else {
		s.Rejected++
	}
}

// NewRunner creates a sequential Runner writing plain result lines.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Concurrency: 1,
		Format:      FormatResult,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Format == nil {
		r.Format = FormatResult
	}
	return r
}

// Run reads every word from in, evaluates it and writes one result line per
// word to out, in input order.
func (r *Runner) Run(ctx context.Context, eval ports.Evaluator, in io.Reader, out io.Writer) (Summary, error) {
	words, err := ReadWords(in)
	if err != nil {
		return Summary{}, err
	}
	r.Logger.Info("evaluating words", "count", len(words), "concurrency", r.Concurrency)

	if r.Concurrency <= 1 {
		return r.runSequential(ctx, eval, words, out)
	}
	return r.runParallel(ctx, eval, words, out)
}

// runSequential streams results as soon as each word is decided.
func (r *Runner) runSequential(ctx context.Context, eval ports.Evaluator, words []string, out io.Writer) (Summary, error) {
	var summary Summary
	for _, word := range words {
		verdict, err := eval.Evaluate(ctx, word)
		if err != nil {
			return summary, fmt.Errorf("evaluate %q: %w", word, err)
		}
		if err := r.write(out, word, verdict); err != nil {
			return summary, err
		}
		summary.add(verdict)
	}
	return summary, nil
}

func (r *Runner) runParallel(ctx context.Context, eval ports.Evaluator, words []string, out io.Writer) (Summary, error) {
	verdicts := make([]domain.Verdict, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)
	for i, word := range words {
		g.Go(func() error {
			v, err := eval.Evaluate(gctx, word)
			if err != nil {
				return fmt.Errorf("evaluate %q: %w", word, err)
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i, word := range words {
		if err := r.write(out, word, verdicts[i]); err != nil {
			return summary, err
		}
		summary.add(verdicts[i])
	}
	return summary, nil
}

func (r *Runner) write(out io.Writer, word string, verdict domain.Verdict) error {
	if _, err := fmt.Fprintln(out, r.Format(word, verdict)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
