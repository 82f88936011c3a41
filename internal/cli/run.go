package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/muesli/termenv"
)

// createOutput opens the results file; swapped in tests.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// RunBatch evaluates every word of the words file and writes one
// "word - Verdict" line per word to the output file, or to stdout for "-".
// Verdicts are coloured only when stdout is a terminal.
func RunBatch(ctx context.Context, opts RunOptions, stdout io.Writer) (summary runner.Summary, err error) {
	session, err := OpenSession(opts.EngineOptions)
	if err != nil {
		return runner.Summary{}, err
	}
	defer session.Close()

	in, err := os.Open(opts.WordsPath)
	if err != nil {
		return runner.Summary{}, fmt.Errorf("failed to open words: %w", err)
	}
	defer in.Close()

	runnerOpts := []runner.Option{
		runner.WithLogger(session.Logger),
		runner.WithConcurrency(opts.Concurrency),
	}

	var out io.Writer = stdout
	if opts.OutputPath != StdoutPath {
		f, cerr := createOutput(opts.OutputPath)
		if cerr != nil {
			return runner.Summary{}, fmt.Errorf("failed to create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("failed to close output: %w", cerr))
			}
		}()
		out = f
	} else if IsTerminal(stdout) {
		runnerOpts = append(runnerOpts, runner.WithFormatter(tui.VerdictFormatter(termenv.ColorProfile())))
	}

	summary, err = runner.NewRunner(runnerOpts...).Run(ctx, session.Engine, in, out)
	if err != nil {
		return summary, err
	}

	session.Logger.Info("batch finished",
		"words", summary.Total,
		"accepted", summary.Accepted,
		"rejected", summary.Rejected,
	)
	return summary, nil
}
