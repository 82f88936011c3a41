package cli

import (
	"context"
	"io"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
)

// GraphOptions configures the graph command.
type GraphOptions struct {
	EngineOptions
	// Word, when Trace is set, is simulated and its path highlighted.
	Word  string
	Trace bool
}

// Graph writes the Mermaid diagram of the machine to w.
func Graph(ctx context.Context, opts GraphOptions, w io.Writer) error {
	var visited []domain.State
	recorder := domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			visited = append(visited, e.Transition.From)
		},
	}

	session, err := OpenSession(opts.EngineOptions, recorder)
	if err != nil {
		return err
	}
	defer session.Close()

	var overlay *graph.GraphOverlay
	if opts.Trace {
		result := session.Engine.Trace(ctx, opts.Word)
		overlay = &graph.GraphOverlay{
			VisitedStates: visited,
			HaltState:     result.State,
			Verdict:       result.Verdict,
		}
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(session.Engine.Table(), overlay))
	return err
}
