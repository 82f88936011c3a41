package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// Evaluator is the engine surface used by driving adapters (runner, HTTP, MCP).
type Evaluator interface {
	// Evaluate decides one word. It may not return for machines that loop.
	Evaluate(ctx context.Context, word string) (domain.Verdict, error)

	// Table returns the machine being evaluated.
	Table() *domain.Table
}
