package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// VerdictStore remembers verdicts so repeated words skip simulation.
// Verdicts are namespaced by machine fingerprint; a verdict only depends on
// the machine and the word, so entries never go stale.
type VerdictStore interface {
	// Get returns domain.ErrVerdictNotFound if the word was never stored.
	Get(ctx context.Context, machine, word string) (domain.Verdict, error)

	// Put records the verdict of word for machine.
	Put(ctx context.Context, machine, word string, verdict domain.Verdict) error

	// Forget drops every verdict stored for machine.
	Forget(ctx context.Context, machine string) error
}
