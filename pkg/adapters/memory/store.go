package memory

import (
	"context"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.VerdictStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]map[string]domain.Verdict
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]map[string]domain.Verdict),
	}
}

// Get retrieves a verdict from memory.
func (s *Store) Get(ctx context.Context, machine, word string) (domain.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[machine][word]
	if !ok {
		return domain.Rejected, domain.ErrVerdictNotFound
	}
	return v, nil
}

// Put records a verdict in memory.
func (s *Store) Put(ctx context.Context, machine, word string, verdict domain.Verdict) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, ok := s.data[machine]
	if !ok {
		words = make(map[string]domain.Verdict)
		s.data[machine] = words
	}
	words[word] = verdict
	return nil
}

// Forget drops a machine's verdicts.
func (s *Store) Forget(ctx context.Context, machine string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, machine)
	return nil
}

// Len returns the number of verdicts held for machine.
func (s *Store) Len(machine string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[machine])
}
