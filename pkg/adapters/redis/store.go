package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.VerdictStore using Redis.
// Each machine owns one hash keyed by word.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of a machine's verdicts, refreshed on every Put.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for verdict hashes.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "turing:verdicts:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(machine string) string {
	return s.prefix + machine
}

// Get retrieves a verdict from Redis.
func (s *Store) Get(ctx context.Context, machine, word string) (domain.Verdict, error) {
	val, err := s.client.HGet(ctx, s.key(machine), word).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.Rejected, domain.ErrVerdictNotFound
		}
		return domain.Rejected, fmt.Errorf("failed to load from redis: %w", err)
	}

	verdict, err := domain.ParseVerdict(val)
	if err != nil {
		return domain.Rejected, fmt.Errorf("corrupt verdict for %q: %w", word, err)
	}
	return verdict, nil
}

// Put persists a verdict to Redis.
func (s *Store) Put(ctx context.Context, machine, word string, verdict domain.Verdict) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key(machine), word, verdict.String())
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(machine), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Forget removes a machine's verdict hash.
func (s *Store) Forget(ctx context.Context, machine string) error {
	if err := s.client.Del(ctx, s.key(machine)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
