package turing_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const endsInOne = `{
	"initial": 0,
	"final": [1],
	"white": "_",
	"transitions": [
		{"from": 0, "read": "0", "to": 0, "write": "0", "dir": "R"},
		{"from": 0, "read": "1", "to": 1, "write": "1", "dir": "R"}
	]
}`

func newEngine(t *testing.T, opts ...turing.Option) *turing.Engine {
	t.Helper()
	opts = append([]turing.Option{turing.WithLoader(memory.NewLoader(endsInOne, schema.FormatJSON))}, opts...)
	eng, err := turing.New("", opts...)
	require.NoError(t, err)
	return eng
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specifications.json")
	require.NoError(t, os.WriteFile(path, []byte(endsInOne), 0644))

	eng, err := turing.New(path)
	require.NoError(t, err)
	assert.Equal(t, "specifications.json", eng.Name)
	assert.Equal(t, path, eng.Source())
	assert.Len(t, eng.Fingerprint(), 64)

	v, err := eng.Evaluate(context.Background(), "01")
	require.NoError(t, err)
	assert.Equal(t, domain.Accepted, v)
}

func TestNew_Errors(t *testing.T) {
	_, err := turing.New("")
	assert.Error(t, err, "path or loader required")

	_, err = turing.New(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = turing.New("", turing.WithLoader(memory.NewLoader(`{"initial": 0}`, schema.FormatJSON)))
	assert.ErrorIs(t, err, domain.ErrMalformedSpecification)
}

func TestEngine_Evaluate(t *testing.T) {
	eng := newEngine(t)
	ctx := context.Background()

	for word, want := range map[string]domain.Verdict{
		"01":   domain.Accepted,
		"00":   domain.Rejected,
		"0001": domain.Accepted,
		"":     domain.Rejected,
	} {
		got, err := eng.Evaluate(ctx, word)
		require.NoError(t, err)
		assert.Equal(t, want, got, word)
	}
}

func TestEngine_Evaluate_Cancelled(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Evaluate(ctx, "01")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Evaluate_CachesVerdicts(t *testing.T) {
	store := memory.NewStore()
	steps := 0
	hooks := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { steps++ },
	}
	eng := newEngine(t, turing.WithVerdictStore(store), turing.WithLifecycleHooks(hooks))
	ctx := context.Background()

	v, err := eng.Evaluate(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, domain.Accepted, v)
	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, store.Len(eng.Fingerprint()))

	v, err = eng.Evaluate(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, domain.Accepted, v)
	assert.Equal(t, 3, steps, "second evaluation served from the store")
}

type failingStore struct {
	mock.Mock
}

func (s *failingStore) Get(ctx context.Context, machine, word string) (domain.Verdict, error) {
	args := s.Called(machine, word)
	return args.Get(0).(domain.Verdict), args.Error(1)
}

func (s *failingStore) Put(ctx context.Context, machine, word string, verdict domain.Verdict) error {
	return s.Called(machine, word, verdict).Error(0)
}

func (s *failingStore) Forget(ctx context.Context, machine string) error {
	return s.Called(machine).Error(0)
}

func TestEngine_Evaluate_StoreFailureKeepsVerdict(t *testing.T) {
	store := new(failingStore)
	store.On("Get", mock.Anything, "01").Return(domain.Rejected, errors.New("connection refused"))
	store.On("Put", mock.Anything, "01", domain.Accepted).Return(errors.New("connection refused"))

	eng := newEngine(t, turing.WithVerdictStore(store))
	v, err := eng.Evaluate(context.Background(), "01")
	require.NoError(t, err)
	assert.Equal(t, domain.Accepted, v)
	store.AssertExpectations(t)
}

func TestEngine_Trace(t *testing.T) {
	eng := newEngine(t)

	res := eng.Trace(context.Background(), "001")
	assert.Equal(t, domain.Accepted, res.Verdict)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, domain.State(1), res.State)
	assert.Equal(t, 3, res.Head)
	assert.Equal(t, "001", res.Tape)
}
