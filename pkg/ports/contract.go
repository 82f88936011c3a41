package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunVerdictStoreContract runs a suite of tests to verify that a VerdictStore implementation
// adheres to the defined interface contract.
func RunVerdictStoreContract(t *testing.T, store VerdictStore) {
	ctx := context.Background()
	machine := "contract-machine-" + time.Now().Format("20060102150405")
	other := machine + "-other"

	t.Cleanup(func() {
		_ = store.Forget(ctx, machine)
		_ = store.Forget(ctx, other)
	})

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, machine, "01", domain.Accepted))
		require.NoError(t, store.Put(ctx, machine, "00", domain.Rejected))

		v, err := store.Get(ctx, machine, "01")
		require.NoError(t, err)
		assert.Equal(t, domain.Accepted, v)

		v, err = store.Get(ctx, machine, "00")
		require.NoError(t, err)
		assert.Equal(t, domain.Rejected, v)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, machine, "never-stored")
		assert.ErrorIs(t, err, domain.ErrVerdictNotFound)
	})

	t.Run("Empty And Unicode Words", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, machine, "", domain.Accepted))
		require.NoError(t, store.Put(ctx, machine, "αβ:γ", domain.Rejected))

		v, err := store.Get(ctx, machine, "")
		require.NoError(t, err)
		assert.Equal(t, domain.Accepted, v)

		v, err = store.Get(ctx, machine, "αβ:γ")
		require.NoError(t, err)
		assert.Equal(t, domain.Rejected, v)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, machine, "w", domain.Rejected))
		require.NoError(t, store.Put(ctx, machine, "w", domain.Accepted))

		v, err := store.Get(ctx, machine, "w")
		require.NoError(t, err)
		assert.Equal(t, domain.Accepted, v)
	})

	t.Run("Machines Are Isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, other, "01", domain.Rejected))

		v, err := store.Get(ctx, machine, "01")
		require.NoError(t, err)
		assert.Equal(t, domain.Accepted, v)

		v, err = store.Get(ctx, other, "01")
		require.NoError(t, err)
		assert.Equal(t, domain.Rejected, v)
	})

	t.Run("Forget", func(t *testing.T) {
		require.NoError(t, store.Forget(ctx, machine))

		_, err := store.Get(ctx, machine, "01")
		assert.ErrorIs(t, err, domain.ErrVerdictNotFound, "Get after Forget should return ErrVerdictNotFound")

		_, err = store.Get(ctx, other, "01")
		assert.NoError(t, err, "Forget only touches its own machine")
	})
}
