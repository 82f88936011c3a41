package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FromDescription(t *testing.T) {
	desc := schema.Description{
		Initial: 0,
		Final:   []int{1},
		White:   "_",
		Transitions: []schema.Record{
			{From: 0, Read: "a", To: 1, Write: "b", Dir: "R"},
		},
	}
	loader, err := memory.NewFromDescription(desc)
	require.NoError(t, err)
	assert.Equal(t, "memory", loader.Source())

	doc, err := loader.Load(context.Background())
	require.NoError(t, err)

	table, err := schema.Compile(doc)
	require.NoError(t, err)
	assert.Equal(t, desc, schema.FromTable(table))
}

func TestLoader_Malformed(t *testing.T) {
	loader := memory.NewLoader("initial: [", schema.FormatYAML)
	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedSpecification)
}
