package validator

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(warnings []Warning) []Kind {
	var out []Kind
	for _, w := range warnings {
		out = append(out, w.Kind)
	}
	return out
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		finals  []int
		rules   []domain.Rule
		want    []Kind
	}{
		{
			name:    "Clean Machine",
			initial: 0,
			finals:  []int{1},
			rules: []domain.Rule{
				{From: 0, Read: "0", To: 0, Write: "0", Dir: "R"},
				{From: 0, Read: "1", To: 1, Write: "1", Dir: "R"},
			},
			want: nil,
		},
		{
			name:    "Shadowed Rule",
			initial: 0,
			finals:  []int{1},
			rules: []domain.Rule{
				{From: 0, Read: "1", To: 1, Write: "1", Dir: "R"},
				{From: 0, Read: "1", To: 0, Write: "1", Dir: "R"},
			},
			want: []Kind{KindShadowed},
		},
		{
			name:    "No Finals",
			initial: 0,
			finals:  nil,
			rules:   []domain.Rule{{From: 0, Read: "a", To: 0, Write: "a", Dir: "R"}},
			want:    []Kind{KindNoFinal},
		},
		{
			name:    "Initial Is Final",
			initial: 0,
			finals:  []int{0},
			want:    []Kind{KindInitialFinal},
		},
		{
			name:    "Unreachable Final And Dead Rules",
			initial: 0,
			finals:  []int{9},
			rules: []domain.Rule{
				{From: 0, Read: "a", To: 1, Write: "a", Dir: "R"},
				{From: 5, Read: "a", To: 9, Write: "a", Dir: "R"},
			},
			want: []Kind{KindUnreachable, KindUnreachableRule},
		},
		{
			name:    "Rules Past A Final Never Fire",
			initial: 0,
			finals:  []int{1},
			rules: []domain.Rule{
				{From: 0, Read: "a", To: 1, Write: "a", Dir: "R"},
				{From: 1, Read: "a", To: 2, Write: "a", Dir: "R"},
			},
			want: []Kind{KindUnreachableRule},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.NewTable(tt.initial, tt.finals, "_", tt.rules)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(Inspect(table)))
		})
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: KindNoFinal, Message: "no final states"}
	assert.Equal(t, "[no-final] no final states", w.String())
}
