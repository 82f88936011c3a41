package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		finals   []int
		rules    []domain.Rule
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name:    "Initial And Final Markers",
			initial: 0,
			finals:  []int{1},
			rules:   []domain.Rule{{From: 0, Read: "1", To: 1, Write: "1", Dir: "R"}},
			contains: []string{
				"stateDiagram-v2\n",
				"[*] --> q0\n",
				"q0 --> q1 : 1/1,R\n",
				"q1 --> [*]\n",
			},
		},
		{
			name:    "Shadowed Rules Omitted",
			initial: 0,
			finals:  []int{1},
			rules: []domain.Rule{
				{From: 0, Read: "a", To: 1, Write: "x", Dir: "R"},
				{From: 0, Read: "a", To: 2, Write: "y", Dir: "L"},
			},
			contains: []string{"q0 --> q1 : a/x,R"},
			excludes: []string{"q0 --> q2"},
		},
		{
			name:    "Label Escaping",
			initial: -1,
			finals:  []int{0},
			rules:   []domain.Rule{{From: -1, Read: ":", To: 0, Write: " ", Dir: "L"}},
			contains: []string{
				"[*] --> qm1\n",
				"qm1 --> q0 : #58;/␣,L\n",
			},
		},
		{
			name:    "Overlay",
			initial: 0,
			finals:  []int{2},
			rules: []domain.Rule{
				{From: 0, Read: "a", To: 1, Write: "a", Dir: "R"},
				{From: 1, Read: "a", To: 2, Write: "a", Dir: "R"},
			},
			overlay: &graph.GraphOverlay{
				VisitedStates: []domain.State{0, 1, 0, 2},
				HaltState:     2,
				Verdict:       domain.Accepted,
			},
			contains: []string{
				"class q0 visited\n",
				"class q1 visited\n",
				"class q2 accepted\n",
			},
			excludes: []string{"class q2 visited"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.NewTable(tt.initial, tt.finals, "_", tt.rules)
			require.NoError(t, err)

			got := graph.GenerateMermaid(table, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}
