package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains the path of one simulated word to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	HaltState     domain.State
	Verdict       domain.Verdict
}

// GenerateMermaid produces a Mermaid state diagram of a Transition Table.
// The initial state is entered from [*] and final states exit to [*].
// Edges are labelled "read/write,dir"; rules shadowed by an earlier rule with
// the same key are omitted since they can never fire.
// It also applies overlay styles (Visited/Halt) if provided.
func GenerateMermaid(table *domain.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&sb, "    [*] --> %s\n", stateID(table.Initial()))

	for i, tr := range table.Transitions() {
		if table.Shadowed(i) {
			continue
		}
		label := fmt.Sprintf("%s/%s,%s", escapeLabel(tr.Read), escapeLabel(tr.Write), tr.Move)
		fmt.Fprintf(&sb, "    %s --> %s : %s\n", stateID(tr.From), stateID(tr.To), label)
	}

	for _, s := range table.Finals() {
		fmt.Fprintf(&sb, "    %s --> [*]\n", stateID(s))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000\n")

		seen := make(map[domain.State]bool)
		for _, s := range overlay.VisitedStates {
			if seen[s] || s == overlay.HaltState {
				continue
			}
			seen[s] = true
			fmt.Fprintf(&sb, "    class %s visited\n", stateID(s))
		}

		haltClass := "rejected"
		if overlay.Verdict == domain.Accepted {
			haltClass = "accepted"
		}
		fmt.Fprintf(&sb, "    class %s %s\n", stateID(overlay.HaltState), haltClass)
	}

	return sb.String()
}

// stateID names a state for Mermaid; negative states are allowed.
func stateID(s domain.State) string {
	if s < 0 {
		return fmt.Sprintf("qm%d", -s)
	}
	return fmt.Sprintf("q%d", s)
}

// escapeLabel encodes characters Mermaid treats as syntax inside labels.
func escapeLabel(sym domain.Symbol) string {
	switch sym {
	case ':', ';', '#', '"', '<', '>':
		return fmt.Sprintf("#%d;", sym)
	case ' ':
		return "␣"
	}
	return sym.String()
}
