package validator

import (
	"fmt"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
)

// Kind classifies a warning.
type Kind string

const (
	KindShadowed        Kind = "shadowed"
	KindNoFinal         Kind = "no-final"
	KindInitialFinal    Kind = "initial-final"
	KindUnreachable     Kind = "unreachable-final"
	KindUnreachableRule Kind = "unreachable-rule"
)

// Warning is a legal but suspicious property of a machine.
type Warning struct {
	Kind    Kind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Message)
}

// Inspect crawls the table starting from the initial state and reports
// shadowed rules, unreachable final states and rules that can never fire.
// Reachability ignores tape contents, so it over-approximates.
func Inspect(table *domain.Table) []Warning {
	var warnings []Warning
	transitions := table.Transitions()

	firstByKey := make(map[domain.Key]int)
	for i, tr := range transitions {
		if j, ok := firstByKey[tr.Key()]; ok {
			warnings = append(warnings, Warning{
				Kind:    KindShadowed,
				Message: fmt.Sprintf("transitions[%d] (%d, %q) is shadowed by transitions[%d]", i, tr.From, tr.Read, j),
			})
			continue
		}
		firstByKey[tr.Key()] = i
	}

	finals := table.Finals()
	if len(finals) == 0 {
		warnings = append(warnings, Warning{Kind: KindNoFinal, Message: "no final states: every word is rejected"})
	}
	if table.IsFinal(table.Initial()) {
		warnings = append(warnings, Warning{
			Kind:    KindInitialFinal,
			Message: fmt.Sprintf("initial state %d is final: every word is accepted", table.Initial()),
		})
	}

	reachable := reachableStates(table)
	for _, s := range finals {
		if !reachable[s] {
			warnings = append(warnings, Warning{
				Kind:    KindUnreachable,
				Message: fmt.Sprintf("final state %d is unreachable from initial state %d", s, table.Initial()),
			})
		}
	}

	var dead []domain.State
	for _, tr := range transitions {
		if (!reachable[tr.From] || table.IsFinal(tr.From)) && !slices.Contains(dead, tr.From) {
			dead = append(dead, tr.From)
		}
	}
	for _, s := range dead {
		warnings = append(warnings, Warning{
			Kind:    KindUnreachableRule,
			Message: fmt.Sprintf("rules from state %d can never fire", s),
		})
	}

	return warnings
}

// reachableStates walks rules breadth-first, never past a final state since
// the machine halts there.
func reachableStates(table *domain.Table) map[domain.State]bool {
	next := make(map[domain.State][]domain.State)
	for i, tr := range table.Transitions() {
		if table.Shadowed(i) {
			continue
		}
		next[tr.From] = append(next[tr.From], tr.To)
	}

	visited := map[domain.State]bool{}
	queue := []domain.State{table.Initial()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		if table.IsFinal(current) {
			continue
		}
		for _, to := range next[current] {
			if !visited[to] {
				queue = append(queue, to)
			}
		}
	}
	return visited
}
