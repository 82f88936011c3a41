package domain

import (
	"fmt"
	"slices"
)

// Table is the Transition Table of a machine.
// It is immutable once built and safe for concurrent readers.
type Table struct {
	initial     State
	finals      map[State]struct{}
	finalList   []State
	blank       Symbol
	transitions []Transition

	// index keeps the first-declared transition for every key.
	index map[Key]int
}

// NewTable builds a Table, inserting rules in declaration order.
// Every malformed field is reported; the returned error matches ErrMalformedSpecification.
func NewTable(initial int, finals []int, blank string, rules []Rule) (*Table, error) {
	var errs []error

	blankSym, err := ParseSymbol("white", blank)
	if err != nil {
		errs = append(errs, err)
	}

	t := &Table{
		initial:     State(initial),
		finals:      make(map[State]struct{}, len(finals)),
		blank:       blankSym,
		transitions: make([]Transition, 0, len(rules)),
		index:       make(map[Key]int, len(rules)),
	}

	for _, f := range finals {
		s := State(f)
		if _, dup := t.finals[s]; dup {
			continue
		}
		t.finals[s] = struct{}{}
		t.finalList = append(t.finalList, s)
	}

	for i, r := range rules {
		prefix := fmt.Sprintf("transitions[%d]", i)
		read, rerr := ParseSymbol(prefix+".read", r.Read)
		write, werr := ParseSymbol(prefix+".write", r.Write)
		dir, derr := ParseDirection(prefix+".dir", r.Dir)
		if rerr != nil || werr != nil || derr != nil {
			for _, e := range []error{rerr, werr, derr} {
				if e != nil {
					errs = append(errs, e)
				}
			}
			continue
		}

		tr := Transition{From: State(r.From), Read: read, To: State(r.To), Write: write, Move: dir}
		if _, taken := t.index[tr.Key()]; !taken {
			t.index[tr.Key()] = len(t.transitions)
		}
		t.transitions = append(t.transitions, tr)
	}

	if err := Collect(errs); err != nil {
		return nil, err
	}
	return t, nil
}

// Find returns the first-declared transition matching (state, symbol).
func (t *Table) Find(state State, symbol Symbol) (Transition, bool) {
	i, ok := t.index[Key{State: state, Symbol: symbol}]
	if !ok {
		return Transition{}, false
	}
	return t.transitions[i], true
}

// IsFinal reports whether state belongs to the final-state set.
func (t *Table) IsFinal(state State) bool {
	_, ok := t.finals[state]
	return ok
}

// Initial returns the initial state.
func (t *Table) Initial() State { return t.initial }

// Blank returns the blank symbol.
func (t *Table) Blank() Symbol { return t.blank }

// Finals returns the final states in declaration order, without duplicates.
func (t *Table) Finals() []State {
	return slices.Clone(t.finalList)
}

// Transitions returns every declared transition, shadowed duplicates included.
func (t *Table) Transitions() []Transition {
	return slices.Clone(t.transitions)
}

// Shadowed reports whether the i-th declared transition can never fire
// because an earlier one has the same key.
func (t *Table) Shadowed(i int) bool {
	if i < 0 || i >= len(t.transitions) {
		return false
	}
	return t.index[t.transitions[i].Key()] != i
}

// States returns every state mentioned by the table, sorted.
func (t *Table) States() []State {
	seen := map[State]struct{}{t.initial: {}}
	for s := range t.finals {
		seen[s] = struct{}{}
	}
	for _, tr := range t.transitions {
		seen[tr.From] = struct{}{}
		seen[tr.To] = struct{}{}
	}
	states := make([]State, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	slices.Sort(states)
	return states
}
