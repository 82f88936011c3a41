package domain

// State identifies a machine state. States carry no meaning beyond
// membership in the final-state set.
type State int

// Key is the lookup key of a transition.
type Key struct {
	State  State
	Symbol Symbol
}

// Transition defines one rule of the machine.
type Transition struct {
	From  State
	Read  Symbol
	To    State
	Write Symbol
	Move  Direction
}

// Key returns the (From, Read) pair the rule matches on.
func (t Transition) Key() Key {
	return Key{State: t.From, Symbol: t.Read}
}

// Rule is a raw transition record as found in a machine description,
// before its symbol and direction fields are validated.
type Rule struct {
	From  int
	Read  string
	To    int
	Write string
	Dir   string
}
