/*
Package domain contains the core models of the Turing machine simulator.

It defines the automaton itself (Symbols, States, Transitions and the immutable
Transition Table) together with the Verdict produced by a simulation and the
events emitted while one runs. This package is kept pure and free of external
dependencies like I/O or persistence; loading a machine description and running
the machine live elsewhere.

# Key Entities

  - Symbol: a single tape cell value, including the reserved blank symbol.
  - Transition: a (state, symbol) -> (state, symbol, direction) rule.
  - Table: the read-only rule set plus initial state, final states and blank symbol.
  - Verdict: Accepted or Rejected.
  - LifecycleHooks: optional per-step and per-halt observers.
*/
package domain
