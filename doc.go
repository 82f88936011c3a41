/*
Package turing is a deterministic, single-tape Turing machine simulator.

A machine is described declaratively (initial state, final states, blank symbol
and an ordered list of transitions) and compiled once into an immutable
Transition Table. Every word is then decided against that table on a fresh tape:
the machine accepts as soon as it enters a final state and rejects as soon as no
transition applies.

# Concept

The Transition Table and the Execution Engine form the core; everything else
(loading descriptions, reading word lists, writing results, caching verdicts,
serving HTTP or MCP) is an adapter around it. The table is read-only, so a single
Engine may evaluate many words concurrently.

A machine whose transitions never reach a final state and never run out of
applicable rules loops forever on that word. This is automaton semantics, not an
engine defect; the engine imposes no step limit.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/turing"
	)

	func main() {
		eng, err := turing.New("specifications.json")
		if err != nil {
			log.Fatal(err)
		}

		for _, word := range []string{"01", "00"} {
			verdict, err := eng.Evaluate(context.Background(), word)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s - %s\n", word, verdict)
		}
	}
*/
package turing
