package turing_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/schema"
)

// palindromes accepts words over {a, b} that read the same both ways.
// It blanks the outer symbols pair by pair.
var palindromes = schema.Description{
	Initial: 0,
	Final:   []int{9},
	White:   "_",
	Transitions: []schema.Record{
		{From: 0, Read: "a", To: 1, Write: "_", Dir: "R"},
		{From: 0, Read: "b", To: 3, Write: "_", Dir: "R"},
		{From: 0, Read: "_", To: 9, Write: "_", Dir: "R"},
		{From: 1, Read: "a", To: 1, Write: "a", Dir: "R"},
		{From: 1, Read: "b", To: 1, Write: "b", Dir: "R"},
		{From: 1, Read: "_", To: 2, Write: "_", Dir: "L"},
		{From: 2, Read: "a", To: 5, Write: "_", Dir: "L"},
		{From: 2, Read: "_", To: 9, Write: "_", Dir: "L"},
		{From: 3, Read: "a", To: 3, Write: "a", Dir: "R"},
		{From: 3, Read: "b", To: 3, Write: "b", Dir: "R"},
		{From: 3, Read: "_", To: 4, Write: "_", Dir: "L"},
		{From: 4, Read: "b", To: 5, Write: "_", Dir: "L"},
		{From: 4, Read: "_", To: 9, Write: "_", Dir: "R"},
		{From: 5, Read: "a", To: 5, Write: "a", Dir: "L"},
		{From: 5, Read: "b", To: 5, Write: "b", Dir: "L"},
		{From: 5, Read: "_", To: 0, Write: "_", Dir: "R"},
	},
}

// ExampleNew_memory demonstrates how to use the Engine with an in-memory machine description.
// This is useful for testing, embedded scenarios, or when you don't want to rely on the file system.
func ExampleNew_memory() {
	loader, err := memory.NewFromDescription(palindromes)
	if err != nil {
		log.Fatal(err)
	}

	// Note: We leave path empty ("") because we are providing a loader.
	engine, err := turing.New("", turing.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, word := range []string{"abba", "aba", "ab", ""} {
		verdict, err := engine.Evaluate(ctx, word)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%q - %s\n", word, verdict)
	}

	// Output:
	// "abba" - Accepted
	// "aba" - Accepted
	// "ab" - Rejected
	// "" - Accepted
}

// ExampleEngine_Trace shows the final configuration of a rejected word.
func ExampleEngine_Trace() {
	loader, err := memory.NewFromDescription(palindromes)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := turing.New("", turing.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	res := engine.Trace(context.Background(), "ab")
	fmt.Printf("verdict=%s steps=%d state=%d head=%d tape=%q\n", res.Verdict, res.Steps, res.State, res.Head, res.Tape)

	// Output:
	// verdict=Rejected steps=3 state=2 head=1 tape="b"
}
