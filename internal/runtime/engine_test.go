package runtime_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, initial int, finals []int, blank string, rules ...domain.Rule) *domain.Table {
	t.Helper()
	table, err := domain.NewTable(initial, finals, blank, rules)
	require.NoError(t, err)
	return table
}

// endsInOne accepts strings over {0,1} ending in "1".
func endsInOne(t *testing.T) *domain.Table {
	return mustTable(t, 0, []int{1}, "_",
		domain.Rule{From: 0, Read: "0", To: 0, Write: "0", Dir: "R"},
		domain.Rule{From: 0, Read: "1", To: 1, Write: "1", Dir: "R"},
	)
}

// evenOnes walks to the end of the word and accepts on blank with an even number of 1s.
func evenOnes(t *testing.T) *domain.Table {
	return mustTable(t, 0, []int{9}, "_",
		domain.Rule{From: 0, Read: "0", To: 0, Write: "0", Dir: "R"},
		domain.Rule{From: 0, Read: "1", To: 1, Write: "1", Dir: "R"},
		domain.Rule{From: 1, Read: "0", To: 1, Write: "0", Dir: "R"},
		domain.Rule{From: 1, Read: "1", To: 0, Write: "1", Dir: "R"},
		domain.Rule{From: 0, Read: "_", To: 9, Write: "_", Dir: "L"},
	)
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		table func(*testing.T) *domain.Table
		word  string
		want  domain.Verdict
	}{
		{"Ends In One Accepts", endsInOne, "01", domain.Accepted},
		{"Ends In Zero Rejects", endsInOne, "00", domain.Rejected},
		{"Stops At First One", endsInOne, "0010", domain.Accepted},
		{"Empty Word Stuck On Blank", endsInOne, "", domain.Rejected},
		{"Even Ones", evenOnes, "0110", domain.Accepted},
		{"Odd Ones", evenOnes, "0111", domain.Rejected},
		{"Even Ones Empty Word", evenOnes, "", domain.Accepted},
		{"Foreign Symbol", evenOnes, "01a", domain.Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.Run(tt.table(t), tt.word))
		})
	}
}

func TestRun_InitialStateFinal(t *testing.T) {
	table := mustTable(t, 0, []int{0}, "_")

	for _, word := range []string{"", "0", "anything"} {
		res := runtime.NewEngine(table).Run(context.Background(), word)
		assert.Equal(t, domain.Accepted, res.Verdict, word)
		assert.Zero(t, res.Steps, "accepted before any step")
	}
}

func TestRun_UnreachableFinal(t *testing.T) {
	table := mustTable(t, 0, []int{5}, "_",
		domain.Rule{From: 0, Read: "a", To: 1, Write: "a", Dir: "R"},
		domain.Rule{From: 1, Read: "a", To: 0, Write: "a", Dir: "R"},
	)

	for _, word := range []string{"", "a", "aa", "aaab", "b"} {
		assert.Equal(t, domain.Rejected, runtime.Run(table, word), word)
	}
}

func TestRun_FirstDeclaredRuleWins(t *testing.T) {
	table := mustTable(t, 0, []int{1}, "_",
		domain.Rule{From: 0, Read: "a", To: 1, Write: "a", Dir: "R"},
		domain.Rule{From: 0, Read: "a", To: 2, Write: "a", Dir: "R"},
	)
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.Accepted, runtime.Run(table, "a"))
	}
}

func TestRun_HeadLeftOfOrigin(t *testing.T) {
	// Step left off the word, write 'x' at -1, come back and accept on reading it.
	table := mustTable(t, 0, []int{3}, "_",
		domain.Rule{From: 0, Read: "a", To: 1, Write: "a", Dir: "L"},
		domain.Rule{From: 1, Read: "_", To: 2, Write: "x", Dir: "L"},
		domain.Rule{From: 2, Read: "_", To: 4, Write: "_", Dir: "R"},
		domain.Rule{From: 4, Read: "x", To: 3, Write: "x", Dir: "R"},
	)

	res := runtime.NewEngine(table).Run(context.Background(), "a")
	assert.Equal(t, domain.Accepted, res.Verdict)
	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, 0, res.Head)
	assert.Equal(t, "xa", res.Tape)
}

func TestRun_HeadRightOfBuffer(t *testing.T) {
	// Write three symbols past the input; the initial buffer only holds one blank.
	table := mustTable(t, 0, []int{4}, "_",
		domain.Rule{From: 0, Read: "_", To: 1, Write: "1", Dir: "R"},
		domain.Rule{From: 1, Read: "_", To: 2, Write: "2", Dir: "R"},
		domain.Rule{From: 2, Read: "_", To: 3, Write: "3", Dir: "L"},
		domain.Rule{From: 3, Read: "2", To: 4, Write: "2", Dir: "R"},
	)

	res := runtime.NewEngine(table).Run(context.Background(), "")
	assert.Equal(t, domain.Accepted, res.Verdict)
	assert.Equal(t, "123", res.Tape)
}

func TestRun_Idempotent(t *testing.T) {
	table := evenOnes(t)
	engine := runtime.NewEngine(table)

	first := engine.Run(context.Background(), "0110")
	second := engine.Run(context.Background(), "0110")
	assert.Equal(t, first, second)

	assert.Equal(t, domain.Rejected, engine.Run(context.Background(), "1").Verdict)
	assert.Equal(t, first, engine.Run(context.Background(), "0110"), "no state leaks between words")
}

func TestRun_Concurrent(t *testing.T) {
	engine := runtime.NewEngine(evenOnes(t))
	words := map[string]domain.Verdict{
		"0110": domain.Accepted,
		"0111": domain.Rejected,
		"11":   domain.Accepted,
		"1":    domain.Rejected,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for word, want := range words {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want, engine.Run(context.Background(), word).Verdict, word)
			}()
		}
	}
	wg.Wait()
}

func TestRun_Hooks(t *testing.T) {
	var steps []domain.StepEvent
	var halts []domain.HaltEvent
	hooks := domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) { steps = append(steps, *e) },
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) { halts = append(halts, *e) },
	}

	traced := runtime.NewEngine(endsInOne(t), runtime.WithLifecycleHooks(hooks))
	res := traced.Run(context.Background(), "01")

	assert.Equal(t, runtime.Run(endsInOne(t), "01"), res.Verdict, "tracing does not change the verdict")
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].Step)
	assert.Equal(t, domain.Symbol('0'), steps[0].Read)
	assert.Equal(t, 1, steps[0].Head)
	assert.Equal(t, domain.State(1), steps[1].Transition.To)
	assert.Equal(t, 2, steps[1].Head)

	require.Len(t, halts, 1)
	assert.Equal(t, domain.HaltEvent{Verdict: domain.Accepted, Steps: 2, State: 1, Head: 2}, halts[0])
}
