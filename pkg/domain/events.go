package domain

import (
	"context"
)

// StepEvent describes one applied transition.
type StepEvent struct {
	Step       int        `json:"step"` // 1-based
	Read       Symbol     `json:"read"`
	Transition Transition `json:"transition"`
	Head       int        `json:"head"` // head position after the move
}

// HaltEvent describes the end of a simulation.
type HaltEvent struct {
	Verdict Verdict `json:"verdict"`
	Steps   int     `json:"steps"`
	State   State   `json:"state"`
	Head    int     `json:"head"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks never influence the verdict.
type LifecycleHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}

// CombineHooks returns hooks that call each of the given hooks in order.
func CombineHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var steps []func(context.Context, *StepEvent)
	var halts []func(context.Context, *HaltEvent)
	for _, h := range hooks {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnHalt != nil {
			halts = append(halts, h.OnHalt)
		}
	}

	var combined LifecycleHooks
	if len(steps) > 0 {
		combined.OnStep = func(ctx context.Context, e *StepEvent) {
			for _, fn := range steps {
				fn(ctx, e)
			}
		}
	}
	if len(halts) > 0 {
		combined.OnHalt = func(ctx context.Context, e *HaltEvent) {
			for _, fn := range halts {
				fn(ctx, e)
			}
		}
	}
	return combined
}
