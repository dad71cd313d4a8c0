package pipeline

import (
	"context"

	"github.com/tailored-agentic-units/statechain/state"
)

// Step is one unit of work in a pipeline.
type Step interface {
	Name() string

	// Execute derives the next state from current. The returned state must be
	// current itself or one of its descendants.
	Execute(ctx context.Context, current *state.State) (*state.State, error)
}

// Guarded is implemented by steps that only run when their guard holds.
type Guarded interface {
	Applies(current *state.State) bool
}

type funcStep struct {
	name string
	fn   func(context.Context, *state.State) (*state.State, error)
}

// Func wraps a function as a Step.
//
// Example:
//
//	step := pipeline.Func("enrich", func(ctx context.Context, s *state.State) (*state.State, error) {
//	    profile, err := lookup(ctx, s)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return s.Succeed(map[string]any{"profile": profile})
//	})
func Func(name string, fn func(context.Context, *state.State) (*state.State, error)) Step {
	return &funcStep{name: name, fn: fn}
}

func (s *funcStep) Name() string {
	return s.name
}

func (s *funcStep) Execute(ctx context.Context, current *state.State) (*state.State, error) {
	return s.fn(ctx, current)
}

// Assign returns a Step that merges fields into the current state.
func Assign(name string, fields map[string]any) Step {
	return Func(name, func(_ context.Context, current *state.State) (*state.State, error) {
		return current.Succeed(fields)
	})
}

// Finish returns a Step that closes the chain.
func Finish(name string) Step {
	return Func(name, func(_ context.Context, current *state.State) (*state.State, error) {
		return current.Finish()
	})
}

type conditionalStep struct {
	Step
	predicate state.Predicate
}

// When runs step only if predicate holds for the current state; otherwise
// the step is skipped and the state passes through unchanged.
func When(predicate state.Predicate, step Step) Step {
	return &conditionalStep{Step: step, predicate: predicate}
}

func (s *conditionalStep) Applies(current *state.State) bool {
	return s.predicate == nil || s.predicate(current)
}

func (s *conditionalStep) Execute(ctx context.Context, current *state.State) (*state.State, error) {
	if !s.Applies(current) {
		return current, nil
	}
	return s.Step.Execute(ctx, current)
}
