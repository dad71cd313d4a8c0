package pipeline

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/statechain/state"
)

// Sentinel errors for pipeline execution.
var (
	ErrInvalidInitial = errors.New("initial state must be a non-nil Success")
	ErrDetachedState  = errors.New("step returned a state that does not descend from its input")
	ErrMaxSteps       = errors.New("max steps reached")
)

// StepError provides context for a pipeline that stopped before completing.
//
// Example usage:
//
//	result, err := pipeline.Run(ctx, cfg, initial, steps, nil)
//	var stepErr *pipeline.StepError
//	if errors.As(err, &stepErr) {
//	    fmt.Printf("stopped at step %d (%s)\n", stepErr.Index, stepErr.Step)
//	}
type StepError struct {
	// Index is the 0-based position of the step in the pipeline
	Index int

	// Step is the step name
	Step string

	// State is the current state when the pipeline stopped
	State *state.State

	// Err is the underlying error
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("pipeline stopped at step %d (%s): %v", e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
