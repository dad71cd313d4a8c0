package pipeline

import "github.com/tailored-agentic-units/statechain/state"

// ProgressFunc provides visibility into pipeline progress. Called after each
// executed step that did not fail. Skipped steps do not report progress.
//
// Parameters:
//
//   - completed: Number of steps executed so far (1-indexed)
//   - total: Total number of steps in the pipeline
//   - current: State produced by the step
type ProgressFunc func(completed, total int, current *state.State)
