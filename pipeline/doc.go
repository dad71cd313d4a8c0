// Package pipeline runs composable steps over a state chain.
//
// Each step receives the current state and returns a state derived from it.
// Run threads the result of one step into the next, so the final state's
// History describes what every step changed:
//
//	steps := []pipeline.Step{
//	    pipeline.Assign("load", map[string]any{"user": "alice"}),
//	    pipeline.Func("score", func(ctx context.Context, s *state.State) (*state.State, error) {
//	        return s.Succeed(map[string]any{"score": 42})
//	    }),
//	    pipeline.When(state.KeyEquals("score", 42), pipeline.Finish("done")),
//	}
//
//	result, err := pipeline.Run(ctx, config.DefaultPipelineConfig("ingest"), state.Create(nil), steps, nil)
//
// # Failures
//
// A step that returns an error does not abort Run with that error. The
// current state is transitioned with Fail, Run stops, and the Failure is
// returned as Result.Final; Resolve on it returns the step's error. Run itself
// only returns an error for problems with the pipeline: an invalid initial
// state, an unknown observer, cancellation, the step limit, or a step that
// returns a state outside the current chain.
//
// # Terminal States
//
// Run stops as soon as the current state is terminal (Failure or Finished).
// With FinishOnComplete set, a state that is still successful after the last
// step is closed with Finish.
package pipeline
