package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tailored-agentic-units/statechain/config"
	"github.com/tailored-agentic-units/statechain/observability"
	"github.com/tailored-agentic-units/statechain/state"
)

// Result contains the outcome of a pipeline run.
type Result struct {
	// Final is the last state of the chain (Success, Failure or Finished)
	Final *state.State

	// Steps is the number of steps executed, including a step that failed
	Steps int

	// Skipped is the number of guarded steps whose guard did not hold
	Skipped int

	// Diffs is Final's history, newest first.
	// Only populated when PipelineConfig.CaptureHistory is true.
	Diffs []state.Diff
}

// Run executes steps in order, starting from initial.
//
// Observer Integration:
//
// Emits events through the observer named by cfg.Observer, filtered by
// cfg.Level:
//   - EventPipelineStart: Before the first step
//   - EventStepStart / EventStepComplete: Around each executed step
//   - EventStepSkip: For each guarded step whose guard did not hold
//   - EventPipelineComplete: When the run ends, successfully or not
//
// A step error turns the current state into a Failure and ends the run
// without returning an error. See the package documentation.
func Run(
	ctx context.Context,
	cfg config.PipelineConfig,
	initial *state.State,
	steps []Step,
	progress ProgressFunc,
) (Result, error) {
	observer, err := observability.Resolve(cfg.Observer, cfg.Level)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve observer: %w", err)
	}

	result := Result{Final: initial}
	r := &run{ctx: ctx, cfg: cfg, observer: observer}

	if initial == nil || !initial.IsSuccessful() {
		return r.stop(result, initial, ErrInvalidInitial)
	}

	r.emit(EventPipelineStart, observability.LevelInfo, map[string]any{
		"step_count":            len(steps),
		"has_progress_callback": progress != nil,
		"max_steps":             cfg.MaxSteps,
	})

	current := initial

	for i, step := range steps {
		if cfg.MaxSteps > 0 && result.Steps >= cfg.MaxSteps {
			return r.stop(result, current, &StepError{Index: i, Step: step.Name(), State: current, Err: ErrMaxSteps})
		}

		if err := ctx.Err(); err != nil {
			return r.stop(result, current, &StepError{Index: i, Step: step.Name(), State: current, Err: err})
		}

		if guarded, ok := step.(Guarded); ok && !guarded.Applies(current) {
			result.Skipped++
			r.emit(EventStepSkip, observability.LevelVerbose, map[string]any{
				"step_index": i,
				"step":       step.Name(),
			})
			continue
		}

		r.emit(EventStepStart, observability.LevelVerbose, map[string]any{
			"step_index": i,
			"step":       step.Name(),
		})

		next, err := step.Execute(ctx, current)
		result.Steps++

		if err != nil {
			failed, ferr := current.Fail(err)
			if ferr != nil {
				return r.stop(result, current, &StepError{Index: i, Step: step.Name(), State: current, Err: ferr})
			}
			current = failed

			r.emit(EventStepComplete, observability.LevelWarning, map[string]any{
				"step_index": i,
				"step":       step.Name(),
				"error":      err.Error(),
			})
			break
		}

		if next == nil || !next.Descends(current) {
			return r.stop(result, current, &StepError{Index: i, Step: step.Name(), State: current, Err: ErrDetachedState})
		}
		current = next

		r.emit(EventStepComplete, observability.LevelVerbose, map[string]any{
			"step_index": i,
			"step":       step.Name(),
			"diff":       current.Diff().Kind().String(),
		})

		if progress != nil {
			progress(result.Steps, len(steps), current)
		}

		if current.IsTerminal() {
			break
		}
	}

	if cfg.FinishOnComplete && current.IsSuccessful() {
		finished, err := current.Finish()
		if err != nil {
			return r.stop(result, current, err)
		}
		current = finished
	}

	result.Final = current
	if cfg.CaptureHistory {
		result.Diffs = slices.Collect(current.History())
	}

	r.emit(EventPipelineComplete, observability.LevelInfo, map[string]any{
		"steps_completed": result.Steps,
		"steps_skipped":   result.Skipped,
		"variant":         current.Variant().String(),
		"error":           false,
	})

	return result, nil
}

type run struct {
	ctx      context.Context
	cfg      config.PipelineConfig
	observer observability.Observer
}

func (r *run) emit(eventType observability.EventType, level observability.Level, data map[string]any) {
	data["pipeline"] = r.cfg.Name
	r.observer.OnEvent(r.ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "pipeline.Run",
		Data:      data,
	})
}

func (r *run) stop(result Result, current *state.State, err error) (Result, error) {
	result.Final = current

	variant := "nil"
	if current != nil {
		variant = current.Variant().String()
	}

	r.emit(EventPipelineComplete, observability.LevelError, map[string]any{
		"steps_completed": result.Steps,
		"steps_skipped":   result.Skipped,
		"variant":         variant,
		"error":           true,
		"reason":          err.Error(),
	})

	return result, err
}
