package state

import "github.com/tailored-agentic-units/statechain/observability"

func (s *State) derive(variant Variant, fields Fields, err error) *State {
	return &State{
		variant:  variant,
		fields:   fields,
		previous: s,
		err:      err,
		observer: s.observer,
	}
}

func (s *State) checkTransition(operation string) error {
	if s.variant != VariantSuccess {
		return &OperationError{Operation: operation, Variant: s.variant}
	}
	return nil
}

// Succeed returns a new Success holding the receiver's fields merged with
// fields. New keys are introduced in sorted order; existing keys keep their
// position and take the new value. The receiver is not modified.
func (s *State) Succeed(fields map[string]any) (*State, error) {
	return s.SucceedWith(sortedFields(fields)...)
}

// SucceedWith is Succeed with ordered fields. A key repeated within fields
// takes its last value.
func (s *State) SucceedWith(fields ...Field) (*State, error) {
	if err := s.checkTransition("succeed"); err != nil {
		return nil, err
	}

	next := s.derive(VariantSuccess, s.fields.with(fields), nil)
	next.emit(EventStateSucceed, observability.LevelVerbose, map[string]any{
		"fields":  next.fields.Len(),
		"updated": len(fields),
	})
	return next, nil
}

// Fail returns a new Failure carrying err and the receiver's fields.
func (s *State) Fail(err error) (*State, error) {
	if terr := s.checkTransition("fail"); terr != nil {
		return nil, terr
	}
	if err == nil {
		return nil, ErrNilFailure
	}

	next := s.derive(VariantFailure, s.fields, err)
	next.emit(EventStateFail, observability.LevelWarning, map[string]any{
		"fields": next.fields.Len(),
		"error":  err.Error(),
	})
	return next, nil
}

// Finish returns a new Finished state carrying the receiver's fields.
func (s *State) Finish() (*State, error) {
	if err := s.checkTransition("finish"); err != nil {
		return nil, err
	}

	next := s.derive(VariantFinished, s.fields, nil)
	next.emit(EventStateFinish, observability.LevelVerbose, map[string]any{
		"fields": next.fields.Len(),
	})
	return next, nil
}
