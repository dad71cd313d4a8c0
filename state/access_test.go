package state_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/statechain/state"
)

func TestState_FieldAccess(t *testing.T) {
	s := state.Create(map[string]any{"x": 5})

	if !s.Has("x") {
		t.Error("Has(x) = false, want true")
	}
	if s.Has("y") {
		t.Error("Has(y) = true, want false")
	}

	v, err := s.Get("x")
	if err != nil || v != 5 {
		t.Errorf("Get(x) = %v, %v; want 5, nil", v, err)
	}

	_, err = s.Get("y")
	if !errors.Is(err, state.ErrFieldMissing) {
		t.Errorf("Get(y) error = %v, want ErrFieldMissing", err)
	}
	var missing *state.FieldMissingError
	if !errors.As(err, &missing) || missing.Field != "y" {
		t.Errorf("Get(y) error = %#v, want FieldMissingError{y}", err)
	}

	if v, ok := s.Lookup("x"); !ok || v != 5 {
		t.Errorf("Lookup(x) = %v, %v", v, ok)
	}
	if _, ok := s.Lookup("y"); ok {
		t.Error("Lookup(y) should report absent")
	}
}

func TestState_Access(t *testing.T) {
	s := state.Create(map[string]any{"x": 5})

	tests := []struct {
		name         string
		accessor     string
		wantValue    any
		wantMissing  bool
		wantNoSuchOp bool
	}{
		{name: "plain present", accessor: "x", wantValue: 5},
		{name: "plain absent is generic", accessor: "y", wantNoSuchOp: true},
		{name: "probe present", accessor: "x?", wantValue: true},
		{name: "probe absent", accessor: "y?", wantValue: false},
		{name: "strict present", accessor: "x!", wantValue: 5},
		{name: "strict absent is typed", accessor: "y!", wantMissing: true},
		{name: "empty name", accessor: "", wantNoSuchOp: true},
		{name: "bare probe", accessor: "?", wantNoSuchOp: true},
		{name: "bare strict", accessor: "!", wantNoSuchOp: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Access(tt.accessor)

			switch {
			case tt.wantMissing:
				if !errors.Is(err, state.ErrFieldMissing) {
					t.Errorf("Access(%q) error = %v, want ErrFieldMissing", tt.accessor, err)
				}
				if errors.Is(err, state.ErrNoSuchOperation) {
					t.Errorf("Access(%q) typed error should not match ErrNoSuchOperation", tt.accessor)
				}
			case tt.wantNoSuchOp:
				if !errors.Is(err, state.ErrNoSuchOperation) {
					t.Errorf("Access(%q) error = %v, want ErrNoSuchOperation", tt.accessor, err)
				}
				if errors.Is(err, state.ErrFieldMissing) {
					t.Errorf("Access(%q) generic error should not match ErrFieldMissing", tt.accessor)
				}
			default:
				if err != nil {
					t.Fatalf("Access(%q) error = %v", tt.accessor, err)
				}
				if got != tt.wantValue {
					t.Errorf("Access(%q) = %v, want %v", tt.accessor, got, tt.wantValue)
				}
			}
		})
	}
}

func TestState_AccessOnTerminalVariants(t *testing.T) {
	s := state.Create(map[string]any{"x": 5})
	failed := must(s.Fail(errors.New("boom")))

	if v, err := failed.Access("x!"); err != nil || v != 5 {
		t.Errorf("Failure Access(x!) = %v, %v", v, err)
	}

	_, err := failed.Access("y")
	var opErr *state.OperationError
	if !errors.As(err, &opErr) || opErr.Variant != state.VariantFailure {
		t.Errorf("Failure Access(y) error = %#v, want OperationError on Failure", err)
	}

	if v, err := state.None().Access("x?"); err != nil || v != false {
		t.Errorf("root Access(x?) = %v, %v", v, err)
	}
}

func TestFields(t *testing.T) {
	f := state.NewFields(
		state.Field{Key: "b", Value: 1},
		state.Field{Key: "a", Value: []int{1}},
	)

	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	if got := f.String(); got != "b=1, a=[1]" {
		t.Errorf("String() = %q", got)
	}

	pairs := f.Pairs()
	if len(pairs) != 2 || pairs[0].Key != "b" || pairs[1].Key != "a" {
		t.Errorf("Pairs() = %v", pairs)
	}

	other := state.FieldsFromMap(map[string]any{"a": []int{1}, "b": 1})
	if !f.Equal(other) {
		t.Error("Equal() should ignore key order")
	}
	if f.Equal(state.NewFields(state.Field{Key: "b", Value: 1})) {
		t.Error("Equal() should compare lengths")
	}

	var zero state.Fields
	if zero.Len() != 0 || zero.Has("a") || len(zero.Map()) != 0 {
		t.Error("zero Fields should be empty")
	}
}
