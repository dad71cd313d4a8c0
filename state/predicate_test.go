package state_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/statechain/state"
)

func TestPredicates(t *testing.T) {
	s := state.Create(map[string]any{"status": "approved", "tags": []string{"a"}})
	failed := must(s.Fail(errors.New("boom")))
	finished := must(s.Finish())

	tests := []struct {
		name      string
		predicate state.Predicate
		state     *state.State
		want      bool
	}{
		{name: "always", predicate: state.Always(), state: s, want: true},
		{name: "key exists", predicate: state.KeyExists("status"), state: s, want: true},
		{name: "key missing", predicate: state.KeyExists("missing"), state: s, want: false},
		{name: "key equals", predicate: state.KeyEquals("status", "approved"), state: s, want: true},
		{name: "key equals by value", predicate: state.KeyEquals("tags", []string{"a"}), state: s, want: true},
		{name: "key differs", predicate: state.KeyEquals("status", "pending"), state: s, want: false},
		{name: "not", predicate: state.Not(state.KeyExists("missing")), state: s, want: true},
		{name: "and", predicate: state.And(state.KeyExists("status"), state.Successful()), state: s, want: true},
		{name: "and short", predicate: state.And(state.KeyExists("status"), state.Failed()), state: s, want: false},
		{name: "or", predicate: state.Or(state.Failed(), state.Finished()), state: finished, want: true},
		{name: "failed", predicate: state.Failed(), state: failed, want: true},
		{name: "successful on failure", predicate: state.Successful(), state: failed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.predicate(tt.state); got != tt.want {
				t.Errorf("predicate() = %v, want %v", got, tt.want)
			}
		})
	}
}
