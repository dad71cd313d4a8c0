package state

import (
	"context"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/statechain/observability"
)

// State is an immutable snapshot of fields linked to the state that produced
// it.
//
// States are only obtained from Create, None, and the transitions Succeed,
// Fail and Finish. The zero value is not usable. A State is safe for
// concurrent reads.
type State struct {
	variant  Variant
	fields   Fields
	previous *State
	err      error
	observer observability.Observer

	diffOnce sync.Once
	diff     Diff
}

var root = newRoot()

func newRoot() *State {
	s := &State{
		variant:  VariantNone,
		observer: observability.NoOpObserver{},
	}
	s.previous = s
	return s
}

// None returns the root sentinel shared by every chain. Its predecessor is
// itself and it holds no fields.
func None() *State {
	return root
}

// Create builds a new chain. Keys from fields are introduced in sorted order;
// use CreateWith to control the order. The returned Success has the root as
// its predecessor.
//
// Example:
//
//	s := state.Create(map[string]any{"user": "alice"}, state.WithIdentifier("run_id"))
//	id, _ := s.Get("run_id")
func Create(fields map[string]any, opts ...Option) *State {
	return CreateWith(sortedFields(fields), opts...)
}

// CreateWith builds a new chain from ordered fields.
//
// When WithIdentifier is set, the generated UUID is the first field; a
// caller-supplied value for the same key replaces it.
func CreateWith(fields []Field, opts ...Option) *State {
	o := resolveOptions(opts)

	initial := make([]Field, 0, len(fields)+1)
	if o.identifier != "" {
		initial = append(initial, Field{Key: o.identifier, Value: uuid.New().String()})
	}
	initial = append(initial, fields...)

	s := &State{
		variant:  VariantSuccess,
		fields:   NewFields(initial...),
		previous: root,
		observer: o.observer,
	}

	data := map[string]any{"fields": s.fields.Len()}
	if o.identifier != "" {
		data["identifier"] = o.identifier
	}
	s.emit(EventStateCreate, observability.LevelVerbose, data)

	return s
}

func (s *State) emit(eventType observability.EventType, level observability.Level, data map[string]any) {
	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "state",
		Data:      data,
	})
}

func (s *State) Variant() Variant {
	return s.variant
}

// Previous returns the predecessor. The root returns itself.
func (s *State) Previous() *State {
	return s.previous
}

// Err returns the error stored by Fail, or nil for any other variant.
func (s *State) Err() error {
	return s.err
}

func (s *State) IsSuccessful() bool {
	return s.variant == VariantSuccess
}

func (s *State) IsFailed() bool {
	return s.variant == VariantFailure
}

func (s *State) IsFinished() bool {
	return s.variant == VariantFinished
}

func (s *State) IsRoot() bool {
	return s.variant == VariantNone
}

// IsTerminal reports whether no further transition is possible.
func (s *State) IsTerminal() bool {
	return s.variant.Terminal()
}

// Resolve returns the receiver, or the stored error unchanged when the
// receiver is a Failure.
//
// Example:
//
//	final, err := result.Resolve()
//	if errors.Is(err, io.EOF) { ... }
func (s *State) Resolve() (*State, error) {
	if s.variant == VariantFailure {
		return s, s.err
	}
	return s, nil
}

// Fields returns the state's field mapping.
func (s *State) Fields() Fields {
	return s.fields
}

// Keys returns the keys in the order they were first introduced in the chain.
func (s *State) Keys() []string {
	return s.fields.Keys()
}

// Entries yields key/value pairs in insertion order.
func (s *State) Entries() iter.Seq2[string, any] {
	return s.fields.All()
}

// Len returns the number of fields.
func (s *State) Len() int {
	return s.fields.Len()
}

// String renders the variant name and its fields, for example
// "Success(a=1, b=2)" or "Failure(a=1; error=boom)".
func (s *State) String() string {
	var b strings.Builder
	b.WriteString(s.variant.String())
	b.WriteByte('(')
	b.WriteString(s.fields.String())
	if s.variant == VariantFailure {
		if s.fields.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString("error=")
		if s.err != nil {
			b.WriteString(s.err.Error())
		}
	}
	b.WriteByte(')')
	return b.String()
}
