package observability

import (
	"context"
	"strings"
)

// NoOpObserver discards every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// MultiObserver forwards each event to several observers, in the order they
// were given.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver drops nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}

// FilterObserver passes events at or above a minimum level, and optionally
// only those whose type starts with one of a set of prefixes, to another
// observer.
//
// Example:
//
//	// pipeline events at INFO and above, state events dropped
//	obs := observability.NewFilterObserver(slogObs, observability.LevelInfo, "pipeline.", "step.")
type FilterObserver struct {
	next     Observer
	minLevel Level
	prefixes []string
}

// NewFilterObserver wraps next. With no prefixes every event type passes the
// type check. A nil next is replaced by NoOpObserver.
func NewFilterObserver(next Observer, minLevel Level, prefixes ...string) *FilterObserver {
	if next == nil {
		next = NoOpObserver{}
	}
	return &FilterObserver{next: next, minLevel: minLevel, prefixes: prefixes}
}

// Accepts reports whether event would be forwarded.
func (f *FilterObserver) Accepts(event Event) bool {
	if event.Level < f.minLevel {
		return false
	}
	if len(f.prefixes) == 0 {
		return true
	}
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(string(event.Type), prefix) {
			return true
		}
	}
	return false
}

func (f *FilterObserver) OnEvent(ctx context.Context, event Event) {
	if f.Accepts(event) {
		f.next.OnEvent(ctx, event)
	}
}
