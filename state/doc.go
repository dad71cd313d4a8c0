// Package state provides an immutable, linked history of key-value snapshots.
//
// Every State is derived from exactly one predecessor and never changes after
// construction. Transitions allocate a new State that points back at the one
// that produced it, so a chain of states doubles as a full execution history.
//
// # Variants
//
// A State is one of four variants:
//
//   - None: the process-wide root sentinel; empty, its own predecessor
//   - Success: a live state that accepts further transitions
//   - Failure: a terminal state carrying an error
//   - Finished: a terminal state closed to further transitions
//
// Create is the only entry point into a chain. It returns a Success whose
// predecessor is the root:
//
//	s := state.Create(map[string]any{"user": "alice"})
//	s, err := s.Succeed(map[string]any{"count": 1})
//	done, err := s.Finish()
//
// Succeed, Fail and Finish are only defined on Success. On any other variant
// they return an *OperationError matching ErrNoSuchOperation.
//
// # Fields
//
// Keys are never removed: a successor's key set is always a superset of its
// predecessor's. Keys enumerate in the order they were first introduced
// anywhere in the chain. Field access comes in three strengths:
//
//	s.Has("user")        // presence, never fails
//	s.Get("user")        // *FieldMissingError when absent
//	s.Access("user?")    // same as Has
//	s.Access("user!")    // same as Get
//	s.Access("user")     // *OperationError when absent
//
// # Diffs
//
// Diff reports what changed between a state and its predecessor:
//
//	d := s.Diff()
//	d.Added()    // keys first introduced by s
//	d.Changed()  // keys whose value changed, as Change{Current, Previous}
//
// History walks the chain newest first and yields one Diff per non-root state.
// Failure and Finished short-circuit to DiffFailed and DiffFinished without
// comparing fields.
//
// # Concurrency
//
// States are immutable, so concurrent reads are safe as long as the stored
// values are themselves safe to read concurrently. Nothing in this package
// blocks or performs I/O.
package state
