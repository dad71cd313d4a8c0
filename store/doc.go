// Package store persists state chains.
//
// A chain is written as a journal: one Record per non-root state, oldest
// first. Success records carry only the fields their state added or changed,
// so the journal grows with the diffs rather than with full snapshots.
// Decode rebuilds the chain by replaying the records through Create and the
// ordinary transitions, so a decoded chain has the same variants, key order
// and diffs as the original.
//
// Values round-trip through JSON. A decoded chain holds JSON types (json.Number
// for numbers, []any for slices, map[string]any for objects), and the error
// carried by a Failure comes back as a *RecordedError with the original
// message.
//
// # Backends
//
// Store implementations are selected by name through New:
//
//   - "memory": map guarded by a RWMutex; holds the chain itself, not a journal
//   - "file": one file per key under a root directory, written atomically
//   - "badger": embedded BadgerDB, on disk or in memory
//   - "sqlite": a single table in a SQLite database
//
// The badger and sqlite stores hold open handles and implement io.Closer.
//
// Example:
//
//	st, err := store.New(config.StoreConfig{Backend: "file", Path: "/var/lib/chains"})
//	if err != nil {
//	    return err
//	}
//	if err := st.Save(ctx, "order-42", final); err != nil {
//	    return err
//	}
//	restored, err := st.Load(ctx, "order-42")
package store
