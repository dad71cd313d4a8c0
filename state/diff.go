package state

import "fmt"

// DiffKind tags the outcome of comparing a state with its predecessor.
type DiffKind uint8

const (
	DiffCreated DiffKind = iota + 1
	DiffChanged
	DiffUnchanged
	DiffFailed
	DiffFinished
)

func (k DiffKind) String() string {
	switch k {
	case DiffCreated:
		return "Created"
	case DiffChanged:
		return "Changed"
	case DiffUnchanged:
		return "Unchanged"
	case DiffFailed:
		return "Failed"
	case DiffFinished:
		return "Finished"
	default:
		return fmt.Sprintf("DiffKind(%d)", k)
	}
}

// Diff is the difference between a state and its predecessor. Diffs are
// values: compare them with Equal or by Kind.
type Diff struct {
	kind    DiffKind
	added   Fields
	changed Changes
	err     error
}

var (
	unchanged = Diff{kind: DiffUnchanged}
	finished  = Diff{kind: DiffFinished}
)

// Unchanged returns the diff of a state whose fields equal its predecessor's.
func Unchanged() Diff {
	return unchanged
}

// FinishedMarker returns the diff of every Finished state.
func FinishedMarker() Diff {
	return finished
}

// ComputeDiff compares current with previous:
//
//   - a Failure current yields DiffFailed with the stored error
//   - a Finished current yields DiffFinished
//   - otherwise keys only in current are added, keys in both whose values
//     differ are changed; against the root the result is always DiffCreated,
//     elsewhere DiffUnchanged when nothing was added or changed and
//     DiffChanged otherwise
//
// Keys present only in previous are ignored. A nil previous is treated as the
// root.
func ComputeDiff(current, previous *State) Diff {
	switch current.variant {
	case VariantFailure:
		return Diff{kind: DiffFailed, err: current.err}
	case VariantFinished:
		return finished
	}

	if previous == nil {
		previous = root
	}

	var added []Field
	var changed Changes
	for key, value := range current.fields.All() {
		prev, exists := previous.fields.Get(key)
		if !exists {
			added = append(added, Field{Key: key, Value: value})
			continue
		}

		change := Change{Current: value, Previous: prev}
		if !change.IsNoop() {
			changed.add(key, change)
		}
	}

	switch {
	case previous.variant == VariantNone:
		return Diff{kind: DiffCreated, added: NewFields(added...), changed: changed}
	case len(added) == 0 && changed.Len() == 0:
		return unchanged
	default:
		return Diff{kind: DiffChanged, added: NewFields(added...), changed: changed}
	}
}

func (d Diff) Kind() DiffKind {
	return d.kind
}

// Added returns the fields first introduced by the state.
func (d Diff) Added() Fields {
	return d.added
}

// Changed returns the fields whose value differs from the predecessor.
func (d Diff) Changed() Changes {
	return d.changed
}

// Err returns the stored error of a DiffFailed, or nil.
func (d Diff) Err() error {
	return d.err
}

// IsEmpty reports whether nothing was added or changed.
func (d Diff) IsEmpty() bool {
	return d.added.Len() == 0 && d.changed.Len() == 0
}

func (d Diff) IsCreated() bool {
	return d.kind == DiffCreated
}

func (d Diff) IsChanged() bool {
	return d.kind == DiffChanged
}

func (d Diff) IsUnchanged() bool {
	return d.kind == DiffUnchanged
}

func (d Diff) IsFailed() bool {
	return d.kind == DiffFailed
}

func (d Diff) IsFinished() bool {
	return d.kind == DiffFinished
}

func (d Diff) HasAdded(key string) bool {
	return d.added.Has(key)
}

func (d Diff) HasChanged(key string) bool {
	return d.changed.Has(key)
}

// Equal compares kind, added fields, changes and the stored error by value.
func (d Diff) Equal(other Diff) bool {
	return d.kind == other.kind &&
		d.added.Equal(other.added) &&
		d.changed.Equal(other.changed) &&
		errorsEqual(d.err, other.err)
}

func (d Diff) String() string {
	switch d.kind {
	case DiffCreated:
		return fmt.Sprintf("Created(%s)", d.added)
	case DiffChanged:
		return fmt.Sprintf("Changed(added: %s; changed: %s)", d.added, d.changed)
	case DiffFailed:
		return fmt.Sprintf("Failed(%v)", d.err)
	default:
		return d.kind.String()
	}
}
