package state

import "iter"

// Ancestry yields the receiver, its predecessor, and so on up to and
// including the root. Each call starts a fresh walk.
func (s *State) Ancestry() iter.Seq[*State] {
	return func(yield func(*State) bool) {
		for cur := s; ; cur = cur.previous {
			if !yield(cur) || cur.variant == VariantNone {
				return
			}
		}
	}
}

// History yields the diff of every non-root state in the ancestry, newest
// first.
func (s *State) History() iter.Seq[Diff] {
	return func(yield func(Diff) bool) {
		for cur := s; cur.variant != VariantNone; cur = cur.previous {
			if !yield(cur.Diff()) {
				return
			}
		}
	}
}

// Depth returns the number of non-root states in the ancestry.
func (s *State) Depth() int {
	n := 0
	for cur := s; cur.variant != VariantNone; cur = cur.previous {
		n++
	}
	return n
}

// Descends reports whether ancestor appears in the receiver's ancestry. A
// state descends from itself.
func (s *State) Descends(ancestor *State) bool {
	for cur := range s.Ancestry() {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Diff returns the difference between the receiver and its predecessor. The
// result is computed once and reused. The root has nothing to compare against
// and reports Unchanged.
func (s *State) Diff() Diff {
	if s.variant == VariantNone {
		return unchanged
	}
	s.diffOnce.Do(func() {
		s.diff = ComputeDiff(s, s.previous)
	})
	return s.diff
}
