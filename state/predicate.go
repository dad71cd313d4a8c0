package state

// Predicate evaluates a state. Predicates guard conditional pipeline steps.
type Predicate func(s *State) bool

// Always returns a predicate that is always true.
func Always() Predicate {
	return func(*State) bool { return true }
}

// KeyExists returns a predicate that checks if key is present.
func KeyExists(key string) Predicate {
	return func(s *State) bool {
		return s.Has(key)
	}
}

// KeyEquals returns a predicate that checks if key holds a value equal to
// value. Equality is by value, so equal structs and slices match.
//
// Example:
//
//	approved := state.KeyEquals("status", "approved")
func KeyEquals(key string, value any) Predicate {
	return func(s *State) bool {
		val, exists := s.Lookup(key)
		return exists && valuesEqual(val, value)
	}
}

// Successful matches Success states.
func Successful() Predicate {
	return (*State).IsSuccessful
}

// Failed matches Failure states.
func Failed() Predicate {
	return (*State).IsFailed
}

// Finished matches Finished states.
func Finished() Predicate {
	return (*State).IsFinished
}

// Not inverts a predicate.
func Not(predicate Predicate) Predicate {
	return func(s *State) bool {
		return !predicate(s)
	}
}

// And combines predicates with logical AND (all must be true).
func And(predicates ...Predicate) Predicate {
	return func(s *State) bool {
		for _, p := range predicates {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical OR (at least one must be true).
func Or(predicates ...Predicate) Predicate {
	return func(s *State) bool {
		for _, p := range predicates {
			if p(s) {
				return true
			}
		}
		return false
	}
}
