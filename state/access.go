package state

import "strings"

// Has reports whether key is present.
func (s *State) Has(key string) bool {
	return s.fields.Has(key)
}

// Lookup returns the value for key and whether it was present.
func (s *State) Lookup(key string) (any, bool) {
	return s.fields.Get(key)
}

// Get returns the value for key, or a *FieldMissingError when absent.
func (s *State) Get(key string) (any, error) {
	val, exists := s.fields.Get(key)
	if !exists {
		return nil, &FieldMissingError{Field: key}
	}
	return val, nil
}

// Access resolves an accessor name against the state's fields:
//
//	"k"   the value, or an *OperationError when k is absent
//	"k?"  true or false, never an error
//	"k!"  the value, or a *FieldMissingError when k is absent
//
// Names that carry no key ("", "?", "!") return an *OperationError.
func (s *State) Access(name string) (any, error) {
	if key, ok := strings.CutSuffix(name, "?"); ok && key != "" {
		return s.Has(key), nil
	}
	if key, ok := strings.CutSuffix(name, "!"); ok && key != "" {
		return s.Get(key)
	}

	if name == "" || name == "?" || name == "!" {
		return nil, &OperationError{Operation: name, Variant: s.variant}
	}

	val, exists := s.fields.Get(name)
	if !exists {
		return nil, &OperationError{Operation: name, Variant: s.variant}
	}
	return val, nil
}
