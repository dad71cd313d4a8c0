package state

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Field is a single key/value pair.
type Field struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Fields is an immutable, insertion-ordered key/value mapping. The zero value
// is an empty mapping.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields builds Fields from pairs. A repeated key keeps its first position
// and its last value.
func NewFields(pairs ...Field) Fields {
	return Fields{}.with(pairs)
}

// FieldsFromMap builds Fields from a map, introducing keys in sorted order.
func FieldsFromMap(m map[string]any) Fields {
	return NewFields(sortedFields(m)...)
}

func sortedFields(m map[string]any) []Field {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Field, len(keys))
	for i, k := range keys {
		pairs[i] = Field{Key: k, Value: m[k]}
	}
	return pairs
}

// with returns a new Fields holding f plus updates. f is left untouched.
func (f Fields) with(updates []Field) Fields {
	if len(updates) == 0 {
		return f
	}

	keys := make([]string, len(f.keys), len(f.keys)+len(updates))
	copy(keys, f.keys)

	values := make(map[string]any, len(f.values)+len(updates))
	maps.Copy(values, f.values)

	for _, u := range updates {
		if _, exists := values[u.Key]; !exists {
			keys = append(keys, u.Key)
		}
		values[u.Key] = u.Value
	}

	return Fields{keys: keys, values: values}
}

func (f Fields) Len() int {
	return len(f.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (f Fields) Keys() []string {
	return slices.Clone(f.keys)
}

func (f Fields) Get(key string) (any, bool) {
	val, exists := f.values[key]
	return val, exists
}

func (f Fields) Has(key string) bool {
	_, exists := f.values[key]
	return exists
}

// All yields key/value pairs in insertion order.
func (f Fields) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range f.keys {
			if !yield(k, f.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the mapping as a plain map.
func (f Fields) Map() map[string]any {
	m := make(map[string]any, len(f.keys))
	maps.Copy(m, f.values)
	return m
}

// Pairs returns the mapping as an ordered slice of Field.
func (f Fields) Pairs() []Field {
	pairs := make([]Field, len(f.keys))
	for i, k := range f.keys {
		pairs[i] = Field{Key: k, Value: f.values[k]}
	}
	return pairs
}

// Equal reports whether both mappings hold the same keys with equal values.
// Key order is not compared.
func (f Fields) Equal(other Fields) bool {
	if f.Len() != other.Len() {
		return false
	}
	for k, v := range f.values {
		ov, exists := other.values[k]
		if !exists || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

// String renders the mapping as "k1=v1, k2=v2".
func (f Fields) String() string {
	var b strings.Builder
	for i, k := range f.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, f.values[k])
	}
	return b.String()
}
