package state

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Change is the before/after pair of a single field.
type Change struct {
	Current  any
	Previous any
}

// IsNoop reports whether both sides are equal by value.
func (c Change) IsNoop() bool {
	return valuesEqual(c.Current, c.Previous)
}

func (c Change) Equal(other Change) bool {
	return valuesEqual(c.Current, other.Current) && valuesEqual(c.Previous, other.Previous)
}

func (c Change) String() string {
	return fmt.Sprintf("%v (was %v)", c.Current, c.Previous)
}

// Changes is an ordered mapping of field keys to their Change.
type Changes struct {
	keys   []string
	values map[string]Change
}

func (c *Changes) add(key string, change Change) {
	if c.values == nil {
		c.values = make(map[string]Change)
	}
	c.keys = append(c.keys, key)
	c.values[key] = change
}

func (c Changes) Len() int {
	return len(c.keys)
}

func (c Changes) Keys() []string {
	return slices.Clone(c.keys)
}

func (c Changes) Get(key string) (Change, bool) {
	change, exists := c.values[key]
	return change, exists
}

func (c Changes) Has(key string) bool {
	_, exists := c.values[key]
	return exists
}

// All yields changes in key order.
func (c Changes) All() iter.Seq2[string, Change] {
	return func(yield func(string, Change) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

func (c Changes) Equal(other Changes) bool {
	if c.Len() != other.Len() {
		return false
	}
	for k, change := range c.values {
		oc, exists := other.values[k]
		if !exists || !change.Equal(oc) {
			return false
		}
	}
	return true
}

func (c Changes) String() string {
	var b strings.Builder
	for i, k := range c.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", k, c.values[k])
	}
	return b.String()
}
