package state

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Values stored in fields are opaque, so unexported struct fields take part
// in the comparison instead of making cmp panic.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// valuesEqual reports deep value equality. Types with an Equal method
// (time.Time, for instance) are compared with it.
func valuesEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// errorsEqual compares pointer errors by identity and every other error by
// value. Comparing interfaces with == panics when a comparable struct holds an
// uncomparable dynamic value, so value errors never go through ==.
func errorsEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Kind() == reflect.Pointer && reflect.TypeOf(b).Kind() == reflect.Pointer {
		return a == b
	}
	return valuesEqual(a, b)
}
