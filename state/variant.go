package state

import "fmt"

// Variant tags the kind of a State.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantSuccess
	VariantFailure
	VariantFinished
)

var variantNames = [...]string{
	VariantNone:     "None",
	VariantSuccess:  "Success",
	VariantFailure:  "Failure",
	VariantFinished: "Finished",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", v)
}

// Terminal reports whether the variant accepts no further transitions.
func (v Variant) Terminal() bool {
	return v != VariantSuccess
}

// ParseVariant returns the Variant named by s.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return Variant(v), nil
		}
	}
	return VariantNone, fmt.Errorf("unknown variant: %q", s)
}
