package model

import "strconv"

// Bool wraps a boolean flag. Construction from a Go bool cannot fail;
// ParseBool covers the ingress case where the flag arrives as a query
// string parameter.
type Bool struct {
	value bool
}

// NewBool wraps raw.
func NewBool(raw bool) Bool { return Bool{value: raw} }

// ParseBool validates raw as "true"/"false"/"1"/"0" and wraps it.
func ParseBool(raw string) (Bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return Bool{}, NewValidationError("el valor debe ser booleano")
	}
	return Bool{value: v}, nil
}

// Value returns the wrapped bool.
func (b Bool) Value() bool { return b.value }

// Equals reports structural equality on the wrapped value.
func (b Bool) Equals(other Bool) bool { return b.value == other.value }

// BoolOptional is a Bool that may be absent.
type BoolOptional struct {
	value   Bool
	present bool
}

// ParseBoolOptional wraps raw when non-nil, validating it like ParseBool.
func ParseBoolOptional(raw *string) (BoolOptional, error) {
	if raw == nil {
		return BoolOptional{}, nil
	}
	v, err := ParseBool(*raw)
	if err != nil {
		return BoolOptional{}, err
	}
	return BoolOptional{value: v, present: true}, nil
}

// SomeBool wraps an already constructed Bool.
func SomeBool(v Bool) BoolOptional { return BoolOptional{value: v, present: true} }

// NoBool returns the absent state.
func NoBool() BoolOptional { return BoolOptional{} }

// Present reports whether a value is set.
func (o BoolOptional) Present() bool { return o.present }

// Value returns the wrapped bool, or false when absent.
func (o BoolOptional) Value() bool {
	if !o.present {
		return false
	}
	return o.value.Value()
}
