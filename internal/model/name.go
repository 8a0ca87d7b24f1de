package model

// Name wraps a non-empty string. It is used for every free-form textual
// field (names, emails, passwords, extracted tokens): the only invariant
// enforced at the boundary is non-emptiness.
type Name struct {
	value string
}

// NewName validates raw as non-empty and wraps it.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, NewValidationError("el valor no puede estar vacío")
	}
	return Name{value: raw}, nil
}

// Value returns the wrapped raw string.
func (n Name) Value() string { return n.value }

// Equals reports structural equality on the wrapped value.
func (n Name) Equals(other Name) bool { return n.value == other.value }

// NameOptional is a Name that may be absent.
type NameOptional struct {
	value   Name
	present bool
}

// NewNameOptional wraps raw when non-nil, validating it like NewName.
func NewNameOptional(raw *string) (NameOptional, error) {
	if raw == nil {
		return NameOptional{}, nil
	}
	v, err := NewName(*raw)
	if err != nil {
		return NameOptional{}, err
	}
	return NameOptional{value: v, present: true}, nil
}

// SomeName wraps an already validated Name.
func SomeName(v Name) NameOptional { return NameOptional{value: v, present: true} }

// NoName returns the absent state.
func NoName() NameOptional { return NameOptional{} }

// Present reports whether a value is set.
func (o NameOptional) Present() bool { return o.present }

// Value returns the wrapped raw string, or "" when absent.
func (o NameOptional) Value() string {
	if !o.present {
		return ""
	}
	return o.value.Value()
}
