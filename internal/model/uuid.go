package model

import (
	guuid "github.com/google/uuid"
)

// Uuid wraps a syntactically valid UUID string. A zero Uuid cannot be
// obtained through NewUuid, so code receiving one may rely on the value
// being well formed.
type Uuid struct {
	value string
}

// NewUuid validates raw as a UUID and wraps it. The raw string is kept
// as given (no canonicalization) so round trips preserve the input.
func NewUuid(raw string) (Uuid, error) {
	if _, err := guuid.Parse(raw); err != nil {
		return Uuid{}, NewValidationError("el id debe ser un UUID válido")
	}
	return Uuid{value: raw}, nil
}

// Value returns the wrapped raw string.
func (u Uuid) Value() string { return u.value }

// Equals reports structural equality on the wrapped value.
func (u Uuid) Equals(other Uuid) bool { return u.value == other.value }

// UuidOptional is a Uuid that may be absent. Absent is a valid state used
// for conditional query filters.
type UuidOptional struct {
	value   Uuid
	present bool
}

// NewUuidOptional wraps raw when non-nil, validating it like NewUuid.
// A nil raw yields the absent state.
func NewUuidOptional(raw *string) (UuidOptional, error) {
	if raw == nil {
		return UuidOptional{}, nil
	}
	v, err := NewUuid(*raw)
	if err != nil {
		return UuidOptional{}, err
	}
	return UuidOptional{value: v, present: true}, nil
}

// SomeUuid wraps an already validated Uuid.
func SomeUuid(v Uuid) UuidOptional { return UuidOptional{value: v, present: true} }

// NoUuid returns the absent state.
func NoUuid() UuidOptional { return UuidOptional{} }

// Present reports whether a value is set.
func (o UuidOptional) Present() bool { return o.present }

// Value returns the wrapped raw string, or "" when absent.
func (o UuidOptional) Value() string {
	if !o.present {
		return ""
	}
	return o.value.Value()
}
