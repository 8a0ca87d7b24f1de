// Domain error classification. Handlers decide the HTTP status by switching
// on the Kind, never by comparing message text; the message is user-facing
// data carried alongside.
package model

import "errors"

// Kind classifies a domain failure.
type Kind int

const (
	KindInternal   Kind = iota // unclassified backend failure
	KindValidation             // raw input violated a value object invariant
	KindAuth                   // missing/malformed/unresolvable token or bad credentials
	KindConflict               // uniqueness constraint violated
	KindNotFound               // required lookup found nothing
)

// AuthFailMessage is the exact literal returned for every authorization
// failure. Clients localize on it, so it must not change.
const AuthFailMessage = "No tiene permiso para realizar esta acción."

// Error is a classified domain error. The message is safe to show to the
// caller; internal detail stays behind the Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewValidationError reports a malformed raw input.
func NewValidationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewAuthError reports an authorization failure. Every cause collapses to
// the same uniform message so callers cannot enumerate tokens or
// credentials by comparing responses.
func NewAuthError() error {
	return &Error{Kind: KindAuth, Message: AuthFailMessage}
}

// NewCredentialsError reports a failed password check. It shares the Auth
// kind but carries the credential message used by the login flow.
func NewCredentialsError() error {
	return &Error{Kind: KindAuth, Message: "Contraseña incorrecta."}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NewNotFoundError reports a required lookup that resolved nothing.
func NewNotFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// KindOf extracts the Kind of err, or KindInternal for errors that did not
// originate in the domain layer.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
