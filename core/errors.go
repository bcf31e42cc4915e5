package core

import "errors"

// Error kinds. Callers match with errors.Is; the REST layer maps
// ErrNotFound to 404 and ErrBadRequest to 400.
var (
	// ErrNotFound is the kind for lookups and mutations targeting an id
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is the kind for values that violate an integrity
	// rule, a duplicate constraint, or target a missing id during a
	// mutation.
	ErrBadRequest = errors.New("bad request")
)

// Error is a kinded domain error carrying a short machine-checkable
// reason string. Both kinds are terminal for the triggering operation
// and are never retried internally.
type Error struct {
	kind   error
	reason string
}

// Error returns the reason string.
func (e *Error) Error() string { return e.reason }

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool { return target == e.kind }

// NotFound returns an ErrNotFound-kinded error with the given reason.
func NotFound(reason string) error {
	return &Error{kind: ErrNotFound, reason: reason}
}

// BadRequest returns an ErrBadRequest-kinded error with the given reason.
func BadRequest(reason string) error {
	return &Error{kind: ErrBadRequest, reason: reason}
}
