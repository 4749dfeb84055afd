package sqlkind

import (
	"errors"
	"fmt"
)

// Standard sentinel errors.
var (
	// ErrAssertion matches every *AssertionError.
	ErrAssertion = errors.New("sqlkind: assertion failed")

	// ErrKindMismatch is returned when an encoded query is decoded into a
	// Query of another kind.
	ErrKindMismatch = errors.New("sqlkind: query kind mismatch")
)

// AssertionError is the panic value of a Build whose accumulated fragments
// cannot form a statement of its kind. It reports a programming error.
type AssertionError struct {
	kind string
	msg  string
}

// Error returns the error string.
func (e *AssertionError) Error() string {
	return "sqlkind: " + e.msg
}

// Is reports whether the target error matches AssertionError.
func (e *AssertionError) Is(err error) bool {
	return err == ErrAssertion
}

// Kind returns the keyword of the statement being built.
func (e *AssertionError) Kind() string {
	return e.kind
}

func newAssertionError(kind, msg string) *AssertionError {
	return &AssertionError{kind: kind, msg: msg}
}

// KindMismatchError is returned when decoding a query of kind Got into a
// Query of kind Want.
type KindMismatchError struct {
	Want string
	Got  string
}

// Error returns the error string.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("sqlkind: query kind mismatch (want %s, got %s)", e.Want, e.Got)
}

// Is reports whether the target error matches KindMismatchError.
// This allows errors.Is(err, ErrKindMismatch) to return true.
func (e *KindMismatchError) Is(err error) bool {
	return err == ErrKindMismatch
}

// IsKindMismatch returns true if the error is a KindMismatchError.
func IsKindMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *KindMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrKindMismatch)
}
