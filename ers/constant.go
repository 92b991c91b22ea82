// Package ers provides constant-declarable sentinel errors and a few
// small helpers for working with them, with no dependencies outside
// the standard library.
package ers

// Error is a type for building/declaring sentinel errors as
// constants.
//
// In addition to nil error interface values, the empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object from a string.
func New(str string) error { return Error(str) }

// Error implements the error interface without allocation.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
