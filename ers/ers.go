package ers

import (
	"errors"
	"fmt"
)

// When constructs an error IF the conditional is true, and returns
// nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}
	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}
	return fmt.Errorf(tmpl, args...)
}

// Ok returns true when the error is nil, and false otherwise. It
// mostly exists for clarity at call sites in bool-check contexts.
func Ok(err error) bool { return err == nil }

// Is returns true if the error is an instance of any of the targets,
// as errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
