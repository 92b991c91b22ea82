// Package check mirrors the assert package with non-fatal
// assertions: failures are reported with t.Error and the test
// continues, which suits verifying several independent properties of
// one result.
package check

import (
	"errors"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if the two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Errorf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero value for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Errorf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs fails the test if the error does not match the target, per
// errors.Is.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v> is not <%v>", err, target)
	}
}
