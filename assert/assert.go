// Package assert provides an incredibly simple assertion framework
// that relies on generics and simplicity. All assertions are "fatal"
// and cause the test to abort at the failure line. The companion
// package assert/check provides the same operations with non-fatal
// (continue-on-error) reporting.
package assert

import (
	"errors"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers are comparable and
// unequal even when their values are equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if the two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero value for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Fatalf("expected non-zero for value of type %T", val)
	}
}

// NilPtr asserts that the pointer value is nil.
func NilPtr[T any](t testing.TB, val *T) { t.Helper(); Equal(t, val, nil) }

// NotNilPtr asserts that the pointer value is not nil.
func NotNilPtr[T any](t testing.TB, val *T) { t.Helper(); NotEqual(t, val, nil) }

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs fails the test if the error does not match the target, per
// errors.Is.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v> is not <%v>", err, target)
	}
}

// NotErrorIs fails the test if the error matches the target, per
// errors.Is.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v> is <%v>", err, target)
	}
}

// Panic fails the test if the function does not panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}

// NotPanic fails the test if the function panics.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if p := recover(); p != nil {
			t.Fatalf("unexpected panic: %v", p)
		}
	}()
	fn()
}
