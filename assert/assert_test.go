package assert

import (
	"errors"
	"testing"
)

// recorder captures failures without aborting the test, standing in
// for testing.TB when exercising the assertions themselves.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...any)                  { r.failed = true }
func (r *recorder) Fatalf(string, ...any)         { r.failed = true }
func (r *recorder) expectFailure(t *testing.T)    { t.Helper(); mustState(t, r.failed, "pass") }
func (r *recorder) expectSuccess(t *testing.T)    { t.Helper(); mustState(t, !r.failed, "fail") }
func mustState(t *testing.T, ok bool, did string) {
	t.Helper()
	if !ok {
		t.Errorf("assertion should not %s", did)
	}
}

func TestAssertion(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("True", func(t *testing.T) {
		r := &recorder{TB: t}
		True(r, true)
		r.expectSuccess(t)

		r = &recorder{TB: t}
		True(r, false)
		r.expectFailure(t)
	})
	t.Run("Equal", func(t *testing.T) {
		r := &recorder{TB: t}
		Equal(r, 42, 42)
		Equal(r, "same", "same")
		r.expectSuccess(t)

		r = &recorder{TB: t}
		Equal(r, 1, 2)
		r.expectFailure(t)
	})
	t.Run("NotEqual", func(t *testing.T) {
		r := &recorder{TB: t}
		NotEqual(r, 1, 2)
		r.expectSuccess(t)

		r = &recorder{TB: t}
		NotEqual(r, 1, 1)
		r.expectFailure(t)
	})
	t.Run("Zero", func(t *testing.T) {
		r := &recorder{TB: t}
		Zero(r, 0)
		Zero(r, "")
		r.expectSuccess(t)

		r = &recorder{TB: t}
		Zero(r, 1)
		r.expectFailure(t)
	})
	t.Run("NotZero", func(t *testing.T) {
		r := &recorder{TB: t}
		NotZero(r, 100)
		r.expectSuccess(t)

		r = &recorder{TB: t}
		NotZero(r, "")
		r.expectFailure(t)
	})
	t.Run("Errors", func(t *testing.T) {
		r := &recorder{TB: t}
		Error(r, sentinel)
		NotError(r, nil)
		ErrorIs(r, sentinel, sentinel)
		NotErrorIs(r, sentinel, errors.New("other"))
		r.expectSuccess(t)

		r = &recorder{TB: t}
		Error(r, nil)
		r.expectFailure(t)

		r = &recorder{TB: t}
		NotError(r, sentinel)
		r.expectFailure(t)

		r = &recorder{TB: t}
		ErrorIs(r, sentinel, errors.New("other"))
		r.expectFailure(t)
	})
	t.Run("Panics", func(t *testing.T) {
		r := &recorder{TB: t}
		Panic(r, func() { panic("boom") })
		NotPanic(r, func() {})
		r.expectSuccess(t)

		r = &recorder{TB: t}
		Panic(r, func() {})
		r.expectFailure(t)

		r = &recorder{TB: t}
		NotPanic(r, func() { panic("boom") })
		r.expectFailure(t)
	})
}
