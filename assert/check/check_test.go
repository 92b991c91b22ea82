package check

import (
	"errors"
	"testing"
)

type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()               {}
func (r *recorder) Error(...any)          { r.failed = true }
func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestCheck(t *testing.T) {
	sentinel := errors.New("sentinel")

	cases := []struct {
		name string
		op   func(testing.TB)
		fail bool
	}{
		{name: "TruePass", op: func(tb testing.TB) { True(tb, true) }},
		{name: "TrueFail", op: func(tb testing.TB) { True(tb, false) }, fail: true},
		{name: "EqualPass", op: func(tb testing.TB) { Equal(tb, "a", "a") }},
		{name: "EqualFail", op: func(tb testing.TB) { Equal(tb, "a", "b") }, fail: true},
		{name: "NotEqualPass", op: func(tb testing.TB) { NotEqual(tb, 1, 2) }},
		{name: "NotEqualFail", op: func(tb testing.TB) { NotEqual(tb, 1, 1) }, fail: true},
		{name: "ZeroPass", op: func(tb testing.TB) { Zero(tb, 0) }},
		{name: "ZeroFail", op: func(tb testing.TB) { Zero(tb, 9) }, fail: true},
		{name: "NotZeroPass", op: func(tb testing.TB) { NotZero(tb, 9) }},
		{name: "NotZeroFail", op: func(tb testing.TB) { NotZero(tb, 0) }, fail: true},
		{name: "ErrorPass", op: func(tb testing.TB) { Error(tb, sentinel) }},
		{name: "ErrorFail", op: func(tb testing.TB) { Error(tb, nil) }, fail: true},
		{name: "NotErrorPass", op: func(tb testing.TB) { NotError(tb, nil) }},
		{name: "NotErrorFail", op: func(tb testing.TB) { NotError(tb, sentinel) }, fail: true},
		{name: "ErrorIsPass", op: func(tb testing.TB) { ErrorIs(tb, sentinel, sentinel) }},
		{name: "ErrorIsFail", op: func(tb testing.TB) { ErrorIs(tb, sentinel, errors.New("no")) }, fail: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tc.op(r)
			if r.failed != tc.fail {
				t.Errorf("failed=%t, expected %t", r.failed, tc.fail)
			}
		})
	}
}
