package pipe

import (
	"github.com/ib-77/keypath/pkg/keypath"
)

// Pipe applies the functions to v left to right.
func Pipe[T any](v T, fs ...func(T) T) T {
	for _, f := range fs {
		v = f(v)
	}
	return v
}

// Pipe2 composes two functions left to right.
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes three functions left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// When applies f to elements whose accessed value satisfies cond and passes
// the rest through unchanged. Output length equals input length and order is
// preserved.
func When[S, T any](coll []S, acc keypath.Accessor[S, T], cond func(T) bool, f func(S) S) (out []S, err error) {
	defer keypath.Capture(&err)

	res := make([]S, 0, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("when: element %d has no value", i)
		}
		if cond(v) {
			res = append(res, f(s))
		} else {
			res = append(res, s)
		}
	}
	return res, nil
}

// Unless is the dual of When: f is applied to elements whose accessed value
// does not satisfy cond.
func Unless[S, T any](coll []S, acc keypath.Accessor[S, T], cond func(T) bool, f func(S) S) ([]S, error) {
	return When(coll, acc, func(v T) bool { return !cond(v) }, f)
}
