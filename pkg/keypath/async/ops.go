package async

import (
	"github.com/ib-77/keypath/pkg/keypath"
)

// MapPath lazily applies f to the accessed value of every element. A missing
// value fails the stream at that element; nothing downstream is produced.
func MapPath[S, T, R any](s Stream[S], acc keypath.Accessor[S, T], f func(T) R) Stream[R] {
	return Stream[R]{seq: func(yield func(keypath.Result[R]) bool) {
		i := 0
		for r := range s.seq {
			if !r.IsSuccess() {
				yield(keypath.Transfer[S, R](r))
				return
			}
			v, ok := acc.Get(r.Value())
			if !ok {
				yield(keypath.Failure[R](keypath.InvalidAccessf("map: element %d has no value", i)))
				return
			}
			if !yield(keypath.Success(f(v))) {
				return
			}
			i++
		}
	}}
}

// FilterPath lazily keeps elements whose accessed value satisfies pred.
func FilterPath[S, T any](s Stream[S], acc keypath.Accessor[S, T], pred func(T) bool) Stream[S] {
	return Stream[S]{seq: func(yield func(keypath.Result[S]) bool) {
		i := 0
		for r := range s.seq {
			if !r.IsSuccess() {
				yield(r)
				return
			}
			v, ok := acc.Get(r.Value())
			if !ok {
				yield(keypath.Failure[S](keypath.InvalidAccessf("filter: element %d has no value", i)))
				return
			}
			if pred(v) && !yield(r) {
				return
			}
			i++
		}
	}}
}

// Collect pulls the whole stream into a slice. The first non-success result
// aborts with its error and no partial output.
func Collect[T any](s Stream[T]) (out []T, err error) {
	defer keypath.Capture(&err)

	res := make([]T, 0)
	for r := range s.seq {
		if !r.IsSuccess() {
			return nil, r.Err()
		}
		res = append(res, r.Value())
	}
	return res, nil
}

// Find pulls until the first element whose accessed value satisfies pred,
// then stops the upstream.
func Find[S, T any](s Stream[S], acc keypath.Accessor[S, T], pred func(T) bool) (match S, found bool, err error) {
	defer keypath.Capture(&err)

	i := 0
	for r := range s.seq {
		if !r.IsSuccess() {
			var zero S
			return zero, false, r.Err()
		}
		v, ok := acc.Get(r.Value())
		if !ok {
			var zero S
			return zero, false, keypath.InvalidAccessf("find: element %d has no value", i)
		}
		if pred(v) {
			return r.Value(), true, nil
		}
		i++
	}
	var zero S
	return zero, false, nil
}

// Fold reduces the accessed values in arrival order, which for an in-memory
// source is index order.
func Fold[S, T, B any](s Stream[S], acc keypath.Accessor[S, T], init B, f func(B, T) B) (out B, err error) {
	defer keypath.Capture(&err)

	res := init
	i := 0
	for r := range s.seq {
		if !r.IsSuccess() {
			var zero B
			return zero, r.Err()
		}
		v, ok := acc.Get(r.Value())
		if !ok {
			var zero B
			return zero, keypath.InvalidAccessf("fold: element %d has no value", i)
		}
		res = f(res, v)
		i++
	}
	return res, nil
}

// Count tallies the accessed values satisfying pred.
func Count[S, T any](s Stream[S], acc keypath.Accessor[S, T], pred func(T) bool) (n int, err error) {
	defer keypath.Capture(&err)

	count := 0
	i := 0
	for r := range s.seq {
		if !r.IsSuccess() {
			return 0, r.Err()
		}
		v, ok := acc.Get(r.Value())
		if !ok {
			return 0, keypath.InvalidAccessf("count: element %d has no value", i)
		}
		if pred(v) {
			count++
		}
		i++
	}
	return count, nil
}

// Any stops pulling at the first hit.
func Any[S, T any](s Stream[S], acc keypath.Accessor[S, T], pred func(T) bool) (ok bool, err error) {
	defer keypath.Capture(&err)

	i := 0
	for r := range s.seq {
		if !r.IsSuccess() {
			return false, r.Err()
		}
		v, present := acc.Get(r.Value())
		if !present {
			return false, keypath.InvalidAccessf("any: element %d has no value", i)
		}
		if pred(v) {
			return true, nil
		}
		i++
	}
	return false, nil
}

// All stops pulling at the first miss.
func All[S, T any](s Stream[S], acc keypath.Accessor[S, T], pred func(T) bool) (ok bool, err error) {
	defer keypath.Capture(&err)

	i := 0
	for r := range s.seq {
		if !r.IsSuccess() {
			return false, r.Err()
		}
		v, present := acc.Get(r.Value())
		if !present {
			return false, keypath.InvalidAccessf("all: element %d has no value", i)
		}
		if !pred(v) {
			return false, nil
		}
		i++
	}
	return true, nil
}
