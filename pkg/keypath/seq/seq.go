package seq

import (
	"sort"

	"github.com/ib-77/keypath/pkg/keypath"
)

// Collect extracts the accessed value of every element, in input order.
func Collect[S, T any](coll []S, acc keypath.Accessor[S, T]) (out []T, err error) {
	defer keypath.Capture(&err)

	res := make([]T, 0, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("collect: element %d has no value", i)
		}
		res = append(res, v)
	}
	return res, nil
}

// Map applies f to the accessed value of every element. Output length equals
// input length and order is preserved.
func Map[S, T, R any](coll []S, acc keypath.Accessor[S, T], f func(T) R) (out []R, err error) {
	defer keypath.Capture(&err)

	res := make([]R, 0, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("map: element %d has no value", i)
		}
		res = append(res, f(v))
	}
	return res, nil
}

// Filter keeps the elements whose accessed value satisfies pred, preserving
// relative order.
func Filter[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (out []S, err error) {
	defer keypath.Capture(&err)

	res := make([]S, 0, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("filter: element %d has no value", i)
		}
		if pred(v) {
			res = append(res, s)
		}
	}
	return res, nil
}

// Find returns the first element whose accessed value satisfies pred. No
// match is reported through found, not through err. Scanning stops at the
// first match.
func Find[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (match S, found bool, err error) {
	defer keypath.Capture(&err)

	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			var zero S
			return zero, false, keypath.InvalidAccessf("find: element %d has no value", i)
		}
		if pred(v) {
			return s, true, nil
		}
	}
	var zero S
	return zero, false, nil
}

// Fold reduces the accessed values left to right, strictly in index order.
func Fold[S, T, B any](coll []S, acc keypath.Accessor[S, T], init B, f func(B, T) B) (out B, err error) {
	defer keypath.Capture(&err)

	res := init
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			var zero B
			return zero, keypath.InvalidAccessf("fold: element %d has no value", i)
		}
		res = f(res, v)
	}
	return res, nil
}

// Partition splits the collection into elements matching pred and the rest,
// both preserving relative order.
func Partition[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (matches, rest []S, err error) {
	defer keypath.Capture(&err)

	m := make([]S, 0, len(coll))
	r := make([]S, 0, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, nil, keypath.InvalidAccessf("partition: element %d has no value", i)
		}
		if pred(v) {
			m = append(m, s)
		} else {
			r = append(r, s)
		}
	}
	return m, r, nil
}

// Group buckets the elements by the key derived from their accessed value.
// Within each bucket the original relative order is preserved.
func Group[S, T any, K comparable](coll []S, acc keypath.Accessor[S, T], key func(T) K) (out map[K][]S, err error) {
	defer keypath.Capture(&err)

	res := make(map[K][]S)
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("group: element %d has no value", i)
		}
		k := key(v)
		res[k] = append(res[k], s)
	}
	return res, nil
}

// Sort returns a stably sorted copy of the collection, ordered by cmp over
// the accessed values. Ties keep their original relative order, so sorting
// an already-sorted collection changes nothing. The input is not mutated.
func Sort[S, T any](coll []S, acc keypath.Accessor[S, T], cmp func(a, b T) int) (out []S, err error) {
	defer keypath.Capture(&err)

	keys, err := Collect(coll, acc)
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(coll))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return cmp(keys[idx[i]], keys[idx[j]]) < 0
	})

	res := make([]S, len(coll))
	for n, i := range idx {
		res[n] = coll[i]
	}
	return res, nil
}

// Zip pairs the two collections by index and applies f to the accessed
// values. The result length is the shorter of the two inputs.
func Zip[A, B, TA, TB, R any](c1 []A, c2 []B, acc1 keypath.Accessor[A, TA], acc2 keypath.Accessor[B, TB], f func(TA, TB) R) (out []R, err error) {
	defer keypath.Capture(&err)

	n := len(c1)
	if len(c2) < n {
		n = len(c2)
	}
	res := make([]R, 0, n)
	for i := 0; i < n; i++ {
		v1, ok := acc1.Get(c1[i])
		if !ok {
			return nil, keypath.InvalidAccessf("zip: left element %d has no value", i)
		}
		v2, ok := acc2.Get(c2[i])
		if !ok {
			return nil, keypath.InvalidAccessf("zip: right element %d has no value", i)
		}
		res = append(res, f(v1, v2))
	}
	return res, nil
}

// Window slides a window of size w over the accessed values, producing
// len(coll)-w+1 aggregates. A size of zero or one larger than the collection
// is ErrCollection. The windows handed to f are overlapping views of one
// extracted slice; f must not modify or retain them.
func Window[S, T, R any](coll []S, acc keypath.Accessor[S, T], w int, f func([]T) R) (out []R, err error) {
	defer keypath.Capture(&err)

	if w == 0 || w > len(coll) {
		return nil, keypath.Collectionf("invalid window size %d for %d elements", w, len(coll))
	}

	vals, err := Collect(coll, acc)
	if err != nil {
		return nil, err
	}

	res := make([]R, 0, len(coll)-w+1)
	for i := 0; i+w <= len(vals); i++ {
		res = append(res, f(vals[i:i+w]))
	}
	return res, nil
}

// Rolling is the incremental variant of Window: a FIFO buffer of the last w
// accessed values emits one aggregate each time it is full. A size of zero
// is ErrCollection; a buffer that never fills emits nothing. Each emission
// passes f its own copy of the buffer, so f may retain it.
func Rolling[S, T, R any](coll []S, acc keypath.Accessor[S, T], w int, f func([]T) R) (out []R, err error) {
	defer keypath.Capture(&err)

	if w == 0 {
		return nil, keypath.Collectionf("rolling window size must be greater than zero")
	}

	res := make([]R, 0)
	buf := make([]T, 0, w)
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("rolling: element %d has no value", i)
		}
		buf = append(buf, v)
		if len(buf) == w {
			win := make([]T, w)
			copy(win, buf)
			res = append(res, f(win))
			buf = buf[1:]
		}
	}
	return res, nil
}

// Count returns how many accessed values satisfy pred.
func Count[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (n int, err error) {
	defer keypath.Capture(&err)

	count := 0
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return 0, keypath.InvalidAccessf("count: element %d has no value", i)
		}
		if pred(v) {
			count++
		}
	}
	return count, nil
}

// Any reports whether any accessed value satisfies pred, stopping at the
// first hit.
func Any[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (ok bool, err error) {
	defer keypath.Capture(&err)

	for i, s := range coll {
		v, present := acc.Get(s)
		if !present {
			return false, keypath.InvalidAccessf("any: element %d has no value", i)
		}
		if pred(v) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every accessed value satisfies pred, stopping at the
// first miss.
func All[S, T any](coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (ok bool, err error) {
	defer keypath.Capture(&err)

	for i, s := range coll {
		v, present := acc.Get(s)
		if !present {
			return false, keypath.InvalidAccessf("all: element %d has no value", i)
		}
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}

// Unique returns the set of distinct accessed values.
func Unique[S any, T comparable](coll []S, acc keypath.Accessor[S, T]) (out map[T]struct{}, err error) {
	defer keypath.Capture(&err)

	res := make(map[T]struct{}, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("unique: element %d has no value", i)
		}
		res[v] = struct{}{}
	}
	return res, nil
}

// Distinct returns every distinct accessed value with its occurrence count.
func Distinct[S any, T comparable](coll []S, acc keypath.Accessor[S, T]) (out map[T]int, err error) {
	defer keypath.Capture(&err)

	res := make(map[T]int, len(coll))
	for i, s := range coll {
		v, ok := acc.Get(s)
		if !ok {
			return nil, keypath.InvalidAccessf("distinct: element %d has no value", i)
		}
		res[v]++
	}
	return res, nil
}

// Update applies f through the accessor's write leg, returning a fresh
// collection. The input is not mutated.
func Update[S, T any](coll []S, acc keypath.MutAccessor[S, T], f func(T) T) (out []S, err error) {
	defer keypath.Capture(&err)

	res := append([]S(nil), coll...)
	for i := range res {
		pt, ok := acc.Mut(&res[i])
		if !ok {
			return nil, keypath.InvalidAccessf("update: element %d has no value", i)
		}
		*pt = f(*pt)
	}
	return res, nil
}
