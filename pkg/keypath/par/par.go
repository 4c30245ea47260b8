package par

import (
	"context"
	"sort"

	"github.com/ib-77/keypath/pkg/keypath"
)

// Collect extracts every accessed value, reassembled by original index.
func Collect[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T]) ([]T, error) {
	out := make([]T, len(coll))
	err := run(ctx, p, len(coll), func(_ int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("collect: element %d has no value", i)
			}
			out[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Map applies f to every accessed value. Each worker writes only its own
// index range, so output order matches input order by construction.
func Map[S, T, R any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], f func(T) R) ([]R, error) {
	out := make([]R, len(coll))
	err := run(ctx, p, len(coll), func(_ int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("map: element %d has no value", i)
			}
			out[i] = f(v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Filter keeps matching elements. Chunks gather privately and merge in chunk
// order, preserving the input's relative order.
func Filter[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) ([]S, error) {
	parts := make([][]S, p.workers)
	err := run(ctx, p, len(coll), func(ci int, sp span) error {
		kept := make([]S, 0, sp.end-sp.start)
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("filter: element %d has no value", i)
			}
			if pred(v) {
				kept = append(kept, coll[i])
			}
		}
		parts[ci] = kept
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]S, 0, len(coll))
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// Find returns the match with the lowest original index, even when a later
// chunk finishes first.
func Find[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (match S, found bool, err error) {
	hits := make([]int, p.workers)
	for i := range hits {
		hits[i] = -1
	}

	err = run(ctx, p, len(coll), func(ci int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("find: element %d has no value", i)
			}
			if pred(v) {
				hits[ci] = i
				return nil
			}
		}
		return nil
	})
	if err != nil {
		var zero S
		return zero, false, err
	}

	for _, i := range hits {
		if i >= 0 {
			return coll[i], true, nil
		}
	}
	var zero S
	return zero, false, nil
}

// Fold is a two-phase reduce: each chunk folds from init with fold, then the
// chunk results merge in chunk order with combine. Supplying combine is the
// caller's assertion that the reduction is associative and commutative and
// that init is its identity; without that property the result is undefined.
func Fold[S, T, B any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], init B, fold func(B, T) B, combine func(B, B) B) (out B, err error) {
	partial := make([]B, p.workers)
	filled := make([]bool, p.workers)

	err = run(ctx, p, len(coll), func(ci int, sp span) error {
		b := init
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("fold: element %d has no value", i)
			}
			b = fold(b, v)
		}
		partial[ci] = b
		filled[ci] = true
		return nil
	})
	if err != nil {
		var zero B
		return zero, err
	}

	res := init
	for ci, b := range partial {
		if filled[ci] {
			res = combine(res, b)
		}
	}
	return res, nil
}

// Partition splits into matches and the rest, both merged in chunk order so
// relative order is preserved.
func Partition[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (matches, rest []S, err error) {
	type part struct {
		m, r []S
	}
	parts := make([]part, p.workers)

	err = run(ctx, p, len(coll), func(ci int, sp span) error {
		var pt part
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("partition: element %d has no value", i)
			}
			if pred(v) {
				pt.m = append(pt.m, coll[i])
			} else {
				pt.r = append(pt.r, coll[i])
			}
		}
		parts[ci] = pt
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	matches = make([]S, 0, len(coll))
	rest = make([]S, 0, len(coll))
	for _, pt := range parts {
		matches = append(matches, pt.m...)
		rest = append(rest, pt.r...)
	}
	return matches, rest, nil
}

// Group buckets elements by key. Chunk maps merge in chunk order, so each
// bucket keeps the input's relative order.
func Group[S, T any, K comparable](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], key func(T) K) (map[K][]S, error) {
	parts := make([]map[K][]S, p.workers)

	err := run(ctx, p, len(coll), func(ci int, sp span) error {
		buckets := make(map[K][]S)
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("group: element %d has no value", i)
			}
			k := key(v)
			buckets[k] = append(buckets[k], coll[i])
		}
		parts[ci] = buckets
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[K][]S)
	for _, buckets := range parts {
		for k, b := range buckets {
			out[k] = append(out[k], b...)
		}
	}
	return out, nil
}

// Sort extracts the ordering keys in parallel, then performs one stable sort
// over the gathered keys. Ties keep their original relative order. The input
// is not mutated.
func Sort[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], cmp func(a, b T) int) (out []S, err error) {
	keys, err := Collect(ctx, p, coll, acc)
	if err != nil {
		return nil, err
	}
	defer keypath.Capture(&err)

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

// Zip pairs the two collections by index; result length is the shorter
// input.
func Zip[A, B, TA, TB, R any](ctx context.Context, p *Pool, c1 []A, c2 []B, acc1 keypath.Accessor[A, TA], acc2 keypath.Accessor[B, TB], f func(TA, TB) R) ([]R, error) {
	n := len(c1)
	if len(c2) < n {
		n = len(c2)
	}

	out := make([]R, n)
	err := run(ctx, p, n, func(_ int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v1, ok := acc1.Get(c1[i])
			if !ok {
				return keypath.InvalidAccessf("zip: left element %d has no value", i)
			}
			v2, ok := acc2.Get(c2[i])
			if !ok {
				return keypath.InvalidAccessf("zip: right element %d has no value", i)
			}
			out[i] = f(v1, v2)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Window extracts values in parallel, then aggregates all window starts in
// parallel, each slot addressed by its start index. The windows handed to f
// are overlapping views of one extracted slice; f must not modify or retain
// them.
func Window[S, T, R any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], w int, f func([]T) R) ([]R, error) {
	if w == 0 || w > len(coll) {
		return nil, keypath.Collectionf("invalid window size %d for %d elements", w, len(coll))
	}

	vals, err := Collect(ctx, p, coll, acc)
	if err != nil {
		return nil, err
	}

	out := make([]R, len(coll)-w+1)
	err = run(ctx, p, len(out), func(_ int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			out[i] = f(vals[i : i+w])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rolling matches seq.Rolling: same aggregates as Window once the buffer
// fills, empty output when it never does, ErrCollection only on a zero size.
func Rolling[S, T, R any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], w int, f func([]T) R) ([]R, error) {
	if w == 0 {
		return nil, keypath.Collectionf("rolling window size must be greater than zero")
	}
	if w > len(coll) {
		return []R{}, nil
	}
	return Window(ctx, p, coll, acc, w, f)
}

// Count combines per-chunk tallies; the sum is commutative, so chunk
// completion order is irrelevant.
func Count[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (int, error) {
	counts := make([]int, p.workers)
	err := run(ctx, p, len(coll), func(ci int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("count: element %d has no value", i)
			}
			if pred(v) {
				counts[ci]++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Any reduces per-chunk hits with a logical or.
func Any[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (bool, error) {
	hits := make([]bool, p.workers)
	err := run(ctx, p, len(coll), func(ci int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("any: element %d has no value", i)
			}
			if pred(v) {
				hits[ci] = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, h := range hits {
		if h {
			return true, nil
		}
	}
	return false, nil
}

// All reduces per-chunk verdicts with a logical and.
func All[S, T any](ctx context.Context, p *Pool, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (bool, error) {
	misses := make([]bool, p.workers)
	err := run(ctx, p, len(coll), func(ci int, sp span) error {
		for i := sp.start; i < sp.end; i++ {
			v, ok := acc.Get(coll[i])
			if !ok {
				return keypath.InvalidAccessf("all: element %d has no value", i)
			}
			if !pred(v) {
				misses[ci] = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, m := range misses {
		if m {
			return false, nil
		}
	}
	return true, nil
}
