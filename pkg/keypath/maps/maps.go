package maps

import (
	"cmp"
	"sort"

	"github.com/ib-77/keypath/pkg/keypath"
)

// MapValues applies f to the accessed value of every map value, keeping the
// keys. A missing value aborts the call with ErrInvalidAccess.
func MapValues[K comparable, V, T, R any](m map[K]V, acc keypath.Accessor[V, T], f func(T) R) (out map[K]R, err error) {
	defer keypath.Capture(&err)

	res := make(map[K]R, len(m))
	for k, v := range m {
		t, ok := acc.Get(v)
		if !ok {
			return nil, keypath.InvalidAccessf("map values: key %v has no value", k)
		}
		res[k] = f(t)
	}
	return res, nil
}

// FilterValues keeps the entries whose accessed value satisfies pred.
func FilterValues[K comparable, V, T any](m map[K]V, acc keypath.Accessor[V, T], pred func(T) bool) (out map[K]V, err error) {
	defer keypath.Capture(&err)

	res := make(map[K]V, len(m))
	for k, v := range m {
		t, ok := acc.Get(v)
		if !ok {
			return nil, keypath.InvalidAccessf("filter values: key %v has no value", k)
		}
		if pred(t) {
			res[k] = v
		}
	}
	return res, nil
}

// SortedKeys returns the map's keys in ascending order, for deterministic
// iteration over results.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
