package keypath

// Path is a composable descriptor of how to reach a value of type T inside a
// value of type S. The read leg is mandatory; the write legs (value set and
// in-place mut) are optional and reported via CanWrite.
type Path[S, T any] struct {
	get func(S) (T, bool)
	set func(S, T) (S, bool)
	mut func(*S) (*T, bool)
}

// New builds a read-only path from a partial getter.
func New[S, T any](get func(S) (T, bool)) Path[S, T] {
	return Path[S, T]{get: get}
}

// Field builds a read-only path from a total getter, for fields that are
// always present.
func Field[S, T any](get func(S) T) Path[S, T] {
	return Path[S, T]{get: func(s S) (T, bool) {
		return get(s), true
	}}
}

// FieldMut builds a read-write path from a total getter and a total in-place
// accessor. The value-set leg is derived from mut by writing into a copy.
func FieldMut[S, T any](get func(S) T, mut func(*S) *T) Path[S, T] {
	return Path[S, T]{
		get: func(s S) (T, bool) { return get(s), true },
		set: func(s S, v T) (S, bool) {
			*mut(&s) = v
			return s, true
		},
		mut: func(s *S) (*T, bool) { return mut(s), true },
	}
}

// NewFull builds a path from explicit partial legs. Nil write legs are
// allowed and make the path read-only.
func NewFull[S, T any](get func(S) (T, bool), set func(S, T) (S, bool), mut func(*S) (*T, bool)) Path[S, T] {
	return Path[S, T]{get: get, set: set, mut: mut}
}

// Identity returns the path from a value to itself.
func Identity[T any]() Path[T, T] {
	return Path[T, T]{
		get: func(v T) (T, bool) { return v, true },
		set: func(_ T, v T) (T, bool) { return v, true },
		mut: func(v *T) (*T, bool) { return v, true },
	}
}

// Index returns a path into position i of a slice. Reads and writes are
// absent when i is out of range. Set copies the slice so the input is never
// mutated through the value leg.
func Index[T any](i int) Path[[]T, T] {
	return Path[[]T, T]{
		get: func(s []T) (T, bool) {
			if i < 0 || i >= len(s) {
				var zero T
				return zero, false
			}
			return s[i], true
		},
		set: func(s []T, v T) ([]T, bool) {
			if i < 0 || i >= len(s) {
				return s, false
			}
			out := append([]T(nil), s...)
			out[i] = v
			return out, true
		},
		mut: func(s *[]T) (*T, bool) {
			if i < 0 || i >= len(*s) {
				return nil, false
			}
			return &(*s)[i], true
		},
	}
}

// Key returns a path into entry k of a map. Map elements are not
// addressable, so the path has no mut leg.
func Key[K comparable, V any](k K) Path[map[K]V, V] {
	return Path[map[K]V, V]{
		get: func(m map[K]V) (V, bool) {
			v, ok := m[k]
			return v, ok
		},
		set: func(m map[K]V, v V) (map[K]V, bool) {
			out := make(map[K]V, len(m)+1)
			for mk, mv := range m {
				out[mk] = mv
			}
			out[k] = v
			return out, true
		},
	}
}

// As returns a path that downcasts a dynamic value to T. A wrong runtime
// type reads as absent; use RequireType when a mismatch must be an error.
func As[T any]() Path[any, T] {
	return Path[any, T]{get: func(v any) (T, bool) {
		t, ok := v.(T)
		return t, ok
	}}
}

// Get reads the value the path points at. The second return reports
// presence.
func (p Path[S, T]) Get(s S) (T, bool) {
	return p.get(s)
}

// Set writes v through the path and returns the updated root. It reports
// false when the path has no write leg or the target is absent.
func (p Path[S, T]) Set(s S, v T) (S, bool) {
	if p.set != nil {
		return p.set(s, v)
	}
	if p.mut != nil {
		if pt, ok := p.mut(&s); ok {
			*pt = v
			return s, true
		}
	}
	return s, false
}

// Mut yields an in-place view of the target, aliasing the same logical field
// as Get.
func (p Path[S, T]) Mut(s *S) (*T, bool) {
	if p.mut == nil {
		return nil, false
	}
	return p.mut(s)
}

// CanWrite reports whether the path carries any write leg.
func (p Path[S, T]) CanWrite() bool {
	return p.set != nil || p.mut != nil
}

// Then composes two paths into a path from S to U. The composed read
// short-circuits on absence without invoking q. Composition is associative:
// Then(Then(p, q), r) behaves exactly like Then(p, Then(q, r)).
func Then[S, T, U any](p Path[S, T], q Path[T, U]) Path[S, U] {
	out := Path[S, U]{
		get: func(s S) (U, bool) {
			t, ok := p.get(s)
			if !ok {
				var zero U
				return zero, false
			}
			return q.get(t)
		},
	}

	if (p.set != nil || p.mut != nil) && (q.set != nil || q.mut != nil) {
		out.set = func(s S, u U) (S, bool) {
			t, ok := p.get(s)
			if !ok {
				return s, false
			}
			t2, ok := q.Set(t, u)
			if !ok {
				return s, false
			}
			return p.Set(s, t2)
		}
	}

	if p.mut != nil && q.mut != nil {
		out.mut = func(s *S) (*U, bool) {
			pt, ok := p.mut(s)
			if !ok {
				return nil, false
			}
			return q.mut(pt)
		}
	}

	return out
}
