package keypath

// Accessor is the read contract the engines operate through. External
// accessor generators only have to produce values satisfying this interface;
// Path is the in-package implementation.
type Accessor[S, T any] interface {
	// Get reads the target value; the bool reports presence.
	Get(s S) (T, bool)
}

// MutAccessor extends Accessor with an in-place write view.
type MutAccessor[S, T any] interface {
	Accessor[S, T]
	// Mut yields a mutable view aliasing the same logical field as Get.
	Mut(s *S) (*T, bool)
}
