package keypath

import (
	"context"
	"errors"
	"fmt"
)

// The closed error vocabulary of this module. Every error returned by the
// engines wraps exactly one of these sentinels, so callers can classify with
// errors.Is.
var (
	ErrInvalidAccess  = errors.New("invalid keypath access")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrRuntimeFailure = errors.New("runtime failure")
	ErrCollection     = errors.New("collection operation failed")
	ErrAsync          = errors.New("async operation failed")
	ErrParallel       = errors.New("parallel operation failed")
)

// InvalidAccessf reports a required accessor read that found nothing.
func InvalidAccessf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAccess, fmt.Sprintf(format, args...))
}

// TypeMismatchf reports a value present but of the wrong shape.
func TypeMismatchf(expected, found string) error {
	return fmt.Errorf("%w: expected %s, found %s", ErrTypeMismatch, expected, found)
}

// RuntimeFailuref reports an internal or collaborator fault surfaced through
// this layer.
func RuntimeFailuref(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRuntimeFailure, fmt.Sprintf(format, args...))
}

// Collectionf reports a violated structural precondition, e.g. a bad window
// size.
func Collectionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCollection, fmt.Sprintf(format, args...))
}

// Asyncf reports a failure of the asynchronous strategy itself.
func Asyncf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAsync, fmt.Sprintf(format, args...))
}

// Parallelf reports a failure of the parallel strategy itself, e.g. a pool
// that could not be created.
func Parallelf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParallel, fmt.Sprintf(format, args...))
}

// ParallelCanceled reports parallel work cut short by context expiry. Both
// ErrParallel and the ctx error are wrapped, so errors.Is matches either.
func ParallelCanceled(err error) error {
	return fmt.Errorf("%w: canceled: %w", ErrParallel, err)
}

// AsyncCanceled reports a stream ended by context expiry. Both ErrAsync and
// the ctx error are wrapped, so errors.Is matches either.
func AsyncCanceled(err error) error {
	return fmt.Errorf("%w: source canceled: %w", ErrAsync, err)
}

// Capture converts a panic escaping a user callback into ErrRuntimeFailure.
// Deferred at the top of every public operation so no panic crosses the
// module boundary. A panic carrying an error from this vocabulary is kept
// as-is.
func Capture(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && isVocabulary(e) {
		*err = e
		return
	}
	*err = RuntimeFailuref("recovered panic: %v", r)
}

func isVocabulary(err error) bool {
	return errors.Is(err, ErrInvalidAccess) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrRuntimeFailure) ||
		errors.Is(err, ErrCollection) ||
		errors.Is(err, ErrAsync) ||
		errors.Is(err, ErrParallel)
}

// IsCancellation reports whether err stems from context expiry.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// RequireType is the strict companion of As: a wrong runtime type is a
// TypeMismatch error rather than absence.
func RequireType[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, TypeMismatchf(fmt.Sprintf("%T", t), fmt.Sprintf("%T", v))
	}
	return t, nil
}
