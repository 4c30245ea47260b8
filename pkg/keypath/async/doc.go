// Package async is the cooperative operation engine: a Stream[T] is a
// pull-based, lazily-produced sequence of results. Nothing runs until a
// terminal operation pulls, and everything runs on the caller's goroutine,
// so no locking is needed for in-stream state. Suspension points are the
// pulls themselves, which is where context expiry and upstream availability
// are observed.
//
// With an in-memory source (FromSlice) every operation is order- and
// value-equivalent to its seq counterpart; FromChan exists to interleave
// with external producers.
//
// MapPath and FilterPath are lazy and return a new Stream; Collect, Find,
// Fold, Count, Any and All are terminal and materialize a value or error.
package async
