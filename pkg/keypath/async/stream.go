package async

import (
	"context"
	"iter"

	"github.com/ib-77/keypath/pkg/keypath"
)

// Stream is a lazily-produced sequence of results. A stream yields zero or
// more successes followed by at most one failure or cancellation, after
// which it stops.
type Stream[T any] struct {
	seq iter.Seq[keypath.Result[T]]
}

// FromSlice turns an in-memory collection into a stream. Each element is a
// cooperative yield point; context expiry at a yield point ends the stream
// with a cancellation.
func FromSlice[T any](ctx context.Context, coll []T) Stream[T] {
	return Stream[T]{seq: func(yield func(keypath.Result[T]) bool) {
		for _, v := range coll {
			if err := ctx.Err(); err != nil {
				yield(keypath.Canceled[T](keypath.AsyncCanceled(err)))
				return
			}
			if !yield(keypath.Success(v)) {
				return
			}
		}
	}}
}

// FromChan adapts an external producer channel into a stream. The channel is
// the upstream suspension point; a closed channel ends the stream.
func FromChan[T any](ctx context.Context, ch <-chan T) Stream[T] {
	return Stream[T]{seq: func(yield func(keypath.Result[T]) bool) {
		for {
			select {
			case <-ctx.Done():
				yield(keypath.Canceled[T](keypath.AsyncCanceled(ctx.Err())))
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				if !yield(keypath.Success(v)) {
					return
				}
			}
		}
	}}
}

// FromResults lifts pre-built results into a stream, mainly for collaborator
// adapters that already speak Result.
func FromResults[T any](results []keypath.Result[T]) Stream[T] {
	return Stream[T]{seq: func(yield func(keypath.Result[T]) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
			if !r.IsSuccess() {
				return
			}
		}
	}}
}

// ToChan drains a collection into a channel, useful for feeding FromChan
// from test producers and examples. The channel closes when the input is
// exhausted or the context expires.
func ToChan[T any](ctx context.Context, coll []T) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for _, v := range coll {
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
