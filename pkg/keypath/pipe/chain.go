package pipe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/keypath/pkg/keypath"
	"github.com/ib-77/keypath/pkg/keypath/seq"
)

// Chain wraps a Result over a whole collection with a context to enable
// fluent chaining. A failed or canceled step short-circuits everything after
// it.
type Chain[S any] struct {
	ctx context.Context
	res keypath.Result[[]S]
}

// Start creates a chain from an existing result.
func Start[S any](ctx context.Context, res keypath.Result[[]S]) *Chain[S] {
	return &Chain[S]{ctx: ctx, res: res}
}

// From creates a chain from a collection.
func From[S any](ctx context.Context, coll []S) *Chain[S] {
	return &Chain[S]{ctx: ctx, res: keypath.Success(coll)}
}

// Result returns the underlying result.
func (c *Chain[S]) Result() keypath.Result[[]S] {
	return c.res
}

// Collect collapses the chain into the collection or the first error.
func (c *Chain[S]) Collect() ([]S, error) {
	if !c.res.IsSuccess() {
		return nil, c.res.Err()
	}
	return c.res.Value(), nil
}

// Ensure runs a side effect on a successful collection without changing the
// result.
func (c *Chain[S]) Ensure(onSuccess func(ctx context.Context, coll []S)) *Chain[S] {
	if c.res.IsSuccess() {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Trace logs the state of the chain at a named stage. It never alters the
// result.
func (c *Chain[S]) Trace(log *zerolog.Logger, stage string) *Chain[S] {
	if log == nil {
		return c
	}
	switch {
	case c.res.IsCancel():
		log.Warn().Str("stage", stage).AnErr("error", c.res.Err()).Msg("chain canceled")
	case c.res.IsFailure():
		log.Error().Str("stage", stage).AnErr("error", c.res.Err()).Msg("chain failed")
	default:
		log.Debug().
			Str("stage", stage).
			Str("result_id", c.res.Id().String()).
			Int("len", len(c.res.Value())).
			Msg("chain stage")
	}
	return c
}

// Take keeps the first n elements; n past the end keeps everything.
func (c *Chain[S]) Take(n int) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		if n < 0 {
			n = 0
		}
		if n > len(coll) {
			n = len(coll)
		}
		return append([]S(nil), coll[:n]...), nil
	})
}

// Skip drops the first n elements; n past the end drops everything.
func (c *Chain[S]) Skip(n int) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		if n < 0 {
			n = 0
		}
		if n > len(coll) {
			n = len(coll)
		}
		return append([]S(nil), coll[n:]...), nil
	})
}

// Reverse flips the element order.
func (c *Chain[S]) Reverse() *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		out := make([]S, len(coll))
		for i, s := range coll {
			out[len(coll)-1-i] = s
		}
		return out, nil
	})
}

func step[In, Out any](c *Chain[In], f func([]In) ([]Out, error)) *Chain[Out] {
	if c.res.IsCancel() {
		return &Chain[Out]{ctx: c.ctx, res: keypath.Transfer[[]In, []Out](c.res)}
	}
	if c.res.IsFailure() {
		return &Chain[Out]{ctx: c.ctx, res: keypath.Transfer[[]In, []Out](c.res)}
	}
	if err := c.ctx.Err(); err != nil {
		return &Chain[Out]{ctx: c.ctx, res: keypath.Canceled[[]Out](err)}
	}

	out, err := f(c.res.Value())
	if err != nil {
		return &Chain[Out]{ctx: c.ctx, res: keypath.Failure[[]Out](err)}
	}
	return &Chain[Out]{ctx: c.ctx, res: keypath.Success(out)}
}

// Filter keeps the elements whose accessed value satisfies pred.
func Filter[S, T any](c *Chain[S], acc keypath.Accessor[S, T], pred func(T) bool) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		return seq.Filter(coll, acc, pred)
	})
}

// MapTo transforms every element's accessed value, changing the chain's
// element type.
func MapTo[S, T, R any](c *Chain[S], acc keypath.Accessor[S, T], f func(T) R) *Chain[R] {
	return step(c, func(coll []S) ([]R, error) {
		return seq.Map(coll, acc, f)
	})
}

// SortBy stably sorts the chain by cmp over the accessed values.
func SortBy[S, T any](c *Chain[S], acc keypath.Accessor[S, T], cmp func(a, b T) int) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		return seq.Sort(coll, acc, cmp)
	})
}

// WhenEach conditionally rewrites matching elements in place of the chain.
func WhenEach[S, T any](c *Chain[S], acc keypath.Accessor[S, T], cond func(T) bool, f func(S) S) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		return When(coll, acc, cond, f)
	})
}

// UnlessEach rewrites the elements that do not match cond.
func UnlessEach[S, T any](c *Chain[S], acc keypath.Accessor[S, T], cond func(T) bool, f func(S) S) *Chain[S] {
	return step(c, func(coll []S) ([]S, error) {
		return Unless(coll, acc, cond, f)
	})
}

// GroupBy collapses the chain into buckets keyed by the accessed values.
func GroupBy[S, T any, K comparable](c *Chain[S], acc keypath.Accessor[S, T], key func(T) K) (map[K][]S, error) {
	if !c.res.IsSuccess() {
		return nil, c.res.Err()
	}
	return seq.Group(c.res.Value(), acc, key)
}
