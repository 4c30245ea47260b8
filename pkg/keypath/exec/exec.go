package exec

import (
	"context"
	"fmt"

	"github.com/ib-77/keypath/pkg/keypath"
	"github.com/ib-77/keypath/pkg/keypath/async"
	"github.com/ib-77/keypath/pkg/keypath/par"
	"github.com/ib-77/keypath/pkg/keypath/seq"
)

// Mode identifies one of the three interchangeable execution strategies.
type Mode int

const (
	ModeSequential Mode = iota
	ModeParallel
	ModeAsync
)

// Strategy selects how an operation executes. The zero value is Sequential.
type Strategy struct {
	mode    Mode
	workers int
}

// Sequential is the single-control-flow baseline strategy.
func Sequential() Strategy {
	return Strategy{mode: ModeSequential}
}

// Parallel distributes chunks across up to workers goroutines.
func Parallel(workers int) Strategy {
	return Strategy{mode: ModeParallel, workers: workers}
}

// Async runs cooperatively on the caller's goroutine over a pull-based
// stream.
func Async() Strategy {
	return Strategy{mode: ModeAsync}
}

func (s Strategy) Mode() Mode {
	return s.mode
}

func (s Strategy) Workers() int {
	return s.workers
}

func (s Strategy) String() string {
	switch s.mode {
	case ModeParallel:
		return fmt.Sprintf("parallel(%d)", s.workers)
	case ModeAsync:
		return "async"
	default:
		return "sequential"
	}
}

// Map applies f to every accessed value, order preserved, under the chosen
// strategy.
func Map[S, T, R any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], f func(T) R) ([]R, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return par.Map(ctx, p, coll, acc, f)
	case ModeAsync:
		return async.Collect(async.MapPath(async.FromSlice(ctx, coll), acc, f))
	default:
		return seq.Map(coll, acc, f)
	}
}

// Filter keeps matching elements in their original relative order.
func Filter[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) ([]S, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return par.Filter(ctx, p, coll, acc, pred)
	case ModeAsync:
		return async.Collect(async.FilterPath(async.FromSlice(ctx, coll), acc, pred))
	default:
		return seq.Filter(coll, acc, pred)
	}
}

// Find returns the match with the lowest index under every strategy.
func Find[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (match S, found bool, err error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			var zero S
			return zero, false, err
		}
		defer p.Close()
		return par.Find(ctx, p, coll, acc, pred)
	case ModeAsync:
		return async.Find(async.FromSlice(ctx, coll), acc, pred)
	default:
		return seq.Find(coll, acc, pred)
	}
}

// Collect extracts every accessed value in input order.
func Collect[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T]) ([]T, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return par.Collect(ctx, p, coll, acc)
	case ModeAsync:
		return async.Collect(async.MapPath(async.FromSlice(ctx, coll), acc, func(v T) T { return v }))
	default:
		return seq.Collect(coll, acc)
	}
}

// Count tallies matching values.
func Count[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (int, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return 0, err
		}
		defer p.Close()
		return par.Count(ctx, p, coll, acc, pred)
	case ModeAsync:
		return async.Count(async.FromSlice(ctx, coll), acc, pred)
	default:
		return seq.Count(coll, acc, pred)
	}
}

// Any reports whether any accessed value satisfies pred.
func Any[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (bool, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return false, err
		}
		defer p.Close()
		return par.Any(ctx, p, coll, acc, pred)
	case ModeAsync:
		return async.Any(async.FromSlice(ctx, coll), acc, pred)
	default:
		return seq.Any(coll, acc, pred)
	}
}

// All reports whether every accessed value satisfies pred.
func All[S, T any](ctx context.Context, st Strategy, coll []S, acc keypath.Accessor[S, T], pred func(T) bool) (bool, error) {
	switch st.mode {
	case ModeParallel:
		p, err := par.NewPool(st.workers)
		if err != nil {
			return false, err
		}
		defer p.Close()
		return par.All(ctx, p, coll, acc, pred)
	case ModeAsync:
		return async.All(async.FromSlice(ctx, coll), acc, pred)
	default:
		return seq.All(coll, acc, pred)
	}
}
