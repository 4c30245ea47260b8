package par

import (
	"context"
	"sync"

	"github.com/ib-77/keypath/pkg/keypath"
)

// Pool is an explicit, creatable and destroyable set of reusable worker
// goroutines. It holds no state besides the task channel and is safe for
// concurrent use by multiple operations.
type Pool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	workers   int
	closeOnce sync.Once
}

// NewPool starts workers goroutines consuming the task queue. Requesting
// fewer than one worker is ErrParallel.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, keypath.Parallelf("pool requires at least one worker, got %d", workers)
	}

	p := &Pool{
		tasks:   make(chan func()),
		workers: workers,
	}
	for range workers {
		p.wg.Add(1)
		go p.work()
	}
	return p, nil
}

func (p *Pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Workers returns the fixed pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after the queued tasks drain and waits for them to
// exit. Close is idempotent; submitting after Close panics like any send on
// a closed channel, so destroy the pool only once operations are done.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}

// span is a half-open chunk of input indices owned by one worker task.
type span struct {
	start, end int
}

// splitSpans carves n elements into at most parts near-even chunks.
func splitSpans(n, parts int) []span {
	if n == 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	size := n / parts
	extra := n % parts

	spans := make([]span, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < extra {
			end++
		}
		spans = append(spans, span{start: start, end: end})
		start = end
	}
	return spans
}

// run fans fn out over the chunks of an n-element input and blocks until
// every chunk finished. Chunk errors are gathered into per-chunk slots and
// the lowest-index error is returned, keeping failures reproducible across
// runs. A panic inside fn is captured as ErrRuntimeFailure for its chunk.
func run(ctx context.Context, p *Pool, n int, fn func(ci int, sp span) error) error {
	if p == nil {
		return keypath.Parallelf("operation requires a pool")
	}

	spans := splitSpans(n, p.workers)
	errs := make([]error, len(spans))
	var wg sync.WaitGroup

	for ci, sp := range spans {
		wg.Add(1)
		p.tasks <- func() {
			defer wg.Done()
			defer keypath.Capture(&errs[ci])
			if ctx.Err() != nil {
				return
			}
			errs[ci] = fn(ci, sp)
		}
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	if err := ctx.Err(); err != nil {
		return keypath.ParallelCanceled(err)
	}
	return nil
}
