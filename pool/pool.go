// Package pool provides the worker pool that drives the parallel engines in
// this module: a processor-count sizing policy, a chunked parallel-for with
// an implicit barrier, and a fork-join primitive for recursive
// decomposition.
//
// A Pool owns a fixed number of worker slots for its lifetime. Work forked
// through the pool runs on its own goroutine while a slot is available;
// when every slot is taken the work degrades to the calling goroutine
// instead of waiting, so a computation always completes even when no
// parallelism is available.
package pool

import (
	"github.com/forkjoin/parfor"
	"github.com/forkjoin/parfor/internal"
)

// A Pool executes work across a fixed number of workers. A Pool holds no
// cross-call state beyond its size and its slot bookkeeping; it is safe for
// concurrent use by multiple goroutines.
type Pool struct {
	workers int
	slots   chan struct{}
}

// New creates a pool, sized by the options. Without a WithWorkers option the
// worker count comes from DefaultWorkers, which applies the processor-count
// policy at call time. An explicit worker count of zero or less is a
// configuration error.
func New(opts ...Option) (*Pool, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	workers := cfg.workers
	if !cfg.workersSet {
		workers = DefaultWorkers()
	}
	return &Pool{
		workers: workers,
		slots:   make(chan struct{}, workers),
	}, nil
}

// Default returns a pool sized by the processor-count policy. It is
// equivalent to New with no options, which cannot fail.
func Default() *Pool {
	p, _ := New()
	return p
}

// Workers returns the number of workers the pool was configured with.
func (p *Pool) Workers() int {
	return p.workers
}

// For divides the half-open range from low to high into contiguous,
// non-overlapping chunks, at most one per worker, and invokes f for each
// chunk in parallel. For returns only when every chunk has completed, so
// the return itself is a barrier.
//
// The chunk count is clamped to the size of the range; f is never invoked
// with an empty chunk, and an empty range invokes f not at all.
//
// For panics if high < low. If one or more invocations of f panic, For
// panics with the left-most recovered panic value.
func (p *Pool) For(low, high int, f parfor.RangeFunc) {
	chunks := internal.Chunks(low, high, p.workers)
	if high == low {
		return
	}
	batch := ((high - low - 1) / chunks) + 1
	tasks := make([]*Task, 0, chunks)
	for start := low; start < high; start += batch {
		end := start + batch
		if end > high {
			end = high
		}
		lo, hi := start, end
		tasks = append(tasks, p.Fork(func() { f(lo, hi) }))
	}
	for _, t := range tasks {
		t.Join()
	}
}
