package ldengine

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// pool is a persistent worker pool reused across many batches of pair
// computations, adapted from go-highway's contrib/workerpool: spawning
// one goroutine per LD pair would dominate runtime for the sub-microsecond
// kernels in gtsimd, so workers are started once and fed via a channel.
type pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// newPool creates a pool with the given worker count. A count <= 0 uses
// GOMAXPROCS.
func newPool(numWorkers int) *pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// Close shuts the pool down; pending work still completes. Safe to call
// more than once.
func (p *pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// forEachAtomic runs fn(i) for every i in [0, n) across the pool using
// atomic work stealing, so pairs that happen to cost more (bitvector
// strategy vs. sparse-list) don't stall workers that drew cheaper pairs.
// Blocks until every index has been processed, then returns the first
// error any fn call reported (nil if none did). The persistent workC
// goroutines still do the actual work; an errgroup.Group only replaces
// the completion/first-error bookkeeping a sync.WaitGroup would
// otherwise need.
func (p *pool) forEachAtomic(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if p.closed.Load() {
		var firstErr error
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	workers := p.numWorkers
	if n < workers {
		workers = n
	}
	if workers <= 1 {
		var firstErr error
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	var next atomic.Int64
	var g errgroup.Group
	results := make(chan error, workers)
	for range workers {
		p.workC <- func() {
			var firstErr error
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					break
				}
				if err := fn(i); err != nil && firstErr == nil {
					firstErr = err
				}
			}
			results <- firstErr
		}
		g.Go(func() error {
			return <-results
		})
	}
	return g.Wait()
}
