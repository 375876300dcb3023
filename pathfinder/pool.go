package pathfinder

import (
	"context"
	"sync"

	"github.com/katalvlaran/gridpath/roomtable"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
	"golang.org/x/sync/semaphore"
)

// Pool is a bounded, reusable set of search.Engine instances, generalizing
// the reference implementation's fixed two-deep thread-local recursion
// pool to a process-wide pool sized for expected concurrency.
type Pool struct {
	registry *terrain.Registry
	callback roomtable.Callback

	sem *semaphore.Weighted

	mu   sync.Mutex
	free []*search.Engine
}

// NewPool returns a Pool bound to registry and callback, weighted to allow
// at most width concurrent Acquire holders. Beyond that width, Acquire
// blocks until a prior holder calls Release.
func NewPool(registry *terrain.Registry, callback roomtable.Callback, width int64) *Pool {
	return &Pool{
		registry: registry,
		callback: callback,
		sem:      semaphore.NewWeighted(width),
	}
}

// Acquire blocks until a slot is free (or ctx is done), then returns a
// search.Engine: either one returned by a previous Release, or a freshly
// allocated one if the pool's free list is empty. The caller must Release
// it exactly once.
func (p *Pool) Acquire(ctx context.Context) (*search.Engine, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		engine := p.free[n-1]
		p.free = p.free[:n-1]

		return engine, nil
	}

	return search.NewEngine(p.registry, p.callback), nil
}

// Release returns engine to the pool, making its slot available to the
// next Acquire.
func (p *Pool) Release(engine *search.Engine) {
	p.mu.Lock()
	p.free = append(p.free, engine)
	p.mu.Unlock()
	p.sem.Release(1)
}
