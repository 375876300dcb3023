package pathfinder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/heapidx"
	"github.com/katalvlaran/gridpath/roomtable"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultPoolWidth matches the reference implementation's fixed two-deep
// thread-local recursion pool.
const DefaultPoolWidth = 2

// Finder is the process-wide facade: one terrain registry, one pool of
// reusable search engines, one set of metrics. The zero value is not ready
// to use; construct with New.
type Finder struct {
	registry *terrain.Registry
	pool     *Pool
	metrics  *metrics
}

// New returns a Finder with an empty terrain registry (populate it with
// LoadTerrain before the first Search) and a Pool of poolWidth reusable
// search engines sharing callback as their room-callback collaborator.
// registerer may be nil to skip Prometheus registration (e.g. in tests).
func New(callback roomtable.Callback, poolWidth int64, registerer prometheus.Registerer) *Finder {
	registry := terrain.NewRegistry()

	return &Finder{
		registry: registry,
		pool:     NewPool(registry, callback, poolWidth),
		metrics:  newMetrics(registerer),
	}
}

// LoadTerrain populates the process-wide terrain registry. It may be
// called exactly once per Finder.
func (f *Finder) LoadTerrain(entries []terrain.Entry) error {
	return f.registry.LoadTerrain(entries)
}

// Outcome wraps a search.Result with the correlation ID this call was
// tagged with, for joining against structured logs or traces.
type Outcome struct {
	ID uuid.UUID
	search.Result
}

// Search acquires a pooled engine, runs one search, records metrics, and
// returns the tagged outcome. ctx governs only how long Search will wait
// for a free pool slot; the search itself does not poll ctx (use
// search.WithCancel via opts for mid-search cancellation).
func (f *Finder) Search(ctx context.Context, origin coord.WorldPosition, goals []search.Goal, opts ...search.Option) (Outcome, error) {
	id := uuid.New()

	engine, err := f.pool.Acquire(ctx)
	if err != nil {
		return Outcome{ID: id}, err
	}
	defer f.pool.Release(engine)

	start := time.Now()
	result, err := engine.Search(origin, goals, opts...)
	f.metrics.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, heapidx.ErrOverflow) {
			f.metrics.overflow.Inc()
		}

		return Outcome{ID: id}, err
	}

	f.metrics.opsUsed.Add(float64(result.Ops))
	if result.Incomplete {
		f.metrics.incomplete.Inc()
	}

	return Outcome{ID: id, Result: result}, nil
}
