package pathfinder

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors one Finder registers and
// updates per search.
type metrics struct {
	duration   prometheus.Histogram
	opsUsed    prometheus.Counter
	incomplete prometheus.Counter
	overflow   prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of Finder.Search calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		opsUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "search_ops_total",
			Help:      "Cumulative JPS expansion steps spent across all searches.",
		}),
		incomplete: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "search_incomplete_total",
			Help:      "Searches that exhausted their ops or cost budget before reaching a goal.",
		}),
		overflow: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "search_heap_overflow_total",
			Help:      "Searches that aborted because the open-list heap reached capacity.",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(m.duration, m.opsUsed, m.incomplete, m.overflow)
	}

	return m
}
