package cache

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks cache behaviour for a CachingResolver, grounded on the
// teacher's cacheHitsTotal/cacheMissesTotal/cacheHitRatio naming and
// construction style. A nil *Metrics is valid and every method on it is a
// no-op, so callers that don't care about observability can skip
// construction entirely.
type Metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	partialHits prometheus.Counter
	hitRatio    prometheus.Gauge

	total     atomic.Uint64
	totalHits atomic.Uint64
}

// NewMetrics registers cache metrics under namespace on registerer.
func NewMetrics(namespace string, registerer prometheus.Registerer) *Metrics {
	return NewMetricsWithRegistry(namespace, registerer)
}

// NewMetricsWithRegistry mirrors the teacher's
// NewPrometheusMetricsWithRegistry shape: a constructor that always takes an
// explicit registry rather than silently reaching for the global default.
func NewMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of cache lookups that fully covered the requested facets.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of cache lookups with no entry for the key.",
		}),
		partialHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "partial_hits_total",
			Help:      "Total number of cache lookups that covered some but not all requested facets.",
		}),
		hitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hit_ratio",
			Help:      "Fraction of lookups since startup that were full or partial hits.",
		}),
	}

	registerer.MustRegister(m.hits, m.misses, m.partialHits, m.hitRatio)
	return m
}

func (m *Metrics) recordHit() {
	if m == nil {
		return
	}
	m.hits.Inc()
	m.bumpRatio(true)
}

func (m *Metrics) recordPartialHit() {
	if m == nil {
		return
	}
	m.partialHits.Inc()
	m.bumpRatio(true)
}

func (m *Metrics) recordMiss() {
	if m == nil {
		return
	}
	m.misses.Inc()
	m.bumpRatio(false)
}

// Snapshot returns the running lookup/hit totals and the current hit
// ratio. Safe to call on a nil *Metrics (returns zeros), mirroring every
// other method here.
func (m *Metrics) Snapshot() (total, hits uint64, ratio float64) {
	if m == nil {
		return 0, 0, 0
	}
	total = m.total.Load()
	hits = m.totalHits.Load()
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return total, hits, ratio
}

func (m *Metrics) bumpRatio(hit bool) {
	total := m.total.Add(1)
	hits := m.totalHits.Load()
	if hit {
		hits = m.totalHits.Add(1)
	}
	m.hitRatio.Set(float64(hits) / float64(total))
}
