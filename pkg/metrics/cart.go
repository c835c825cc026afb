package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart store activity.
type CartMetrics struct {
	items           prometheus.Gauge
	operations      *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	conflicts       prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer. A nil
// registerer yields a no-op recorder.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_items",
		Help: "Number of line items in the cart after the latest mutation.",
	})
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_persist_failures_total",
		Help: "Cart writes the storage backend rejected.",
	}, []string{"op"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_conflicts_total",
		Help: "Conflict checks that found an overlapping cart entry.",
	})
	reg.MustRegister(items, operations, persistFailures, conflicts)
	return &CartMetrics{
		items:           items,
		operations:      operations,
		persistFailures: persistFailures,
		conflicts:       conflicts,
	}
}

// SetItems records the current item count.
func (c *CartMetrics) SetItems(n int) {
	if c == nil || c.items == nil {
		return
	}
	c.items.Set(float64(n))
}

// IncOperation counts a mutation.
func (c *CartMetrics) IncOperation(op string) {
	if c == nil || c.operations == nil {
		return
	}
	c.operations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncPersistFailure counts a write the backend rejected.
func (c *CartMetrics) IncPersistFailure(op string) {
	if c == nil || c.persistFailures == nil {
		return
	}
	c.persistFailures.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncConflict counts a positive conflict check.
func (c *CartMetrics) IncConflict() {
	if c == nil || c.conflicts == nil {
		return
	}
	c.conflicts.Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
