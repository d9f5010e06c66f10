package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for placement runs, labelled by box.
type Metrics struct {
	itemsPlaced *prometheus.CounterVec
	fillers     *prometheus.CounterVec
	overflows   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the placement metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		itemsPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pickpack",
			Subsystem: "placement",
			Name:      "items_placed_total",
			Help:      "Total number of devices placed in a box",
		}, []string{"box"}),
		fillers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pickpack",
			Subsystem: "placement",
			Name:      "filler_regions_total",
			Help:      "Total number of unusable gaps marked as occupied",
		}, []string{"box"}),
		overflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pickpack",
			Subsystem: "placement",
			Name:      "overflows_total",
			Help:      "Total number of orders that did not fit their box",
		}, []string{"box"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pickpack",
			Subsystem: "placement",
			Name:      "placement_duration_seconds",
			Help:      "Time taken to place a complete order",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"box"}),
	}

	for _, c := range []prometheus.Collector{m.itemsPlaced, m.fillers, m.overflows, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
