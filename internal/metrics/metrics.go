package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlayersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersCreated,
			Help: HelpTextPlayersCreated,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	DailyClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
		[]string{LabelOutcome},
	)

	InventoryChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryChanges,
			Help: HelpTextInventoryChanges,
		},
		[]string{LabelDirection},
	)

	InventoryRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryRejected,
			Help: HelpTextInventoryRejected,
		},
	)
)

// RecordMoneyDelta books a committed balance change as earned or spent
func RecordMoneyDelta(delta int64) {
	switch {
	case delta > 0:
		MoneyEarned.Add(float64(delta))
	case delta < 0:
		MoneySpent.Add(float64(-delta))
	}
}
