// Package metrics exposes Prometheus counters for signal generation and
// ledger activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SignalsGenerated counts analyst recommendations by signal value.
	SignalsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockify_signals_generated_total",
		Help: "Recommendations produced, labeled by signal.",
	}, []string{"signal"})

	// OrdersExecuted counts committed ledger mutations by action.
	OrdersExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockify_orders_executed_total",
		Help: "Paper-trading orders committed, labeled by action.",
	}, []string{"action"})

	// OrdersRejected counts refused ledger operations by reason.
	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockify_orders_rejected_total",
		Help: "Paper-trading orders refused, labeled by reason.",
	}, []string{"reason"})
)

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
