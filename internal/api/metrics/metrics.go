// Package metrics defines and registers the custom Prometheus metrics of
// the panel API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "panel"

// AuthDecisionsTotal counts identity resolutions at the API boundary.
// Label:
//   - outcome: "verified", "unauthenticated", or "forbidden"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of init-data authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// BroadcastsTotal counts accepted broadcast requests.
// Label:
//   - scope: "all", "auto_homework", or "auto_homework_schedule"
var BroadcastsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_total",
		Help:      "Total number of dispatched broadcasts, by scope.",
	},
	[]string{"scope"},
)

// BroadcastRecipients observes how many delivery attempts one broadcast
// issued.
var BroadcastRecipients = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "broadcast_recipients",
		Help:      "Delivery attempts issued per broadcast.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	},
)
