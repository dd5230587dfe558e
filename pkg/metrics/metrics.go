// Package metrics exposes Prometheus instrumentation for the
// distribution core: dispatch counters updated inline and cluster
// gauges recomputed by a background poller.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Dispatch metrics
	TasksDispatched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cipherswarm_tasks_dispatched_total",
			Help: "Total number of task slices handed to agents",
		},
	)

	TasksReclaimed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cipherswarm_tasks_reclaimed_total",
			Help: "Total number of expired leases returned to the pool",
		},
	)

	CracksObserved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cipherswarm_cracks_observed_total",
			Help: "Total number of fresh plaintexts accepted",
		},
	)

	// Cluster gauges, recomputed by the Poller
	TasksByState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cipherswarm_tasks",
			Help: "Number of tasks by state",
		},
		[]string{"state"},
	)

	ActiveAgents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cipherswarm_active_agents",
			Help: "Number of agents in the active state",
		},
	)

	ActiveCampaigns = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cipherswarm_active_campaigns",
			Help: "Number of campaigns in the active state",
		},
	)

	QueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cipherswarm_queue_depth",
			Help: "Number of pending tasks awaiting an agent",
		},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cipherswarm_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cipherswarm_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(TasksDispatched)
	prometheus.MustRegister(TasksReclaimed)
	prometheus.MustRegister(CracksObserved)
	prometheus.MustRegister(TasksByState)
	prometheus.MustRegister(ActiveAgents)
	prometheus.MustRegister(ActiveCampaigns)
	prometheus.MustRegister(QueueDepth)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
}

// Handler returns the Prometheus HTTP handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
