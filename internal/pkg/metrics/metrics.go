// Package metrics defines and registers the custom Prometheus metrics of the
// chat service. HTTP request metrics come from the echoprometheus middleware;
// this package only holds domain-level series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flex"

// AsksTotal counts answered chat messages.
// Label:
//   - path: "greeting" (canned reply) or "completion" (sent to the model)
var AsksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asks_total",
		Help:      "Total number of chat messages handled, by response path.",
	},
	[]string{"path"},
)

// CompletionErrorsTotal counts failed calls to the completion service.
var CompletionErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_errors_total",
		Help:      "Total number of completion requests that failed.",
	},
)

// CompletionDuration measures the round trip to the completion service.
var CompletionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_duration_seconds",
		Help:      "Duration of completion service round trips.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts credential checks.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
