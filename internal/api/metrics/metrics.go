// Package metrics defines and registers the business Prometheus metrics of the
// authentication service. HTTP request metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// Outcome label values other than catalogue error codes.
const (
	OutcomeSuccess = "success"
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or the catalogue code of the failure (e.g. "AUTH_001")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success" or the catalogue code of the failure (e.g. "USR_001")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// OperationDuration measures orchestrator latency as seen by the HTTP layer.
// Label:
//   - operation: "login" or "register"
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of login and registration operations.",
		// bcrypt dominates; default buckets top out too early at high cost factors.
		Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	},
	[]string{"operation"},
)
