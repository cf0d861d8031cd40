// Package metrics defines and registers all custom Prometheus metrics for
// the dealership application. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealership"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks performed by the
// identity middleware.
// Label:
//   - outcome: "valid", "expired", or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by outcome.",
	},
	[]string{"outcome"},
)

// ReviewsSubmittedTotal counts review mutations.
// Labels:
//   - action: "add", "update", or "delete"
//   - result: "success" or "error"
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of review mutations, by action and result.",
	},
	[]string{"action", "result"},
)
