// Package metrics defines and registers all custom Prometheus metrics for the
// corp-hq API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "corphq"

// RegistrationsTotal counts account registration attempts.
// Label:
//   - result: "success" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsExpiredTotal counts sessions invalidated through logout. Sessions
// reaped by the store's TTL index are not observable here.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of sessions explicitly expired via logout.",
	},
)

// RegionsImportedTotal counts region records persisted by bootstrap imports.
var RegionsImportedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "regions_imported_total",
		Help:      "Total number of region records imported from the external API.",
	},
)

// RegionAPIRetriesTotal counts retried calls against the external region API.
var RegionAPIRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "region_api_retries_total",
		Help:      "Total number of retried requests to the external region API.",
	},
)
