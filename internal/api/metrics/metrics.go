// Package metrics defines and registers all custom Prometheus metrics for
// the SWDSMS incident API. It is the single source of truth for metric
// names, labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swdsms"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "missing_credentials", "not_found", "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successfully created accounts by normalized role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ReportsCreatedTotal counts submitted incident reports by type.
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of incident reports submitted, by report type.",
	},
	[]string{"type"},
)

// ReportsSolvedTotal counts reports transitioned to Solved, including
// idempotent re-solves of already-solved reports.
var ReportsSolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_solved_total",
		Help:      "Total number of solve operations that succeeded.",
	},
)
