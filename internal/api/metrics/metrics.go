// Package metrics defines and registers the custom Prometheus metrics for
// the leave API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "easyleave"

// LoginsTotal counts login attempts.
// Labels:
//   - account_type: "employee" or "manager"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by account type and result.",
	},
	[]string{"account_type", "result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - account_type: "employee" or "manager"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by account type.",
	},
	[]string{"account_type"},
)

// LeaveRequestsSubmittedTotal counts leave requests submitted by employees.
// Label:
//   - category: the leave category (e.g. "Sick Leave")
var LeaveRequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_requests_submitted_total",
		Help:      "Total number of leave requests submitted, by category.",
	},
	[]string{"category"},
)

// LeaveDecisionsTotal counts manager decisions on pending requests.
// Label:
//   - decision: "approved" or "rejected"
var LeaveDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_decisions_total",
		Help:      "Total number of leave request decisions, by outcome.",
	},
	[]string{"decision"},
)
