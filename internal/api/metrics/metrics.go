// Package metrics defines and registers all custom Prometheus metrics for
// the workforce API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at
// package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

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

// RegistrationsTotal counts successfully registered employees.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of employee registrations.",
	},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityWritesTotal counts create/update/delete operations that reached the
// persistence layer.
// Labels:
//   - entity: "project", "task", or "workflow"
//   - op: "create", "update", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of entity write operations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ForbiddenTotal counts visibility-policy denials on existing records.
// Label:
//   - resource: the resource kind the denial applied to (e.g. "workflow")
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of operations denied by the visibility policy.",
	},
	[]string{"resource"},
)

// StepCompletionsTotal counts workflow steps moved into the completed state.
var StepCompletionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "step_completions_total",
		Help:      "Total number of workflow steps marked completed.",
	},
)
