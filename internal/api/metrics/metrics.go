// Package metrics defines and registers all custom Prometheus metrics for the
// housing API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "housing"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListQueriesTotal counts listing requests that reached the store (or cache).
// Labels:
//   - resource: "users" or "departments"
//   - result: "ok" (≥1 match) or "empty" (no matches, reported as 404)
var ListQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_queries_total",
		Help:      "Total number of listing queries, by resource and outcome.",
	},
	[]string{"resource", "result"},
)

// DepartmentCacheTotal counts department-list cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var DepartmentCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "department_cache_total",
		Help:      "Total number of department listing cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

var UsersRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_removed_total",
		Help:      "Total number of users soft-deleted.",
	},
)

var DepartmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "departments_created_total",
		Help:      "Total number of departments created.",
	},
)

var DepartmentsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "departments_removed_total",
		Help:      "Total number of departments soft-deleted.",
	},
)
