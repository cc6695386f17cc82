// Package metrics defines the custom Prometheus metrics for the asset
// inventory API. It is the single source of truth for metric names, labels,
// and help strings; the default registry picks everything up via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// LoginsTotal counts login attempts.
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

// SessionsRevokedTotal counts explicit sign-outs.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by sign-out.",
	},
)

// RowsCreatedTotal counts successful inserts.
// Label:
//   - resource: "assets", "categories", or "departments"
var RowsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_created_total",
		Help:      "Total number of rows inserted, by resource.",
	},
	[]string{"resource"},
)

// AssetsDeletedTotal counts administrator asset deletions.
var AssetsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_deleted_total",
		Help:      "Total number of assets deleted.",
	},
)

// ConflictsTotal counts unique-name violations surfaced to users.
// Label:
//   - resource: "categories", "departments", or "users"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of uniqueness conflicts reported, by resource.",
	},
	[]string{"resource"},
)

// UsersProvisionedTotal counts successfully provisioned users.
// Label:
//   - role: "admin" or "user"
var UsersProvisionedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_provisioned_total",
		Help:      "Total number of users provisioned, by role.",
	},
	[]string{"role"},
)
