// Package metrics defines and registers all custom Prometheus metrics for the
// sales back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Sale metrics ──────────────────────────────────────────────────────────────

// SalesCreatedTotal counts successfully committed sales.
var SalesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales committed successfully.",
	},
)

// SalesRejectedTotal counts rejected sale requests.
// Label:
//   - reason: short description of the rejection (e.g. "insufficient_stock",
//     "product_not_found", "empty_order", "invalid")
var SalesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_rejected_total",
		Help:      "Total number of sale requests rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// LedgerEntriesTotal counts appended financial entries.
// Label:
//   - kind: "credit" or "debit"
var LedgerEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_entries_total",
		Help:      "Total number of financial ledger entries appended, by kind.",
	},
	[]string{"kind"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthDeniedTotal counts denied requests at the auth gate.
// Label:
//   - reason: "unauthenticated" (missing/invalid/expired token) or
//     "forbidden" (valid identity, wrong role)
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// ── Restock alert metrics ─────────────────────────────────────────────────────

// RestockAlertsTotal counts delivered low-stock alerts.
var RestockAlertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restock_alerts_total",
		Help:      "Total number of restock alerts delivered.",
	},
)

// RestockQueueDepth tracks the current number of alerts waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RestockQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "restock_queue_depth",
		Help:      "Current number of restock alerts pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
