// Package metrics defines and registers the custom Prometheus metrics of the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default registry on package init
// through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Authentication ────────────────────────────────────────────────────────────

// TokenVerificationsTotal counts bearer token checks.
// Label:
//   - result: "ok", "missing", "malformed", "signature_invalid" or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// LoginAttemptsTotal counts login calls.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Authorization ─────────────────────────────────────────────────────────────

// AuthzDecisionsTotal counts guard decisions.
// Labels:
//   - resource: "none", "shop" or "product"
//   - decision: "allow", "insufficient_role", "not_owner", "not_found" or "error"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by resource kind and outcome.",
	},
	[]string{"resource", "decision"},
)

// ── Bulk mutations ────────────────────────────────────────────────────────────

// BulkDeleteTotal counts delete batches, single deletes included.
// Labels:
//   - kind: "shop" or "product"
//   - outcome: "deleted", "not_owner", "not_found", "bad_request" or "error"
var BulkDeleteTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bulk_delete_total",
		Help:      "Total number of delete batches, by resource kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// BulkDeleteBatchSize observes how many ids each delete request carried.
var BulkDeleteBatchSize = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "bulk_delete_batch_size",
		Help:      "Number of ids per delete request.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
	},
	[]string{"kind"},
)

// ── Creation ──────────────────────────────────────────────────────────────────

// ResourcesCreatedTotal counts create requests.
// Labels:
//   - kind: "shop", "product" or "user"
//   - replayed: "true" when an Idempotency-Key returned an earlier resource
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of create requests served, by kind and idempotent replay.",
	},
	[]string{"kind", "replayed"},
)
