// Package metrics defines and registers all custom Prometheus metrics for the
// school records API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school"

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityWritesTotal counts successful entity mutations.
// Labels:
//   - entity: "student" or "teacher"
//   - op: "create", "update" or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "op"},
)

// EntityRejectionsTotal counts writes rejected before any mutation.
// Labels:
//   - entity: "student" or "teacher"
//   - reason: "validation", "conflict" or "not_found"
var EntityRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_rejections_total",
		Help:      "Total number of entity writes rejected by validation or store constraints.",
	},
	[]string{"entity", "reason"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionOpsTotal counts session registry operations.
// Labels:
//   - op: "login", "verify" or "logout"
//   - result: "ok", "mismatch", "invalid" or "error"
var SessionOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_ops_total",
		Help:      "Total number of session registry operations, by result.",
	},
	[]string{"op", "result"},
)

// ── Channel metrics ───────────────────────────────────────────────────────────

// NotificationsTotal counts notification dispatch attempts.
// Label:
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification dispatch attempts.",
	},
	[]string{"result"},
)

// MediaUploadsTotal counts profile picture uploads.
// Label:
//   - result: "stored" or "failed"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of profile picture uploads.",
	},
	[]string{"result"},
)

// ExternalCallDuration measures every bounded call to an external channel.
// Labels:
//   - operation: e.g. "students.create", "storage.put", "notify.publish"
//   - result: "ok", "error" or "timeout"
var ExternalCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "external_call_duration_seconds",
		Help:      "Duration of calls to persistence, object storage and messaging channels.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation", "result"},
)
