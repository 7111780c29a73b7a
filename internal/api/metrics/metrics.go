// Package metrics defines and registers all custom Prometheus metrics for the
// client administration API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clientadmin"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of administrator login attempts, by result.",
	},
	[]string{"result"},
)

// UploadsTotal counts standalone image upload requests.
// Label:
//   - result: "stored" or "rejected" (missing file / disallowed extension)
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image uploads, by result.",
	},
	[]string{"result"},
)

// ClientWritesTotal counts successful client record writes.
// Label:
//   - operation: "create", "update", or "app_update"
var ClientWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_writes_total",
		Help:      "Total number of successful client record writes, by operation.",
	},
	[]string{"operation"},
)

// TokenVerificationsTotal counts bearer token checks at the auth gate.
// Label:
//   - result: "ok", "missing", or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
