// Package metrics defines the custom Prometheus metrics of the roledash API.
// All metrics register with the default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roledash"

// ── Authentication ────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "bad_request" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "validation", "conflict" or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout requests, including ones without a session.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout requests.",
	},
)

// ── Authorization gate ────────────────────────────────────────────────────────

// GateDecisionsTotal counts decisions of the page authorization gate.
// Label:
//   - outcome: "allow", "login_redirect", "invalid_token", "unauthorized",
//     "dashboard_redirect"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of authorization gate decisions on protected and public pages.",
	},
	[]string{"outcome"},
)

// ── Throttling ────────────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the attempt limiter.
// Label:
//   - scope: "login" or "signup"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429.",
	},
	[]string{"scope"},
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// AccountsDeletedTotal counts deleted accounts.
// Label:
//   - actor: "self" or "admin"
var AccountsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of deleted accounts, by who requested the deletion.",
	},
	[]string{"actor"},
)
