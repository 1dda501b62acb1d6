// Package metrics defines and registers all custom Prometheus metrics for
// the Consulta Já session gateway. It is the single source of truth for
// metric names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "consulta"

// ── Session metrics ───────────────────────────────────────────────────────────

// SignInsTotal counts successful sign-ins.
// Label:
//   - role: role assigned to the identity ("patient" or "admin")
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of successful sign-ins, by assigned role.",
	},
	[]string{"role"},
)

// SignInFailuresTotal counts rejected sign-in attempts.
var SignInFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signin_failures_total",
		Help:      "Total number of sign-in attempts rejected by the authenticator.",
	},
)

// SignOutsTotal counts sign-outs.
var SignOutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signouts_total",
		Help:      "Total number of sign-outs.",
	},
)

// SessionActive is 1 while an identity occupies the session slot, 0 otherwise.
var SessionActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_active",
		Help:      "Whether an identity currently occupies the session slot (0 or 1).",
	},
)

// ── Gating metrics ────────────────────────────────────────────────────────────

// GateDeniedTotal counts denied destination entries.
// Label:
//   - destination: the destination the caller tried to enter
var GateDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denied_total",
		Help:      "Total number of destination entries denied by the role gate.",
	},
	[]string{"destination"},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsTotal counts sign-up submissions.
// Labels:
//   - kind:   "patient" or "doctor"
//   - result: "accepted", "invalid", or "forbidden"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of sign-up submissions, by kind and result.",
	},
	[]string{"kind", "result"},
)
