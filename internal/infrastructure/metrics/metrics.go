package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics covers the money-movement paths of the engine.
type EscrowMetrics struct {
	PaymentsInitiatedTotal *prometheus.CounterVec
	PaymentsConfirmedTotal *prometheus.CounterVec
	SettlementsTotal       *prometheus.CounterVec
	ReturnsInitiatedTotal  prometheus.Counter
	ReturnsScannedTotal    *prometheus.CounterVec
	DisputesOpenedTotal    prometheus.Counter
	DisputesResolvedTotal  *prometheus.CounterVec
	GatewayCallDuration    *prometheus.HistogramVec
	SweepTransitionsTotal  *prometheus.CounterVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		PaymentsInitiatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_initiated_total",
				Help: "Checkout sessions initiated, by sale kind",
			},
			[]string{"sale_kind"},
		),

		PaymentsConfirmedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_confirmed_total",
				Help: "Gateway confirmations applied, by resulting payment status",
			},
			[]string{"status"},
		),

		SettlementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_settlements_total",
				Help: "Terminal fund releases, by receiving party and trigger",
			},
			[]string{"released_to", "trigger"},
		),

		ReturnsInitiatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_returns_initiated_total",
				Help: "Return requests created within the trial window",
			},
		),

		ReturnsScannedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_returns_scanned_total",
				Help: "Return tokens consumed at inspection, by action",
			},
			[]string{"action"},
		),

		DisputesOpenedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_disputes_opened_total",
				Help: "Disputes opened from defect claims",
			},
		),

		DisputesResolvedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_disputes_resolved_total",
				Help: "Disputes resolved, by winning party",
			},
			[]string{"winner"},
		),

		GatewayCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_gateway_call_duration_seconds",
				Help:    "Latency of external gateway calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"call"},
		),

		SweepTransitionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_sweep_transitions_total",
				Help: "State transitions applied by the reconciliation sweep",
			},
			[]string{"kind"},
		),
	}
}
