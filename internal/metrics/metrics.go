package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconciliationsTotal counts reconcile and revoke runs by operation and outcome
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_reconciliations_total",
			Help: "Total number of claim reconciliations",
		},
		[]string{"operation", "outcome"},
	)

	// ReconciliationErrors counts failed reconciliations by error kind
	ReconciliationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_reconciliation_errors_total",
			Help: "Total number of failed claim reconciliations",
		},
		[]string{"operation", "error_type"},
	)

	// LedgerCallDuration tracks ledger gateway round-trip time
	LedgerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_ledger_call_duration_seconds",
			Help:    "Ledger gateway call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		},
		[]string{"method"},
	)

	// LedgerWritesTotal counts claim submissions sent to the ledger
	LedgerWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_ledger_writes_total",
			Help: "Total number of claim add/revoke submissions",
		},
		[]string{"method", "status"},
	)

	// DeduplicatedCalls counts reconcile calls that joined an in-flight run
	DeduplicatedCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_reconciliation_deduplicated_total",
			Help: "Reconciliations served by an in-flight call for the same identity",
		},
		[]string{"operation"},
	)
)
