package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts transfer submissions by mode and outcome status
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_client_submissions_total",
			Help: "Total number of transfer submissions",
		},
		[]string{"mode", "status"},
	)

	// SubmissionDuration tracks time from submit to final receipt
	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_client_submission_duration_seconds",
			Help:    "Transfer submission duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"mode"},
	)

	// SubmissionsInFlight is 1 while a submission is running
	SubmissionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_client_submissions_in_flight",
			Help: "Number of transfer submissions currently in flight",
		},
	)

	// TransactionsSent counts transactions sent by step (approve, transfer)
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_client_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"step", "status"},
	)

	// GasUsed tracks gas used by confirmed transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_client_gas_used",
			Help:    "Gas used by bridge client transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"step"},
	)

	// BalanceReadErrors counts failed balance reads by kind (native, token)
	BalanceReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_client_balance_read_errors_total",
			Help: "Total number of failed balance reads",
		},
		[]string{"network", "kind"},
	)

	// ConnectAttempts counts connect and switch attempts
	ConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_client_connect_attempts_total",
			Help: "Total number of wallet connect and network switch attempts",
		},
		[]string{"network", "result"},
	)
)
