package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncState is 1 for the state each network is currently in and 0 otherwise
	SyncState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vebal_sync_state",
			Help: "Current veBAL sync state per secondary network",
		},
		[]string{"account", "network", "state"},
	)

	// ProjectedBalance tracks the decayed veBAL balance per secondary network
	ProjectedBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vebal_sync_projected_balance",
			Help: "Projected veBAL balance on each secondary network",
		},
		[]string{"account", "network"},
	)

	// FetchesTotal counts subgraph fetches by source and status
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vebal_sync_fetches_total",
			Help: "Total number of lock record fetches",
		},
		[]string{"source", "status"},
	)

	// FetchDuration tracks how long each subgraph fetch takes
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vebal_sync_fetch_duration_seconds",
			Help:    "Lock record fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// SubmissionsTotal counts sendUserBalance submissions by target network and status
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vebal_sync_submissions_total",
			Help: "Total number of bridge sync transactions submitted",
		},
		[]string{"network", "status"},
	)

	// NativeFeeWei tracks the last estimated bridge fee per target network
	NativeFeeWei = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vebal_sync_native_fee_wei",
			Help: "Last estimated LayerZero native fee in wei",
		},
		[]string{"network"},
	)

	// LastRefetch is the unix time of the poller's last completed refetch cycle.
	// Only the polled account is labelled.
	LastRefetch = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vebal_sync_last_refetch_timestamp_seconds",
			Help: "Unix time of the last completed refetch",
		},
		[]string{"account"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vebal_sync_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
