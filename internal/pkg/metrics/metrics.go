package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "motor",
			Name:      "notifications_total",
			Help:      "Reminder notifications by window, channel and outcome.",
		},
		[]string{"window", "channel", "outcome"},
	)

	MileageNudgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "motor",
			Name:      "mileage_nudges_total",
			Help:      "Weekly mileage update nudges by outcome.",
		},
		[]string{"outcome"},
	)

	SentStateWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "motor",
			Name:      "sent_state_writes_total",
			Help:      "Week-window sent-state updates by result.",
		},
		[]string{"result"},
	)

	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "motor",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of notification sweeps.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sweep"},
	)
)
