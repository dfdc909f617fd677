package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intakeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_event_intake_requests_total",
			Help: "Event requests received, by outcome",
		},
		[]string{"outcome"},
	)

	eventTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_event_transitions_total",
			Help: "Accept/reject transitions, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	conflictsFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chef_event_conflicts_flagged_total",
			Help: "Advisory slot conflicts attached to chef notifications",
		},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_event_notifications_total",
			Help: "Notification messages, by template and outcome",
		},
		[]string{"template", "outcome"},
	)

	menuCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_cache_requests_total",
			Help: "Store menu cache lookups, hit or miss",
		},
		[]string{"result"},
	)
)

func RecordIntake(outcome string) {
	intakeRequests.WithLabelValues(outcome).Inc()
}

func RecordTransition(action, outcome string) {
	eventTransitions.WithLabelValues(action, outcome).Inc()
}

func RecordConflictFlagged() {
	conflictsFlagged.Inc()
}

func RecordNotification(template, outcome string) {
	notifications.WithLabelValues(template, outcome).Inc()
}

func RecordMenuCache(result string) {
	menuCache.WithLabelValues(result).Inc()
}
