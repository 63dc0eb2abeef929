package deadline_reminder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeadlineRemindersSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "deadline_reminders_sent_total",
		Help: "Total number of delivery deadline reminders sent by the background sweep",
	},
)
