package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PushPublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "push_publish_total",
		Help: "Total number of realtime push publishes",
	},
	[]string{"event", "result"},
)
