package expiry_sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeliveriesExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "deliveries_expired_total",
		Help: "Total number of deliveries expired by the background sweep",
	},
)
