package alerts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	scansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alert_scans_total",
		Help: "Number of alert scans triggered, including short-circuited ones.",
	})

	sentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alerts_sent_total",
		Help: "Number of alert messages dispatched to the webhook.",
	})
)
