package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequests counts artifact requests by artifact and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themeconf_requests_total",
		Help: "Total artifact requests by artifact and status code",
	}, []string{"artifact", "code"})

	// MetricReloads counts theme loads by result
	MetricReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themeconf_reloads_total",
		Help: "Total theme loads by result",
	}, []string{"result"})

	// MetricTokens tracks the number of entries per token category
	MetricTokens = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "themeconf_tokens",
		Help: "Number of theme entries per token category",
	}, []string{"category"})

	// MetricLastReload records when the served theme last changed
	MetricLastReload = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "themeconf_last_reload_timestamp_seconds",
		Help: "Unix time of the last successful theme load",
	})
)
