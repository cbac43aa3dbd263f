package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SecretLoadTotal tracks secret bootstrap attempts by provider and outcome.
	SecretLoadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "secret_load_attempts_total",
			Help: "Total number of secret load attempts (by provider and outcome).",
		},
		[]string{"provider", "outcome"},
	)

	// SecretKeysMergedTotal counts keys merged into the settings map.
	SecretKeysMergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "secret_keys_merged_total",
			Help: "Total number of secret keys merged into application settings.",
		},
	)

	// SecretLoadDuration measures the duration of secret load attempts.
	SecretLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "secret_load_duration_seconds",
			Help:    "Duration of secret load attempts in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"provider"},
	)

	// HTTPRequestsTotal tracks served HTTP requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served (by route and status).",
		},
		[]string{"route", "status"},
	)
)

// IncSecretLoad increments the secret load counter.
func IncSecretLoad(provider, outcome string) {
	SecretLoadTotal.WithLabelValues(provider, outcome).Inc()
}

// AddSecretKeysMerged records merged secret keys.
func AddSecretKeysMerged(n int) {
	SecretKeysMergedTotal.Add(float64(n))
}

// ObserveSecretLoadDuration records elapsed time since start for a provider.
func ObserveSecretLoadDuration(provider string, start time.Time) {
	SecretLoadDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

// IncHTTPRequest increments the HTTP request counter.
func IncHTTPRequest(route string, status int) {
	HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
