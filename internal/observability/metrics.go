// Package observability holds the Prometheus instruments exposed on /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zenpoints",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests processed, by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zenpoints",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	logsRecordedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zenpoints",
		Subsystem: "tracker",
		Name:      "logs_recorded_total",
		Help:      "Logged activity completions, by activity kind.",
	}, []string{"kind"})

	pointsAwardedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zenpoints",
		Subsystem: "tracker",
		Name:      "points_awarded_total",
		Help:      "Points awarded by the calculation engine, by activity kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		logsRecordedTotal,
		pointsAwardedTotal,
	)
}

// RecordHTTPRequest updates the request counter and latency histogram.
// route is the matched route pattern, not the raw path, to keep
// cardinality bounded.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLogRecorded counts one recorded completion and its awarded points.
func RecordLogRecorded(kind string, points int) {
	logsRecordedTotal.WithLabelValues(kind).Inc()
	if points > 0 {
		pointsAwardedTotal.WithLabelValues(kind).Add(float64(points))
	}
}
