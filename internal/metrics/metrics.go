// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "passvault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RequestTotal counts HTTP requests by method, route, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "passvault",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// LoginAttempts counts login outcomes (success, invalid, error).
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "passvault",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome",
		},
		[]string{"result"},
	)

	// RateLimited counts requests rejected by the auth rate limiter.
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "passvault",
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected with 429",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, LoginAttempts, RateLimited)
}

// RecordRequest records duration and count for an HTTP request.
// route should be a route pattern, not the raw path, to keep cardinality bounded.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// Login outcomes.
const (
	LoginSuccess = "success"
	LoginInvalid = "invalid"
	LoginError   = "error"
)

// RecordLogin increments the login counter for result.
func RecordLogin(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}
