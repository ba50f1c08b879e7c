// Package metrics registers the Prometheus instruments for the
// coordination pipeline. Everything is registered on the default
// registry and served from /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_http_requests_total",
		Help: "Number of HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration measures API latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "haven_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// AlertsCreated counts emergency alerts by type.
	AlertsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_alerts_created_total",
		Help: "Number of emergency alerts created, by emergency type.",
	}, []string{"emergency_type"})

	// CommunicationsCreated counts hospital handoffs opened.
	CommunicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_communications_created_total",
		Help: "Number of hospital communications created.",
	})

	// DeliveryAttempts counts channel delivery attempts by outcome.
	DeliveryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_delivery_attempts_total",
		Help: "Number of hospital delivery attempts, by channel and result.",
	}, []string{"channel", "result"})

	// RetriesAttempted counts redelivery attempts made by the retry scan.
	RetriesAttempted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_delivery_retries_total",
		Help: "Number of redelivery attempts made by the retry scan.",
	})

	// RetriesExhausted counts handoffs that ran out of attempts.
	RetriesExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_delivery_retries_exhausted_total",
		Help: "Number of communications whose attempt budget ran out.",
	})

	// AcknowledgmentTimeouts counts handoffs failed by the timeout sweep.
	AcknowledgmentTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_acknowledgment_timeouts_total",
		Help: "Number of communications failed because the hospital never acknowledged.",
	})

	// AcknowledgmentLatency measures hospital response time.
	AcknowledgmentLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "haven_acknowledgment_latency_seconds",
		Help:    "Time between sending an alert and the hospital acknowledging it.",
		Buckets: []float64{30, 60, 120, 300, 600, 1200, 3600},
	})

	// MatchingDuration measures how long hospital ranking takes.
	MatchingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "haven_matching_duration_seconds",
		Help:    "Time spent scoring and ranking candidate hospitals.",
		Buckets: prometheus.DefBuckets,
	})

	// DispatchOutcomes counts orchestrated pipeline runs by outcome.
	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_dispatch_outcomes_total",
		Help: "Number of orchestrated dispatch runs, by outcome.",
	}, []string{"outcome"})
)

// GinMiddleware records request counts and latency for every route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
