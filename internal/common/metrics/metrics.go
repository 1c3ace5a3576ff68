// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AskRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ask_requests_total",
			Help: "Total number of ask requests by outcome",
		},
		[]string{"outcome"},
	)

	AskRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ask_request_duration_seconds",
			Help:    "End-to-end duration of ask requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	ReplyCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reply_calls_total",
			Help: "Total number of per-persona reply-generation calls",
		},
		[]string{"model", "status"},
	)

	ReplyCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "reply_call_duration_seconds",
			Help: "Duration of individual reply-generation calls in seconds",
		},
		[]string{"model"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)
