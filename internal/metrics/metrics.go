// Package metrics holds the Prometheus collectors of the swipe service.
//
// Usage:
//
//	metrics.ObserveRPC("/swipematch.v1.SwipeService/Decide", "OK", 3*time.Millisecond)
//	metrics.RecordDecision(true, true)
//	metrics.LikeCountCache.WithLabelValues(metrics.CacheHit).Inc()
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Like-count cache results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// RPCRequestsTotal counts unary calls by full method and status code.
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_rpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	// RPCDuration tracks handler latency.
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swipe_rpc_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method"},
	)

	// DecisionsTotal counts recorded swipe decisions.
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_decisions_total",
			Help: "Total number of recorded swipe decisions",
		},
		[]string{"liked", "matched"},
	)

	// ActiveSessions is the number of registered browsing sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipe_active_sessions",
			Help: "Number of live swipe sessions",
		},
	)

	// SessionsEvictedTotal counts sessions dropped for inactivity.
	SessionsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swipe_sessions_evicted_total",
			Help: "Total number of idle sessions evicted",
		},
	)

	// LikeCountCache counts like-count cache lookups by result.
	LikeCountCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_like_count_cache_total",
			Help: "Like-count cache lookups by result",
		},
		[]string{"result"},
	)

	// CacheBreakerState is 0 closed, 1 half-open, 2 open.
	CacheBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipe_cache_breaker_state",
			Help: "Redis circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)

// ObserveRPC records one finished call.
func ObserveRPC(method, code string, d time.Duration) {
	RPCRequestsTotal.WithLabelValues(method, code).Inc()
	RPCDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordDecision records one decision and whether it produced a match.
func RecordDecision(liked, matched bool) {
	DecisionsTotal.WithLabelValues(strconv.FormatBool(liked), strconv.FormatBool(matched)).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
