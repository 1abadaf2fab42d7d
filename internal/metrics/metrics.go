// Package metrics provides Prometheus metrics for the workspace server.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dam_workspace_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dam_workspace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	storeCommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dam_workspace_store_commits_total",
			Help: "Total number of workspace store commits by operation",
		},
		[]string{"op"},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dam_workspace_sessions_active",
			Help: "Number of open workspace sessions",
		},
	)

	sessionsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dam_workspace_sessions_evicted_total",
			Help: "Total number of workspace sessions evicted for inactivity",
		},
	)

	subscribersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dam_workspace_subscribers_active",
			Help: "Number of active snapshot subscribers",
		},
	)

	listingFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dam_workspace_listing_fetch_duration_seconds",
			Help:    "Time to fetch a catalog listing",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind", "source"},
	)

	listingCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dam_workspace_listing_cache_total",
			Help: "Listing cache lookups by result",
		},
		[]string{"result"},
	)
)

// RecordStoreCommit counts one store commit.
func RecordStoreCommit(op string) {
	storeCommitsTotal.WithLabelValues(op).Inc()
}

// SetSessionsActive sets the open session gauge.
func SetSessionsActive(n int) {
	sessionsActive.Set(float64(n))
}

// RecordSessionsEvicted counts evicted sessions.
func RecordSessionsEvicted(n int) {
	sessionsEvictedTotal.Add(float64(n))
}

// AddSubscribers moves the subscriber gauge by delta.
func AddSubscribers(delta int) {
	subscribersActive.Add(float64(delta))
}

// ObserveListingFetch records the duration of one listing fetch.
func ObserveListingFetch(kind, source string, d time.Duration) {
	listingFetchDuration.WithLabelValues(kind, source).Observe(d.Seconds())
}

// RecordListingCache counts a cache hit, miss or error.
func RecordListingCache(result string) {
	listingCacheTotal.WithLabelValues(result).Inc()
}

// Middleware records request count and latency by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
