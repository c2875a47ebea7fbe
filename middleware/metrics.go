package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	catalogQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_queries_total",
			Help: "Total number of catalog queries by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	snapshotLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_snapshot_lookups_total",
			Help: "Catalog snapshot cache lookups",
		},
		[]string{"result"},
	)

	catalogEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_events_total",
			Help: "Catalog change events consumed",
		},
		[]string{"event_type"},
	)
)

// PrometheusMiddleware collects request count and latency per route
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}

// RecordCatalogQuery counts a products/facets/categories query
func RecordCatalogQuery(kind string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	catalogQueries.WithLabelValues(kind, status).Inc()
}

// RecordSnapshotLookup counts snapshot cache hits and misses
func RecordSnapshotLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	snapshotLookups.WithLabelValues(result).Inc()
}

// RecordCatalogEvent counts consumed catalog change events
func RecordCatalogEvent(eventType string) {
	catalogEvents.WithLabelValues(eventType).Inc()
}
