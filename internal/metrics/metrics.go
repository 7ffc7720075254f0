// Package metrics provides Prometheus metrics collection for the freight service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AuctionsTotal tracks freight auctions by outcome.
	AuctionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_auctions_total",
			Help: "Total number of freight auctions",
		},
		[]string{"status"},
	)

	// AuctionDuration tracks single-order auction duration.
	AuctionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freight_auction_duration_seconds",
			Help:    "Freight auction duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// AuctionBatchSize tracks how many orders each batch auction carries.
	AuctionBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freight_auction_batch_size",
			Help:    "Number of orders per batch auction",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	// IngestRowsTotal tracks spreadsheet ingestion rows by entity and result.
	IngestRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_ingest_rows_total",
			Help: "Total spreadsheet rows processed by ingestion",
		},
		[]string{"entity", "result"},
	)

	// ExportsTotal tracks workbook exports by kind and status.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_exports_total",
			Help: "Total number of workbook exports",
		},
		[]string{"kind", "status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAuction records metrics for a single-order auction.
func RecordAuction(duration time.Duration, status string) {
	AuctionDuration.Observe(duration.Seconds())
	AuctionsTotal.WithLabelValues(status).Inc()
}

// RecordIngestRows records ingestion row counts for an entity ("frete" or
// "pedido") and result ("inserted" or "dropped").
func RecordIngestRows(entity, result string, count int) {
	if count > 0 {
		IngestRowsTotal.WithLabelValues(entity, result).Add(float64(count))
	}
}

// RecordExport records a workbook export.
func RecordExport(kind, status string) {
	ExportsTotal.WithLabelValues(kind, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
