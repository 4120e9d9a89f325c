// Package metrics provides Prometheus metrics collection for the cart service.
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

	// CartActionsTotal tracks cart actions by action and outcome.
	CartActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_actions_total",
			Help: "Total number of cart actions",
		},
		[]string{"action", "status"},
	)

	// CartActionDuration tracks cart action duration.
	CartActionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_action_duration_seconds",
			Help:    "Cart action duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// ActiveCarts tracks the number of cart stores resident in memory.
	ActiveCarts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_carts",
			Help: "Number of cart stores currently resident in memory",
		},
	)

	// StorageOperationsTotal tracks persistence operations by backend, operation, and result.
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_storage_operations_total",
			Help: "Total number of cart storage operations",
		},
		[]string{"backend", "operation", "result"},
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

// RecordCartAction records metrics for one cart action.
func RecordCartAction(action string, duration time.Duration, status string) {
	CartActionDuration.Observe(duration.Seconds())
	CartActionsTotal.WithLabelValues(action, status).Inc()
}

// RecordStorageOperation records metrics for a persistence operation.
func RecordStorageOperation(backend, operation, result string) {
	StorageOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// SetActiveCarts updates the resident store gauge.
func SetActiveCarts(n int) {
	ActiveCarts.Set(float64(n))
}
