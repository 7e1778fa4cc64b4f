// Package metrics provides Prometheus metrics collection for the shipment service.
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

	// ShipmentCalculationsTotal tracks shipment weight calculations by outcome
	// and input mode (order or cart).
	ShipmentCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_calculations_total",
			Help: "Total number of shipment weight calculations",
		},
		[]string{"status", "mode"},
	)

	// ShipmentCalculationDuration tracks shipment calculation duration.
	ShipmentCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_calculation_duration_seconds",
			Help:    "Shipment weight calculation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// MultiPackageShipmentsTotal counts shipments that required splitting into
	// multiple packages.
	MultiPackageShipmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "multi_package_shipments_total",
			Help: "Total number of shipments split across multiple packages",
		},
	)

	// BoxSelectionsTotal counts selected box categories.
	BoxSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_selections_total",
			Help: "Total number of box category selections",
		},
		[]string{"box"},
	)

	// CatalogCacheOperationsTotal tracks box catalog cache lookups.
	CatalogCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Total number of box catalog cache operations",
		},
		[]string{"operation", "result"},
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

// RecordShipmentCalculation records metrics for a shipment weight calculation.
func RecordShipmentCalculation(duration time.Duration, status, mode string) {
	ShipmentCalculationDuration.Observe(duration.Seconds())
	ShipmentCalculationsTotal.WithLabelValues(status, mode).Inc()
}

// RecordBoxSelection records the box category chosen for a shipment.
func RecordBoxSelection(box string, multiPackage bool) {
	BoxSelectionsTotal.WithLabelValues(box).Inc()
	if multiPackage {
		MultiPackageShipmentsTotal.Inc()
	}
}

// RecordCatalogCacheOperation records a box catalog cache lookup.
func RecordCatalogCacheOperation(operation, result string) {
	CatalogCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
