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
			Namespace: "epcqr",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "epcqr",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)

// Business metrics, incremented by the payload handler.
var (
	// PayloadsGenerated counts payload generation attempts by format
	// version and outcome (generated / rejected).
	PayloadsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "epcqr",
			Subsystem: "business",
			Name:      "payloads_generated_total",
			Help:      "EPC payload generation attempts",
		},
		[]string{"version", "outcome"},
	)

	// QRImagesRendered counts PNG renderings by image size.
	QRImagesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "epcqr",
			Subsystem: "business",
			Name:      "qr_images_rendered_total",
			Help:      "QR code images rendered",
		},
		[]string{"size"},
	)
)

// Metrics records per-request counters and latency histograms.
// Uses the route template (c.FullPath) as the path label to keep
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
