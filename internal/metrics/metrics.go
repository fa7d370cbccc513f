// Package metrics provides Prometheus metrics for the site server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaporis_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vaporis_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Storage metrics
	storageListsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaporis_storage_list_total",
			Help: "Total number of storage list calls",
		},
		[]string{"driver", "result"},
	)

	storageListDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vaporis_storage_list_duration_seconds",
			Help:    "Storage list call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	// Gallery metrics
	galleryCardsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaporis_gallery_cards_rendered_total",
			Help: "Total number of teaser cards rendered, by media kind",
		},
		[]string{"kind"},
	)

	gallerySessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaporis_gallery_sessions",
			Help: "Number of live visitor gallery sessions",
		},
	)

	// Contact form metrics
	contactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaporis_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"},
	)
)

// RecordStorageList records the outcome and duration of one list call.
func RecordStorageList(driver string, ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	storageListsTotal.WithLabelValues(driver, result).Inc()
	storageListDuration.WithLabelValues(driver).Observe(d.Seconds())
}

// RecordCardRendered counts one rendered card of the given kind.
func RecordCardRendered(kind string) {
	galleryCardsRendered.WithLabelValues(kind).Inc()
}

// SetGallerySessions sets the number of live gallery sessions.
func SetGallerySessions(n int) {
	gallerySessions.Set(float64(n))
}

// RecordContactSubmission counts a contact form submission ("accepted" or "rejected").
func RecordContactSubmission(status string) {
	contactSubmissionsTotal.WithLabelValues(status).Inc()
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and durations. The route pattern is used as
// the path label to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
