// Package metrics holds the application's prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PlannerRequests  *prometheus.CounterVec
	PlannerRejected  prometheus.Counter
	ContactSubmitted prometheus.Counter
	ItineraryPDFs    prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
}

// New registers every instrument on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PlannerRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_requests_total",
			Help: "Plans served, by content source (catalog or generated).",
		}, []string{"source"}),
		PlannerRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "planner_validation_errors_total",
			Help: "Planning requests rejected for a missing destination.",
		}),
		ContactSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions received.",
		}),
		ItineraryPDFs: f.NewCounter(prometheus.CounterOpts{
			Name: "itinerary_pdfs_total",
			Help: "Itinerary PDFs generated.",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) PlanServed(source string) {
	m.PlannerRequests.WithLabelValues(source).Inc()
}

func (m *Metrics) PlanRejected() {
	m.PlannerRejected.Inc()
}

// Middleware observes request durations. Unmatched routes (static files)
// share one label to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "static"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
