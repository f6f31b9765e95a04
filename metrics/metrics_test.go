package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPlanCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PlanServed("catalog")
	m.PlanServed("catalog")
	m.PlanServed("generated")
	m.PlanRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PlannerRequests.WithLabelValues("catalog")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlannerRequests.WithLabelValues("generated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlannerRejected))
}

func TestMiddleware_ObservesRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/health", "/health", "/missing.css"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
