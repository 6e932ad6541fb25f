package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCountsByResult(t *testing.T) {
	r := NewPrometheusRecorder()

	r.Observe(context.Background(), "set_planning", true, 10*time.Millisecond)
	r.Observe(context.Background(), "set_planning", true, 5*time.Millisecond)
	r.Observe(context.Background(), "set_planning", false, time.Millisecond)
	r.Observe(context.Background(), "", true, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("set_planning", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("set_planning", "error")))
}

func TestPlanningRejected(t *testing.T) {
	r := NewPrometheusRecorder()

	r.PlanningRejected("multiple_debrief")
	r.PlanningRejected("multiple_debrief")
	r.PlanningRejected("member_not_in_department")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.rejections.WithLabelValues("multiple_debrief")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("member_not_in_department")))
}

func TestObserveHTTP(t *testing.T) {
	r := NewPrometheusRecorder()

	r.ObserveHTTP(http.MethodGet, "/api/v1/events/:id", http.StatusOK, time.Millisecond)
	r.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/api/v1/events/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewPrometheusRecorder()
	r.PlanningRejected("multiple_debrief")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `church_planning_planning_rejections_total{reason="multiple_debrief"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.Observe(context.Background(), "x", true, time.Second)
		r.PlanningRejected("x")
	})
}
