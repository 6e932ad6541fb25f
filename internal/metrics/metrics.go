package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "church_planning"

// Recorder receives service operation outcomes
type Recorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
	PlanningRejected(reason string)
}

// PrometheusRecorder exports service and HTTP metrics on its own registry
type PrometheusRecorder struct {
	registry           *prometheus.Registry
	operations         *prometheus.CounterVec
	operationDurations *prometheus.HistogramVec
	rejections         *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDurations      *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with process and Go runtime collectors registered
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Service operations by name and result.",
		}, []string{"operation", "result"}),
		operationDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "planning_rejections_total",
			Help:      "Planning batches rejected before any write, by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.operations,
		r.operationDurations,
		r.rejections,
		r.httpRequests,
		r.httpDurations,
	)
	return r
}

// Observe records a service operation outcome
func (r *PrometheusRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	result := "error"
	if success {
		result = "success"
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.operationDurations.WithLabelValues(operation).Observe(duration.Seconds())
}

// PlanningRejected counts a planning batch refused by validation
func (r *PrometheusRecorder) PlanningRejected(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}

// ObserveHTTP records one served request. route is the matched route template.
func (r *PrometheusRecorder) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDurations.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Noop discards everything
type Noop struct{}

// Observe does nothing
func (Noop) Observe(context.Context, string, bool, time.Duration) {}

// PlanningRejected does nothing
func (Noop) PlanningRejected(string) {}
