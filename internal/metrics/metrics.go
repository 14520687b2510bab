// Package metrics exposes Prometheus instruments for proposition generation
// and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pickup_hoops"

// Recorder owns the service's Prometheus collectors. A nil *Recorder is a
// valid no-op recorder.
type Recorder struct {
	registry           *prometheus.Registry
	propositions       *prometheus.CounterVec
	generationFailures *prometheus.CounterVec
	generationDuration prometheus.Histogram
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// NewRecorder creates a recorder backed by its own registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		propositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "propositions_generated_total",
			Help:      "Team propositions generated, by type and source.",
		}, []string{"type", "source"}),
		generationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposition_generation_failures_total",
			Help:      "Proposition requests that produced no propositions, by reason.",
		}, []string{"reason"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proposition_generation_duration_seconds",
			Help:      "Time spent generating the propositions for one roster.",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		r.propositions,
		r.generationFailures,
		r.generationDuration,
		r.requests,
		r.requestDuration,
	)
	return r
}

// RecordProposition counts one generated proposition
func (r *Recorder) RecordProposition(propType, source string) {
	if r == nil {
		return
	}
	r.propositions.WithLabelValues(propType, source).Inc()
}

// RecordGenerationFailure counts a request that ended without propositions
func (r *Recorder) RecordGenerationFailure(reason string) {
	if r == nil {
		return
	}
	r.generationFailures.WithLabelValues(reason).Inc()
}

// ObserveGeneration records how long one generation call took
func (r *Recorder) ObserveGeneration(d time.Duration) {
	if r == nil {
		return
	}
	r.generationDuration.Observe(d.Seconds())
}

// PropositionCount returns the current counter value for a type and source
func (r *Recorder) PropositionCount(propType, source string) float64 {
	if r == nil {
		return 0
	}
	return counterValue(r.propositions.WithLabelValues(propType, source))
}

// FailureCount returns the current failure counter value for a reason
func (r *Recorder) FailureCount(reason string) float64 {
	if r == nil {
		return 0
	}
	return counterValue(r.generationFailures.WithLabelValues(reason))
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per chi route pattern
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.requestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
