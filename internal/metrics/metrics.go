package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fantasy_basketball_proxy"

// Recorder holds the service's Prometheus collectors on a private registry.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	providerCalls    *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	circuitState     *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "League data provider calls, by operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "League data provider call latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"provider", "operation"}),
		circuitState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_open",
			Help:      "1 while the provider circuit breaker is open or half-open.",
		}, []string{"provider"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.providerCalls,
		r.providerDuration,
		r.circuitState,
	)
	return r
}

// RecordHTTPRequest records one served request. route is the mux pattern, never the raw path.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordProviderCall records one upstream call and whether it failed.
func (r *Recorder) RecordProviderCall(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.providerCalls.WithLabelValues(provider, operation, outcome).Inc()
	r.providerDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

func (r *Recorder) SetCircuitOpen(provider string, open bool) {
	if r == nil {
		return
	}
	value := 0.0
	if open {
		value = 1
	}
	r.circuitState.WithLabelValues(provider).Set(value)
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
