package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/archit-tiwari-26/timetable3.0/core/metrics"
)

// PromSink counts service requests in Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPromSink registers request metrics on the default Prometheus
// registerer. The metrics server is started separately.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_api_requests_total",
		Help: "Total number of requests issued against the scheduling service",
	}, []string{"method", "endpoint", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_api_request_duration_seconds",
		Help:    "Round-trip time of scheduling service requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	return &PromSink{requests: requests, latency: latency}, nil
}

// RecordRequest increments the counter and observes the latency for one
// request.
func (s *PromSink) RecordRequest(ev coremetrics.RequestEvent) error {
	status := strconv.Itoa(ev.Status)
	if ev.Status == 0 {
		status = "error"
	}
	s.requests.WithLabelValues(ev.Method, ev.Endpoint, status).Inc()
	s.latency.WithLabelValues(ev.Method, ev.Endpoint).Observe(ev.Duration.Seconds())
	return nil
}

// Close is a no-op; Prometheus metrics are pull-based.
func (s *PromSink) Close() error { return nil }
