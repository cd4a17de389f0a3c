package metrics

import "time"

// RequestEvent describes one request issued against the scheduling service.
// Endpoint is the templated path (e.g. /batches/{id}/timetable/) so that
// cardinality stays bounded.
type RequestEvent struct {
	Method   string
	Endpoint string
	Status   int // zero when the request never reached the service
	Duration time.Duration
	Err      string
	Time     time.Time
}

// Failed reports whether the request ended in a network or status error.
func (e RequestEvent) Failed() bool {
	return e.Err != "" || e.Status >= 400
}

// MetricsSink records request events for observability purposes.
type MetricsSink interface {
	RecordRequest(ev RequestEvent) error
	Close() error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRequest(RequestEvent) error { return nil }

func (NopSink) Close() error { return nil }
