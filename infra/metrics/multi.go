package metrics

import (
	"errors"

	coremetrics "github.com/archit-tiwari-26/timetable3.0/core/metrics"
)

// MultiSink fans every event out to a set of sinks.
type MultiSink struct {
	sinks []coremetrics.MetricsSink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordRequest forwards the event to every sink and joins their errors.
func (m *MultiSink) RecordRequest(ev coremetrics.RequestEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRequest(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
