// Package telemetry defines the metrics-sink contract used across the
// node, reconstructed from the method set noop.go already implements
// (this retrieval pack did not include the teacher's defining
// telemetry.go). The ambient stack still carries a real backend:
// NewPrometheus builds a Prometheus-backed implementation, which Set can
// install in place of the default no-op backend.
package telemetry

import "net/http"

// Meter is the shared no-argument observation contract every
// specialized meter embeds.
type Meter interface {
	Add(int64)
	AddWithLabel(int64, map[string]string)
	Gauge(int64)
	GaugeWithLabel(int64, map[string]string)
	Observe(int64)
	ObserveWithLabels(int64, map[string]string)
}

type HistogramMeter interface{ Meter }
type HistogramVecMeter interface{ Meter }
type CountMeter interface{ Meter }
type CountVecMeter interface{ Meter }
type GaugeMeter interface{ Meter }
type GaugeVecMeter interface{ Meter }

// Telemetry is the node-wide metrics facade. The package holds one
// process-wide backend, installed with Set and read with Current.
type Telemetry interface {
	GetOrCreateHistogramMeter(name string, buckets []int64) HistogramMeter
	GetOrCreateHistogramVecMeter(name string, labels []string, buckets []int64) HistogramVecMeter
	GetOrCreateCountMeter(name string) CountMeter
	GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter
	GetOrCreateGaugeMeter(name string) GaugeMeter
	GetOrCreateGaugeVecMeter(name string, labels []string) GaugeVecMeter
	GetOrCreateHandler() http.Handler
}

var current Telemetry = defaultNoopTelemetry()

// Set installs t as the process-wide telemetry backend.
func Set(t Telemetry) {
	if t != nil {
		current = t
	}
}

// Current returns the installed telemetry backend, defaulting to a
// no-op implementation.
func Current() Telemetry { return current }
