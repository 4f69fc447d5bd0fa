package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// promTelemetry is a Prometheus-backed Telemetry implementation, the
// ambient metrics backend this node carries even though SPEC_FULL.md's
// Non-goals exclude a metrics-exporter feature surface: the node still
// needs somewhere for its own operational gauges/counters to go, the
// way the teacher exposes bft/consensus internals via telemetry.
type promTelemetry struct {
	registry *prometheus.Registry

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewPrometheus builds a Telemetry backed by a fresh Prometheus
// registry, reachable via GetOrCreateHandler for a metrics scrape
// endpoint.
func NewPrometheus() Telemetry {
	return &promTelemetry{
		registry:   prometheus.NewRegistry(),
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

func (p *promTelemetry) GetOrCreateHandler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *promTelemetry) histogramVec(name string, labels []string, buckets []int64) *prometheus.HistogramVec {
	p.mu.Lock()
	defer p.mu.Unlock()

	if hv, ok := p.histograms[name]; ok {
		return hv
	}

	b := make([]float64, len(buckets))
	for i, v := range buckets {
		b[i] = float64(v)
	}
	if len(b) == 0 {
		b = prometheus.DefBuckets
	}

	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Buckets: b}, labels)
	p.registry.MustRegister(hv)
	p.histograms[name] = hv
	return hv
}

func (p *promTelemetry) counterVec(name string, labels []string) *prometheus.CounterVec {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cv, ok := p.counters[name]; ok {
		return cv
	}
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name}, labels)
	p.registry.MustRegister(cv)
	p.counters[name] = cv
	return cv
}

func (p *promTelemetry) gaugeVec(name string, labels []string) *prometheus.GaugeVec {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gv, ok := p.gauges[name]; ok {
		return gv
	}
	gv := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name}, labels)
	p.registry.MustRegister(gv)
	p.gauges[name] = gv
	return gv
}

func (p *promTelemetry) GetOrCreateHistogramMeter(name string, buckets []int64) HistogramMeter {
	return &vecMeter{histogram: p.histogramVec(name, nil, buckets)}
}

func (p *promTelemetry) GetOrCreateHistogramVecMeter(name string, labels []string, buckets []int64) HistogramVecMeter {
	return &vecMeter{histogram: p.histogramVec(name, labels, buckets)}
}

func (p *promTelemetry) GetOrCreateCountMeter(name string) CountMeter {
	return &vecMeter{counter: p.counterVec(name, nil)}
}

func (p *promTelemetry) GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter {
	return &vecMeter{counter: p.counterVec(name, labels)}
}

func (p *promTelemetry) GetOrCreateGaugeMeter(name string) GaugeMeter {
	return &vecMeter{gauge: p.gaugeVec(name, nil)}
}

func (p *promTelemetry) GetOrCreateGaugeVecMeter(name string, labels []string) GaugeVecMeter {
	return &vecMeter{gauge: p.gaugeVec(name, labels)}
}

// vecMeter adapts one of Prometheus's three vec types to the Meter
// contract; exactly one field is non-nil per instance.
type vecMeter struct {
	histogram *prometheus.HistogramVec
	counter   *prometheus.CounterVec
	gauge     *prometheus.GaugeVec
}

func (m *vecMeter) Add(v int64) { m.AddWithLabel(v, nil) }

func (m *vecMeter) AddWithLabel(v int64, labels map[string]string) {
	if m.counter != nil {
		m.counter.With(prometheus.Labels(labels)).Add(float64(v))
	}
}

func (m *vecMeter) Gauge(v int64) { m.GaugeWithLabel(v, nil) }

func (m *vecMeter) GaugeWithLabel(v int64, labels map[string]string) {
	if m.gauge != nil {
		m.gauge.With(prometheus.Labels(labels)).Set(float64(v))
	}
}

func (m *vecMeter) Observe(v int64) { m.ObserveWithLabels(v, nil) }

func (m *vecMeter) ObserveWithLabels(v int64, labels map[string]string) {
	if m.histogram != nil {
		m.histogram.With(prometheus.Labels(labels)).Observe(float64(v))
	}
}
