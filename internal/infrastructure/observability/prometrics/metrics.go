package prometrics

import (
	"sync"

	"github.com/minicart/storefront/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
)

type instrumentSpec struct {
	help    string
	labels  []string
	buckets []float64
}

var counterSpecs = map[observability.MetricKey]instrumentSpec{
	observability.MUsecaseRequests: {
		help:   "Total number of use case invocations.",
		labels: []string{"use_case", "outcome"},
	},
	observability.MOrdersPlaced: {
		help:   "Total number of orders placed.",
		labels: []string{"outcome"},
	},
	observability.MProductsSoldOut: {
		help:   "Count of products that sold out while fulfilling an order.",
		labels: []string{"product"},
	},
	observability.MEventPublishErrors: {
		help:   "Count of domain event publish failures.",
		labels: []string{"event"},
	},
}

var histogramSpecs = map[observability.MetricKey]instrumentSpec{
	observability.MUsecaseDuration: {
		help:    "Duration of use case execution in seconds.",
		labels:  []string{"use_case"},
		buckets: prometheus.DefBuckets,
	},
	observability.MOrderTotalPrice: {
		help:    "Distribution of order total prices.",
		labels:  []string{"use_case"},
		buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
	},
}

// Metrics implements the observability metrics port on top of Prometheus.
// Instruments are registered lazily, once per metric key.
type Metrics struct {
	namespace  string
	counters   sync.Map // MetricKey -> *prometheus.CounterVec
	histograms sync.Map // MetricKey -> *prometheus.HistogramVec
	registerer prometheus.Registerer
}

func New(namespace string) *Metrics {
	return &Metrics{namespace: namespace, registerer: prometheus.DefaultRegisterer}
}

// NewWithRegisterer registers instruments against a caller-owned registerer.
func NewWithRegisterer(namespace string, reg prometheus.Registerer) *Metrics {
	return &Metrics{namespace: namespace, registerer: reg}
}

func (m *Metrics) Counter(name observability.MetricKey) observability.Counter {
	if v, ok := m.counters.Load(name); ok {
		return &counter{v: v.(*prometheus.CounterVec)}
	}
	spec, ok := counterSpecs[name]
	if !ok {
		return observability.NopCounter()
	}
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      string(name),
		Help:      spec.help,
	}, spec.labels)
	m.registerer.MustRegister(cv)
	m.counters.Store(name, cv)
	return &counter{v: cv}
}

func (m *Metrics) Histogram(name observability.MetricKey) observability.Histogram {
	if v, ok := m.histograms.Load(name); ok {
		return &histogram{v: v.(*prometheus.HistogramVec)}
	}
	spec, ok := histogramSpecs[name]
	if !ok {
		return observability.NopHistogram()
	}
	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      string(name),
		Help:      spec.help,
		Buckets:   spec.buckets,
	}, spec.labels)
	m.registerer.MustRegister(hv)
	m.histograms.Store(name, hv)
	return &histogram{v: hv}
}

type counter struct{ v *prometheus.CounterVec }

func (c *counter) Add(d float64, labels ...observability.Label) {
	c.v.With(labelMap(labels)).Add(d)
}

type histogram struct{ v *prometheus.HistogramVec }

func (h *histogram) Observe(v float64, labels ...observability.Label) {
	h.v.With(labelMap(labels)).Observe(v)
}

func labelMap(ls []observability.Label) prometheus.Labels {
	m := make(prometheus.Labels, len(ls))
	for _, l := range ls {
		m[l.Key] = l.Value
	}
	return m
}
