// Package prometheus exposes signer instruments as Prometheus collectors.
package prometheus

import (
	"errors"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/smallyu/go-ecmath/pkg/metrics"
)

// Provider registers every instrument it creates with Registerer, or with
// the default Prometheus registry when Registerer is nil. Creating the same
// instrument twice returns the collector registered first.
type Provider struct {
	Registerer prom.Registerer
}

func (p *Provider) registerer() prom.Registerer {
	if p.Registerer == nil {
		return prom.DefaultRegisterer
	}
	return p.Registerer
}

func (p *Provider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	vec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)
	return &Counter{vec: register(p.registerer(), vec)}
}

func (p *Provider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	vec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   o.Buckets,
	}, o.LabelNames)
	return &Histogram{vec: register(p.registerer(), vec)}
}

// register adds c to r and returns the collector that ends up registered.
func register[T prom.Collector](r prom.Registerer, c T) T {
	err := r.Register(c)
	if err == nil {
		return c
	}
	var are prom.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	panic(err)
}

type Counter struct {
	vec    *prom.CounterVec
	labels []string
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{vec: c.vec, labels: appendLabels(c.labels, labelValues)}
}

func (c *Counter) Add(delta float64) {
	c.vec.With(makeLabels(c.labels)).Add(delta)
}

type Histogram struct {
	vec    *prom.HistogramVec
	labels []string
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{vec: h.vec, labels: appendLabels(h.labels, labelValues)}
}

func (h *Histogram) Observe(value float64) {
	h.vec.With(makeLabels(h.labels)).Observe(value)
}

func appendLabels(labels, more []string) []string {
	out := make([]string, 0, len(labels)+len(more))
	out = append(out, labels...)
	return append(out, more...)
}

// makeLabels pairs up names and values. A trailing name without a value
// gets "unknown".
func makeLabels(labelValues []string) prom.Labels {
	if len(labelValues)%2 != 0 {
		labelValues = append(labelValues, "unknown")
	}
	labels := make(prom.Labels, len(labelValues)/2)
	for i := 0; i < len(labelValues); i += 2 {
		labels[labelValues[i]] = labelValues[i+1]
	}
	return labels
}
