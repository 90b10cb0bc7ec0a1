// Package disabled provides instruments that discard everything.
package disabled

import "github.com/smallyu/go-ecmath/pkg/metrics"

type Provider struct{}

func (p *Provider) NewCounter(metrics.CounterOpts) metrics.Counter       { return &Counter{} }
func (p *Provider) NewHistogram(metrics.HistogramOpts) metrics.Histogram { return &Histogram{} }

type Counter struct{}

func (c *Counter) Add(float64)                    {}
func (c *Counter) With(...string) metrics.Counter { return c }

type Histogram struct{}

func (h *Histogram) Observe(float64)                  {}
func (h *Histogram) With(...string) metrics.Histogram { return h }
