// Package metrics defines the instruments the signer reports through. A
// Provider creates them; the disabled and prometheus subpackages supply
// implementations.
package metrics

// Provider creates counters and histograms.
type Provider interface {
	NewCounter(CounterOpts) Counter
	NewHistogram(HistogramOpts) Histogram
}

// Counter is a monotonically increasing value.
type Counter interface {
	// With returns a Counter bound to additional label name/value pairs.
	With(labelValues ...string) Counter
	Add(delta float64)
}

// Histogram samples observations into buckets.
type Histogram interface {
	With(labelValues ...string) Histogram
	Observe(value float64)
}

// CounterOpts describes a counter. The fully qualified name is
// Namespace_Subsystem_Name.
type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

type HistogramOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
	Buckets    []float64
}
