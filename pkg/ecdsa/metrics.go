package ecdsa

import (
	"github.com/smallyu/go-ecmath/pkg/metrics"
)

var (
	signaturesOpts = metrics.CounterOpts{
		Namespace:  "ecmath",
		Subsystem:  "ecdsa",
		Name:       "signatures",
		Help:       "Number of signatures produced.",
		LabelNames: []string{"curve"},
	}
	verificationsOpts = metrics.CounterOpts{
		Namespace:  "ecmath",
		Subsystem:  "ecdsa",
		Name:       "verifications",
		Help:       "Number of signatures checked, by outcome.",
		LabelNames: []string{"curve", "result"},
	}
	nonceRetriesOpts = metrics.CounterOpts{
		Namespace:  "ecmath",
		Subsystem:  "ecdsa",
		Name:       "nonce_retries",
		Help:       "Number of nonces discarded because r or s was zero.",
		LabelNames: []string{"curve"},
	}
	keysGeneratedOpts = metrics.CounterOpts{
		Namespace:  "ecmath",
		Subsystem:  "ecdsa",
		Name:       "keys_generated",
		Help:       "Number of key pairs drawn from the random source.",
		LabelNames: []string{"curve"},
	}
	signDurationOpts = metrics.HistogramOpts{
		Namespace:  "ecmath",
		Subsystem:  "ecdsa",
		Name:       "sign_duration_seconds",
		Help:       "Time spent producing a signature.",
		LabelNames: []string{"curve"},
		Buckets:    []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}
)

type signerMetrics struct {
	signatures    metrics.Counter
	verifications metrics.Counter
	nonceRetries  metrics.Counter
	keysGenerated metrics.Counter
	signDuration  metrics.Histogram
}

func newSignerMetrics(p metrics.Provider, curveName string) *signerMetrics {
	return &signerMetrics{
		signatures:    p.NewCounter(signaturesOpts).With("curve", curveName),
		verifications: p.NewCounter(verificationsOpts).With("curve", curveName),
		nonceRetries:  p.NewCounter(nonceRetriesOpts).With("curve", curveName),
		keysGenerated: p.NewCounter(keysGeneratedOpts).With("curve", curveName),
		signDuration:  p.NewHistogram(signDurationOpts).With("curve", curveName),
	}
}

func (m *signerMetrics) verified(ok bool) bool {
	result := "invalid"
	if ok {
		result = "valid"
	}
	m.verifications.With("result", result).Add(1)
	return ok
}
