package ecdsa

import (
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/smallyu/go-ecmath/pkg/hashing"
	"github.com/smallyu/go-ecmath/pkg/metrics"
	"go.uber.org/zap"
)

// Option configures a Signer.
type Option func(*options)

type options struct {
	random        ecmath.RandomSource
	hasher        ecmath.MessageHasher
	hash          hashing.Algorithm
	nonces        NonceSource
	deterministic bool
	nafWidth      int
	lowS          bool
	logger        *zap.SugaredLogger
	metrics       metrics.Provider
}

// WithRandom sets the source of private keys and, unless another nonce
// policy is chosen, of signing nonces.
func WithRandom(r ecmath.RandomSource) Option {
	return func(o *options) {
		o.random = r
	}
}

// WithHash selects the hash algorithm used to digest messages and to key
// deterministic nonces. The default is the one registered for the curve.
func WithHash(alg hashing.Algorithm) Option {
	return func(o *options) {
		o.hash = alg
	}
}

// WithHasher replaces the message digest. Deterministic nonces still use the
// signer's hash algorithm for their HMAC.
func WithHasher(h ecmath.MessageHasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithNonceSource installs a custom nonce policy.
func WithNonceSource(ns NonceSource) Option {
	return func(o *options) {
		o.nonces = ns
	}
}

// WithDeterministicNonces derives nonces per RFC 6979.
func WithDeterministicNonces() Option {
	return func(o *options) {
		o.deterministic = true
	}
}

// WithNAFWidth sets the window used for scalar multiplication.
func WithNAFWidth(w int) Option {
	return func(o *options) {
		o.nafWidth = w
	}
}

// WithLowS makes Sign emit s <= n/2.
func WithLowS() Option {
	return func(o *options) {
		o.lowS = true
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics reports signing activity through p. Signers created without
// it report nothing.
func WithMetrics(p metrics.Provider) Option {
	return func(o *options) {
		o.metrics = p
	}
}
