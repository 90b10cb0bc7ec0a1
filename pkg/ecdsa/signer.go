// Package ecdsa implements ECDSA key generation, signing and verification
// over any curve in the registry or any caller-supplied parameter set.
package ecdsa

import (
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/internal/crypto/naf"
	"github.com/smallyu/go-ecmath/internal/logging"
	"github.com/smallyu/go-ecmath/pkg/config"
	"github.com/smallyu/go-ecmath/pkg/curve"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/smallyu/go-ecmath/pkg/hashing"
	"github.com/smallyu/go-ecmath/pkg/metrics/disabled"
	"github.com/smallyu/go-ecmath/pkg/registry"
	"go.uber.org/zap"
)

// maxSignAttempts bounds the nonces Sign tries before giving up.
const maxSignAttempts = 64

var logger = logging.MustGetLogger("ecdsa")

// Signer signs and verifies on one curve. It is immutable after
// construction and safe for concurrent use.
type Signer struct {
	params   registry.Params
	curve    *curve.Curve
	g        *curve.Affine
	n        *big.Int
	hashAlg  hashing.Algorithm
	random   ecmath.RandomSource
	hasher   ecmath.MessageHasher
	nonces   NonceSource
	nafWidth int
	lowS     bool
	logger   *zap.SugaredLogger
	metrics  *signerMetrics
}

// New returns a Signer for the registered curve name.
func New(name string, opts ...Option) (*Signer, error) {
	params, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewFromParams(params, opts...)
}

// NewFromParams returns a Signer for a caller-supplied parameter set. The
// generator must lie on the curve and have order N.
func NewFromParams(params registry.Params, opts ...Option) (*Signer, error) {
	params = params.Copy()
	if params.N == nil || params.N.Cmp(big.NewInt(2)) < 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidCurve, "group order of %s must be at least 2", params.Name)
	}
	c, g, err := params.Generator()
	if err != nil {
		return nil, err
	}

	o := options{
		random:   ecmath.DefaultRandom,
		hash:     params.Hash,
		nafWidth: curve.DefaultNAFWidth,
		logger:   logger,
		metrics:  &disabled.Provider{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.nafWidth < naf.MinWidth || o.nafWidth > naf.MaxWidth {
		return nil, ecmath.NewError(ecmath.ErrInvalidWindow,
			"NAF width %d outside [%d, %d]", o.nafWidth, naf.MinWidth, naf.MaxWidth)
	}
	if o.random == nil {
		o.random = ecmath.DefaultRandom
	}
	if o.logger == nil {
		o.logger = logger
	}
	if o.metrics == nil {
		o.metrics = &disabled.Provider{}
	}
	if o.hash == "" {
		o.hash = hashing.ForOrder(params.N)
	}
	h, err := hashing.New(o.hash, params.N)
	if err != nil {
		return nil, err
	}
	if o.hasher == nil {
		o.hasher = h
	}
	if o.nonces == nil {
		if o.deterministic {
			o.nonces = NewRFC6979Nonces(h.New, params.N)
		} else {
			o.nonces = NewRandomNonces(o.random, params.N)
		}
	}

	ng, err := c.ScalarMultWidth(g, params.N, o.nafWidth)
	if err != nil {
		return nil, err
	}
	if !ng.IsInfinity() {
		return nil, ecmath.NewError(ecmath.ErrInvalidCurve, "generator of %s does not have order %s", params.Name, params.N)
	}

	params.Hash = o.hash
	return &Signer{
		params:   params,
		curve:    c,
		g:        g,
		n:        params.N,
		hashAlg:  o.hash,
		random:   o.random,
		hasher:   o.hasher,
		nonces:   o.nonces,
		nafWidth: o.nafWidth,
		lowS:     o.lowS,
		logger:   o.logger,
		metrics:  newSignerMetrics(o.metrics, params.Name),
	}, nil
}

// NewFromConfig returns a Signer described by the signer section of cfg.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Signer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := cfg.Signer

	var base []Option
	if sc.Hash != "" {
		alg, err := hashing.Parse(sc.Hash)
		if err != nil {
			return nil, err
		}
		base = append(base, WithHash(alg))
	}
	if sc.Nonce == config.NonceRFC6979 {
		base = append(base, WithDeterministicNonces())
	}
	if sc.NAFWidth != 0 {
		base = append(base, WithNAFWidth(sc.NAFWidth))
	}
	if sc.LowS {
		base = append(base, WithLowS())
	}
	return New(sc.Curve, append(base, opts...)...)
}

// Curve returns the curve the signer works on.
func (s *Signer) Curve() *curve.Curve { return s.curve }

// Params returns a copy of the curve parameters, with Hash set to the
// algorithm in use.
func (s *Signer) Params() registry.Params { return s.params.Copy() }

func (s *Signer) Generator() *curve.Affine { return s.g }

// Order returns a copy of the group order n.
func (s *Signer) Order() *big.Int { return new(big.Int).Set(s.n) }

// Hash returns the message hash algorithm.
func (s *Signer) Hash() hashing.Algorithm { return s.hashAlg }

// GenerateKeyPair draws a private key from the random source and derives
// its public point.
func (s *Signer) GenerateKeyPair() (*KeyPair, error) {
	d, err := s.random.RandomScalar(s.n)
	if err != nil {
		return nil, errors.Wrap(err, "generating private key")
	}
	if !s.inRange(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "random source returned a private key outside [1, n-1]")
	}
	kp, err := s.KeyPairFromPrivate(d)
	if err != nil {
		return nil, err
	}
	s.metrics.keysGenerated.Add(1)
	s.logger.Debugw("generated key pair", "curve", s.params.Name, logging.Redacted("private"))
	return kp, nil
}

// KeyPairFromPrivate derives the key pair of the private scalar d.
func (s *Signer) KeyPairFromPrivate(d *big.Int) (*KeyPair, error) {
	if !s.inRange(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "private key must be in [1, n-1]")
	}
	q, err := s.baseMult(d)
	if err != nil {
		return nil, err
	}
	pub, ok := q.(*curve.Affine)
	if !ok {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "private key maps to the point at infinity")
	}
	return &KeyPair{d: new(big.Int).Set(d), pub: pub}, nil
}

// Sign signs msg with the private key d. A nonce that yields r = 0 or
// s = 0 is discarded and the next one is tried.
func (s *Signer) Sign(msg []byte, d *big.Int) (*Signature, error) {
	if !s.inRange(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "private key must be in [1, n-1]")
	}
	start := time.Now()
	e := s.hasher.HashToInteger(msg)
	gen, err := s.nonces.NewGenerator(d, e)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxSignAttempts; attempt++ {
		k, err := gen.Next()
		if err != nil {
			return nil, err
		}
		if !s.inRange(k) {
			return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "nonce outside [1, n-1]")
		}

		pt, err := s.baseMult(k)
		if err != nil {
			return nil, err
		}
		kg, ok := pt.(*curve.Affine)
		if !ok {
			s.retry(attempt, "k*G is infinity")
			continue
		}
		r := new(big.Int).Mod(kg.X(), s.n)
		if r.Sign() == 0 {
			s.retry(attempt, "r is zero")
			continue
		}

		kInv, err := field.ModInverse(k, s.n)
		if err != nil {
			return nil, err
		}
		sv := new(big.Int).Mul(r, d)
		sv.Add(sv, e)
		sv.Mul(sv, kInv)
		sv.Mod(sv, s.n)
		if sv.Sign() == 0 {
			s.retry(attempt, "s is zero")
			continue
		}
		if s.lowS {
			sv = toLowS(sv, s.n)
		}
		s.metrics.signatures.Add(1)
		s.metrics.signDuration.Observe(time.Since(start).Seconds())
		return &Signature{R: r, S: sv}, nil
	}
	return nil, ecmath.NewError(ecmath.ErrNonceExhausted, "no usable nonce after %d attempts", maxSignAttempts)
}

// Verify reports whether sig is a valid signature of msg under pub.
func (s *Signer) Verify(msg []byte, sig *Signature, pub curve.Point) bool {
	return s.metrics.verified(s.verify(msg, sig, pub))
}

func (s *Signer) verify(msg []byte, sig *Signature, pub curve.Point) bool {
	if sig == nil || !s.inRange(sig.R) || !s.inRange(sig.S) {
		return false
	}
	if pub == nil || pub.IsInfinity() || !s.curve.Contains(pub) {
		return false
	}

	e := s.hasher.HashToInteger(msg)
	w, err := field.ModInverse(sig.S, s.n)
	if err != nil {
		return false
	}
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, s.n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, s.n)

	p1, err := s.curve.ScalarMultWidth(s.g, u1, s.nafWidth)
	if err != nil {
		return false
	}
	p2, err := s.curve.ScalarMultWidth(pub, u2, s.nafWidth)
	if err != nil {
		return false
	}
	sum, err := s.curve.AddAffine(p1, p2)
	if err != nil {
		return false
	}
	x, ok := sum.(*curve.Affine)
	if !ok {
		return false
	}
	return new(big.Int).Mod(x.X(), s.n).Cmp(sig.R) == 0
}

func (s *Signer) retry(attempt int, reason string) {
	s.metrics.nonceRetries.Add(1)
	s.logger.Debugw("retrying signature", "attempt", attempt, "reason", reason)
}

func (s *Signer) baseMult(k *big.Int) (curve.Point, error) {
	pt, err := s.curve.ScalarMultWidth(s.g, k, s.nafWidth)
	if err != nil {
		return nil, err
	}
	return pt.ToAffine()
}

func (s *Signer) inRange(k *big.Int) bool {
	return k != nil && k.Sign() > 0 && k.Cmp(s.n) < 0
}
