package ecdsa

import (
	"crypto/hmac"
	"hash"
	"math/big"

	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/smallyu/go-ecmath/pkg/hashing"
)

// NonceSource starts a nonce sequence for one signature.
type NonceSource interface {
	// NewGenerator returns the generator used to sign the message digest
	// e with private key d.
	NewGenerator(d, e *big.Int) (NonceGenerator, error)
}

// NonceGenerator yields candidate nonces in [1, n-1]. Sign asks for the
// next candidate whenever r or s comes out zero.
type NonceGenerator interface {
	Next() (*big.Int, error)
}

type randomNonces struct {
	random ecmath.RandomSource
	order  *big.Int
}

// NewRandomNonces returns a NonceSource drawing every nonce from random.
func NewRandomNonces(random ecmath.RandomSource, order *big.Int) NonceSource {
	return &randomNonces{random: random, order: new(big.Int).Set(order)}
}

func (r *randomNonces) NewGenerator(_, _ *big.Int) (NonceGenerator, error) {
	return r, nil
}

func (r *randomNonces) Next() (*big.Int, error) {
	k, err := r.random.RandomScalar(r.order)
	if err != nil {
		return nil, errors.Wrap(err, "drawing nonce")
	}
	return k, nil
}

type rfc6979Nonces struct {
	newHash func() hash.Hash
	order   *big.Int
	qlen    int
	rlen    int
}

// NewRFC6979Nonces returns a NonceSource that derives nonces from the
// private key and the message digest with HMAC_DRBG, as in RFC 6979 section
// 3.2. newHash is the HMAC hash.
func NewRFC6979Nonces(newHash func() hash.Hash, order *big.Int) NonceSource {
	qlen := order.BitLen()
	return &rfc6979Nonces{
		newHash: newHash,
		order:   new(big.Int).Set(order),
		qlen:    qlen,
		rlen:    (qlen + 7) / 8,
	}
}

func (n *rfc6979Nonces) NewGenerator(d, e *big.Int) (NonceGenerator, error) {
	if d == nil || e == nil {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "nonce derivation needs a key and a digest")
	}
	x := n.int2octets(d)
	h := n.int2octets(new(big.Int).Mod(e, n.order))

	size := n.newHash().Size()
	g := &rfc6979Generator{
		src: n,
		k:   make([]byte, size),
		v:   make([]byte, size),
	}
	for i := range g.v {
		g.v[i] = 0x01
	}

	g.k = g.mac(g.k, g.v, []byte{0x00}, x, h)
	g.v = g.mac(g.k, g.v)
	g.k = g.mac(g.k, g.v, []byte{0x01}, x, h)
	g.v = g.mac(g.k, g.v)
	return g, nil
}

// int2octets encodes v as a big-endian string of rlen bytes.
func (n *rfc6979Nonces) int2octets(v *big.Int) []byte {
	return v.FillBytes(make([]byte, n.rlen))
}

type rfc6979Generator struct {
	src     *rfc6979Nonces
	k, v    []byte
	started bool
}

func (g *rfc6979Generator) mac(key []byte, parts ...[]byte) []byte {
	m := hmac.New(g.src.newHash, key)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// reseed advances the DRBG state after a rejected candidate.
func (g *rfc6979Generator) reseed() {
	g.k = g.mac(g.k, g.v, []byte{0x00})
	g.v = g.mac(g.k, g.v)
}

func (g *rfc6979Generator) Next() (*big.Int, error) {
	if g.started {
		g.reseed()
	}
	g.started = true

	for {
		var t []byte
		for len(t)*8 < g.src.qlen {
			g.v = g.mac(g.k, g.v)
			t = append(t, g.v...)
		}
		k := hashing.BitsToInt(t, g.src.qlen)
		if k.Sign() > 0 && k.Cmp(g.src.order) < 0 {
			return k, nil
		}
		g.reseed()
	}
}
