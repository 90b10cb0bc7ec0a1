// Package hashing maps messages to integers for ECDSA. Digests are truncated
// to the bit length of the group order, as in FIPS 186, so signatures made
// here verify under other conforming implementations.
package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Algorithm names a hash function.
type Algorithm string

const (
	SHA224     Algorithm = "SHA-224"
	SHA256     Algorithm = "SHA-256"
	SHA384     Algorithm = "SHA-384"
	SHA512     Algorithm = "SHA-512"
	SHA3_224   Algorithm = "SHA3-224"
	SHA3_256   Algorithm = "SHA3-256"
	SHA3_384   Algorithm = "SHA3-384"
	SHA3_512   Algorithm = "SHA3-512"
	BLAKE2b256 Algorithm = "BLAKE2b-256"
	BLAKE2b512 Algorithm = "BLAKE2b-512"
)

var constructors = map[Algorithm]func() hash.Hash{
	SHA224:     sha256.New224,
	SHA256:     sha256.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA3_224:   sha3.New224,
	SHA3_256:   sha3.New256,
	SHA3_384:   sha3.New384,
	SHA3_512:   sha3.New512,
	BLAKE2b256: unkeyedBLAKE2b(blake2b.New256),
	BLAKE2b512: unkeyedBLAKE2b(blake2b.New512),
}

// unkeyedBLAKE2b adapts a BLAKE2b constructor; without a key it cannot fail.
func unkeyedBLAKE2b(newKeyed func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Algorithms returns every supported algorithm name in sorted order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(constructors))
	for alg := range constructors {
		algs = append(algs, alg)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
	return algs
}

// Parse resolves a case-insensitive algorithm name.
func Parse(name string) (Algorithm, error) {
	for alg := range constructors {
		if strings.EqualFold(string(alg), name) {
			return alg, nil
		}
	}
	return "", ecmath.NewError(ecmath.ErrUnsupportedHash, "hash function not recognized [%s]", name)
}

// ForOrder returns the SHA-2 variant matched to a group order of the given
// size: SHA-224 up to 224 bits, SHA-256 up to 256, SHA-384 up to 384 and
// SHA-512 above.
func ForOrder(order *big.Int) Algorithm {
	switch bits := order.BitLen(); {
	case bits <= 224:
		return SHA224
	case bits <= 256:
		return SHA256
	case bits <= 384:
		return SHA384
	default:
		return SHA512
	}
}

// Hasher hashes messages and truncates the digest to the bit length of a
// group order. It implements ecmath.MessageHasher.
type Hasher struct {
	alg     Algorithm
	newHash func() hash.Hash
	qlen    int
}

// New returns a Hasher for alg bound to the group order.
func New(alg Algorithm, order *big.Int) (*Hasher, error) {
	newHash, ok := constructors[alg]
	if !ok {
		return nil, ecmath.NewError(ecmath.ErrUnsupportedHash, "hash function not recognized [%s]", alg)
	}
	if order == nil || order.Sign() <= 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "group order must be positive")
	}
	return &Hasher{alg: alg, newHash: newHash, qlen: order.BitLen()}, nil
}

func (h *Hasher) Algorithm() Algorithm { return h.alg }

// New returns a fresh hash.Hash of the configured algorithm.
func (h *Hasher) New() hash.Hash { return h.newHash() }

// Digest returns the untruncated hash of msg.
func (h *Hasher) Digest(msg []byte) []byte {
	d := h.newHash()
	d.Write(msg)
	return d.Sum(nil)
}

// HashToInteger implements ecmath.MessageHasher.
func (h *Hasher) HashToInteger(msg []byte) *big.Int {
	return BitsToInt(h.Digest(msg), h.qlen)
}

// BitsToInt interprets b as a big-endian integer and keeps its leftmost
// qlen bits.
func BitsToInt(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if excess := len(b)*8 - qlen; excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}
