package ecmath

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// RandomSource draws secret scalars. Key generation and randomized signing
// consume it, so tests can substitute a deterministic source.
type RandomSource interface {
	// RandomScalar returns an integer uniformly distributed in
	// [1, upperBound-1].
	RandomScalar(upperBound *big.Int) (*big.Int, error)
}

// MessageHasher reduces an arbitrary-length message to an integer that
// signing and verification use modulo the group order.
type MessageHasher interface {
	HashToInteger(msg []byte) *big.Int
}

// DefaultRandom is a RandomSource backed by crypto/rand.Reader.
var DefaultRandom RandomSource = NewRandomSource(rand.Reader)

// ReaderSource is a RandomSource that samples from an io.Reader.
type ReaderSource struct {
	r io.Reader
}

// NewRandomSource returns a RandomSource that reads entropy from r. Passing
// nil binds to crypto/rand.Reader.
func NewRandomSource(r io.Reader) *ReaderSource {
	if r == nil {
		r = rand.Reader
	}
	return &ReaderSource{r: r}
}

// RandomScalar implements RandomSource.
func (s *ReaderSource) RandomScalar(upperBound *big.Int) (*big.Int, error) {
	if upperBound == nil || upperBound.Cmp(big.NewInt(2)) < 0 {
		return nil, NewError(ErrInvalidScalar, "random scalar bound must be at least 2")
	}

	// Sample from [0, upperBound-2] and shift by one.
	span := new(big.Int).Sub(upperBound, big.NewInt(1))
	k, err := rand.Int(s.r, span)
	if err != nil {
		return nil, errors.Wrap(err, "reading random scalar")
	}
	return k.Add(k, big.NewInt(1)), nil
}
