package curve

import (
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/naf"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// DefaultNAFWidth is the window used by ScalarMult.
const DefaultNAFWidth = 4

// ScalarMult returns k*p in Jacobian coordinates using a width-4 NAF.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	return c.ScalarMultWidth(p, k, DefaultNAFWidth)
}

// ScalarMultAffine is ScalarMult followed by normalization to affine
// coordinates.
func (c *Curve) ScalarMultAffine(p Point, k *big.Int) (Point, error) {
	r, err := c.ScalarMult(p, k)
	if err != nil {
		return nil, err
	}
	return r.ToAffine()
}

// ScalarMultWidth returns k*p using a width-w NAF of k. It precomputes the
// odd multiples P, 3P, ..., (2^(w-1)-1)P and walks the digits from the most
// significant end, doubling once per digit and adding the table entry (or
// its negation) for each nonzero digit. Negative scalars are rejected with
// ecmath.ErrInvalidScalar.
func (c *Curve) ScalarMultWidth(p Point, k *big.Int, width int) (Point, error) {
	if err := c.owns(p); err != nil {
		return nil, err
	}
	if k == nil || k.Sign() < 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidScalar, "scalar must be non-negative, got %v", k)
	}

	digits, err := naf.Recode(k, width)
	if err != nil {
		return nil, err
	}
	if k.Sign() == 0 || p.IsInfinity() {
		return c.inf, nil
	}

	table := c.oddMultiples(p, width)

	var acc Point = c.inf
	for _, d := range digits {
		acc = c.double(acc)
		switch {
		case d > 0:
			acc = c.add(acc, table[d/2])
		case d < 0:
			acc = c.add(acc, table[-d/2].Negate())
		}
	}
	return acc, nil
}

// oddMultiples returns [P, 3P, 5P, ..., (2^(w-1)-1)P].
func (c *Curve) oddMultiples(p Point, width int) []Point {
	size := 1 << uint(width-2)
	table := make([]Point, size)
	table[0] = p.ToJacobian()
	if size == 1 {
		return table
	}
	twoP := c.double(p)
	for i := 1; i < size; i++ {
		table[i] = c.add(table[i-1], twoP)
	}
	return table
}
