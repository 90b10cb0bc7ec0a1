// Package field implements the prime-field helpers the curve arithmetic is
// built on: reduction, inversion via the extended Euclidean algorithm,
// primality testing and the curve discriminant predicates.
package field

import (
	"math/big"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Mod returns x reduced into [0, p).
func Mod(x, p *big.Int) *big.Int {
	return new(big.Int).Mod(x, p)
}

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x, y
// such that a*x + b*y = g. gcd(0, 0) is undefined.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int, err error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, nil, nil, ecmath.NewError(ecmath.ErrArithmetic, "gcd(0, 0) is not defined")
	}
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1), nil
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0), nil
	}

	rOld, r := new(big.Int).Set(a), new(big.Int).Set(b)
	sOld, s := big.NewInt(1), big.NewInt(0)
	tOld, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Div(rOld, r)

		tmp.Mul(q, r)
		rOld, r = r, new(big.Int).Sub(rOld, tmp)

		tmp.Mul(q, s)
		sOld, s = s, new(big.Int).Sub(sOld, tmp)

		tmp.Mul(q, t)
		tOld, t = t, new(big.Int).Sub(tOld, tmp)
	}

	return rOld, sOld, tOld, nil
}

// ModInverse returns b in [0, m) with a*b = 1 (mod m). It fails with
// ecmath.ErrArithmetic when a has no inverse modulo m.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(two) < 0 {
		return nil, ecmath.NewError(ecmath.ErrArithmetic, "modulus %s is smaller than 2", m)
	}

	g, x, _, err := ExtendedGCD(Mod(a, m), m)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, ecmath.NewError(ecmath.ErrArithmetic,
			"%s has no multiplicative inverse modulo %s", a, m)
	}
	return x.Mod(x, m), nil
}

// Sqrt returns a square root of x modulo the odd prime p, or false when x is
// a non-residue.
func Sqrt(x, p *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModSqrt(Mod(x, p), p)
	if r == nil {
		return nil, false
	}
	return r, true
}
