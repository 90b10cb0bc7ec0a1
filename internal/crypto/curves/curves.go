// Package curves wraps third-party implementations of well-known curves. The
// curve registry takes parameters from here, and tests use the wrapped
// implementations as independent oracles for the in-house arithmetic.
package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecmath/pkg/curve"
)

// Reference is a curve implemented outside this module.
type Reference interface {
	// Name returns the registry name of the curve.
	Name() string

	// Form returns the equation the coefficients belong to.
	Form() curve.Form

	// Field returns the prime modulus p.
	Field() *big.Int

	// Order returns the order n of the generator.
	Order() *big.Int

	// Cofactor returns #E / n.
	Cofactor() *big.Int

	// Coefficients returns the curve coefficients (a, b) in the curve's own
	// form.
	Coefficients() (a, b *big.Int)

	// Generator returns the affine coordinates of the base point.
	Generator() (x, y *big.Int)

	// ScalarBaseMult computes k*G. ok is false when the result is the point
	// at infinity. Montgomery references only report the x-coordinate and
	// leave y nil.
	ScalarBaseMult(k *big.Int) (x, y *big.Int, ok bool)
}

// All returns every reference curve.
func All() []Reference {
	return []Reference{NewSecp256k1(), NewBN254(), NewCurve25519()}
}

type Secp256k1 struct{}

func (c *Secp256k1) Name() string { return "secp256k1" }

func (c *Secp256k1) Form() curve.Form { return curve.ShortWeierstrass }

func (c *Secp256k1) Field() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().P)
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) Cofactor() *big.Int { return big.NewInt(1) }

func (c *Secp256k1) Coefficients() (*big.Int, *big.Int) {
	return big.NewInt(0), new(big.Int).Set(secp256k1.S256().Params().B)
}

func (c *Secp256k1) Generator() (*big.Int, *big.Int) {
	params := secp256k1.S256().Params()
	return new(big.Int).Set(params.Gx), new(big.Int).Set(params.Gy)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, bool) {
	kn := new(big.Int).Mod(k, c.Order())
	if kn.Sign() == 0 {
		return nil, nil, false
	}

	var s secp256k1.ModNScalar
	s.SetByteSlice(kn.Bytes())

	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &result)
	result.ToAffine()

	x := new(big.Int).SetBytes(result.X.Bytes()[:])
	y := new(big.Int).SetBytes(result.Y.Bytes()[:])
	return x, y, true
}

// NewSecp256k1 returns the decred-backed secp256k1 reference.
func NewSecp256k1() Reference {
	return &Secp256k1{}
}
