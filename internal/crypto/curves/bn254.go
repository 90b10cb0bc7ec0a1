package curves

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/smallyu/go-ecmath/pkg/curve"
)

// BN254 is the G1 group of the BN254 pairing curve, y^2 = x^3 + 3, as
// implemented by gnark-crypto.
type BN254 struct{}

func (c *BN254) Name() string { return "bn254" }

func (c *BN254) Form() curve.Form { return curve.ShortWeierstrass }

func (c *BN254) Field() *big.Int { return ecc.BN254.BaseField() }

func (c *BN254) Order() *big.Int { return ecc.BN254.ScalarField() }

func (c *BN254) Cofactor() *big.Int { return big.NewInt(1) }

func (c *BN254) Coefficients() (*big.Int, *big.Int) {
	return big.NewInt(0), big.NewInt(3)
}

func (c *BN254) Generator() (*big.Int, *big.Int) {
	_, _, g1, _ := bn254.Generators()
	return g1.X.BigInt(new(big.Int)), g1.Y.BigInt(new(big.Int))
}

func (c *BN254) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, bool) {
	kn := new(big.Int).Mod(k, c.Order())

	var p bn254.G1Affine
	p.ScalarMultiplicationBase(kn)
	if p.IsInfinity() {
		return nil, nil, false
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int)), true
}

// NewBN254 returns the gnark-crypto-backed BN254 G1 reference.
func NewBN254() Reference {
	return &BN254{}
}
