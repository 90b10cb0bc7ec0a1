package curve

import (
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// maxEnumerationBits bounds the field size Points is willing to walk.
const maxEnumerationBits = 16

// Points lists every point of a small curve: Infinity first, then the affine
// points ordered by (x, y). Curves whose modulus exceeds 16 bits are refused
// with ecmath.ErrCurveTooLarge.
func (c *Curve) Points() ([]Point, error) {
	if c.p.BitLen() > maxEnumerationBits {
		return nil, ecmath.NewError(ecmath.ErrCurveTooLarge,
			"refusing to enumerate a %d-bit field", c.p.BitLen())
	}

	pts := []Point{c.inf}

	// Montgomery curves solve y^2 = (x^3 + a*x^2 + x) / b.
	var bInv *big.Int
	if c.form == Montgomery {
		var err error
		if bInv, err = field.ModInverse(c.b, c.p); err != nil {
			return nil, err
		}
	}

	p := c.p.Int64()
	for xi := int64(0); xi < p; xi++ {
		x := big.NewInt(xi)
		rhs := c.rhs(x)
		if bInv != nil {
			rhs.Mul(rhs, bInv).Mod(rhs, c.p)
		}

		if rhs.Sign() == 0 {
			pts = append(pts, &Affine{curve: c, x: x, y: big.NewInt(0)})
			continue
		}
		y, ok := field.Sqrt(rhs, c.p)
		if !ok {
			continue
		}
		negY := negMod(y, c.p)
		if negY.Cmp(y) < 0 {
			y, negY = negY, y
		}
		pts = append(pts,
			&Affine{curve: c, x: x, y: y},
			&Affine{curve: c, x: new(big.Int).Set(x), y: negY},
		)
	}
	return pts, nil
}

// rhs evaluates the x-side of the curve equation, reduced mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	if c.form == Montgomery {
		r.Mul(r, x)
		ax2 := new(big.Int).Mul(x, x)
		ax2.Mul(ax2, c.a)
		r.Add(r, ax2)
		r.Add(r, x)
	} else {
		r.Add(r, c.a)
		r.Mul(r, x)
		r.Add(r, c.b)
	}
	return r.Mod(r, c.p)
}
