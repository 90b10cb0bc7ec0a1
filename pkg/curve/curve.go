// Package curve models elliptic curves over prime fields in short Weierstrass
// and Montgomery form, together with their points and group law.
//
// A Curve is immutable after New returns and may be shared between
// goroutines. Points keep a reference to the curve they were created on and
// are never mutated by arithmetic; every operation returns a fresh point.
package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Form selects the curve equation.
type Form int

const (
	// ShortWeierstrass curves satisfy y^2 = x^3 + a*x + b.
	ShortWeierstrass Form = iota
	// Montgomery curves satisfy b*y^2 = x^3 + a*x^2 + x.
	Montgomery
)

func (f Form) String() string {
	switch f {
	case ShortWeierstrass:
		return "ShortWeierstrass"
	case Montgomery:
		return "Montgomery"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm converts a form name back into a Form.
func ParseForm(s string) (Form, error) {
	switch s {
	case "ShortWeierstrass", "weierstrass", "short-weierstrass":
		return ShortWeierstrass, nil
	case "Montgomery", "montgomery":
		return Montgomery, nil
	}
	return 0, ecmath.NewError(ecmath.ErrInvalidCurve, "unknown curve form %q", s)
}

// Curve is an elliptic curve over GF(p).
type Curve struct {
	form    Form
	a, b, p *big.Int

	ops formulas
	inf *Infinity
}

// New validates the parameters and returns the curve of the given form. The
// modulus must be an odd prime greater than 3 and the curve must be
// non-singular; otherwise New fails with ecmath.ErrInvalidCurve.
func New(form Form, a, b, p *big.Int) (*Curve, error) {
	if a == nil || b == nil || p == nil {
		return nil, ecmath.NewError(ecmath.ErrInvalidCurve, "curve parameters must not be nil")
	}
	if p.Cmp(big.NewInt(3)) <= 0 || p.Bit(0) == 0 || !field.IsPrime(p) {
		return nil, ecmath.NewError(ecmath.ErrInvalidCurve,
			"modulus %s is not an odd prime greater than 3", p)
	}

	c := &Curve{
		form: form,
		a:    field.Mod(a, p),
		b:    field.Mod(b, p),
		p:    new(big.Int).Set(p),
	}

	switch form {
	case ShortWeierstrass:
		if !field.WeierstrassNonSingular(c.a, c.b, c.p) {
			return nil, ecmath.NewError(ecmath.ErrInvalidCurve,
				"singular curve: 4a^3 + 27b^2 = 0 (mod %s)", p)
		}
		c.ops = newWeierstrassFormulas(c.a, c.b, c.p)
	case Montgomery:
		if c.b.Sign() == 0 {
			return nil, ecmath.NewError(ecmath.ErrInvalidCurve,
				"montgomery coefficient b = 0 (mod %s)", p)
		}
		if !field.MontgomeryNonSingular(c.a, c.b, c.p) {
			return nil, ecmath.NewError(ecmath.ErrInvalidCurve,
				"singular curve: a^2 = 4 (mod %s)", p)
		}
		c.ops = &montgomeryFormulas{a: c.a, b: c.b, p: c.p}
	default:
		return nil, ecmath.NewError(ecmath.ErrInvalidCurve, "unknown curve form %s", form)
	}

	c.inf = &Infinity{curve: c}
	return c, nil
}

// NewShortWeierstrass returns the curve y^2 = x^3 + a*x + b over GF(p).
func NewShortWeierstrass(a, b, p *big.Int) (*Curve, error) {
	return New(ShortWeierstrass, a, b, p)
}

// NewMontgomery returns the curve b*y^2 = x^3 + a*x^2 + x over GF(p).
func NewMontgomery(a, b, p *big.Int) (*Curve, error) {
	return New(Montgomery, a, b, p)
}

func (c *Curve) Form() Form { return c.form }

// A returns a copy of the reduced coefficient a.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the reduced coefficient b.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// Infinity returns the curve's point at infinity.
func (c *Curve) Infinity() *Infinity { return c.inf }

// Equal reports whether both curves have the same form and parameters.
func (c *Curve) Equal(o *Curve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.form == o.form && c.p.Cmp(o.p) == 0 && c.a.Cmp(o.a) == 0 && c.b.Cmp(o.b) == 0
}

func (c *Curve) String() string {
	if c.form == Montgomery {
		return fmt.Sprintf("%s*y^2 = x^3 + %s*x^2 + x over GF(%s)", c.b, c.a, c.p)
	}
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s over GF(%s)", c.a, c.b, c.p)
}

// CreatePoint returns the affine point (x, y), reduced modulo p. It fails
// with ecmath.ErrPointNotOnCurve when the coordinates do not satisfy the
// curve equation.
func (c *Curve) CreatePoint(x, y *big.Int) (*Affine, error) {
	if x == nil || y == nil {
		return nil, ecmath.NewError(ecmath.ErrPointNotOnCurve, "point coordinates must not be nil")
	}
	xr, yr := field.Mod(x, c.p), field.Mod(y, c.p)
	if !c.ops.onCurve(xr, yr) {
		return nil, ecmath.NewError(ecmath.ErrPointNotOnCurve,
			"point (%s, %s) is not on curve %s", x, y, c)
	}
	return &Affine{curve: c, x: xr, y: yr}, nil
}

// Contains reports whether pt lies on c. The point at infinity of c is always
// contained; points bound to another curve never are.
func (c *Curve) Contains(pt Point) bool {
	if pt == nil || !c.Equal(pt.Curve()) {
		return false
	}
	aff, err := pt.ToAffine()
	if err != nil {
		return false
	}
	switch q := aff.(type) {
	case *Infinity:
		return true
	case *Affine:
		return c.ops.onCurve(q.x, q.y)
	}
	return false
}

// owns reports whether arithmetic on c may consume pt.
func (c *Curve) owns(pt Point) error {
	if pt == nil {
		return ecmath.NewError(ecmath.ErrPointNotOnCurve, "nil point")
	}
	if !c.Equal(pt.Curve()) {
		return ecmath.NewError(ecmath.ErrPointNotOnCurve,
			"point %s belongs to %s, not %s", pt, pt.Curve(), c)
	}
	return nil
}
