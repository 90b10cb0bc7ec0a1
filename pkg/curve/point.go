package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
)

// Point is a point on a Curve in one of three representations: *Affine,
// *Jacobian or *Infinity. The set is closed; no other package can implement
// Point.
type Point interface {
	// Curve returns the curve the point belongs to.
	Curve() *Curve

	// ToAffine normalizes the point. Infinity stays Infinity, and a Jacobian
	// point with Z = 0 maps to Infinity.
	ToAffine() (Point, error)

	// ToJacobian returns the Jacobian form of the point. Infinity is its own
	// Jacobian representation.
	ToJacobian() Point

	// Negate returns the additive inverse.
	Negate() Point

	// Equal reports whether both points denote the same group element,
	// regardless of representation.
	Equal(q Point) bool

	// IsInfinity reports whether the point is the group identity.
	IsInfinity() bool

	String() string

	sealed()
}

// Affine is a point (x, y) with both coordinates in [0, p).
type Affine struct {
	curve *Curve
	x, y  *big.Int
}

// Jacobian is a point (X : Y : Z) standing for the affine point
// (X/Z^2, Y/Z^3).
type Jacobian struct {
	curve   *Curve
	x, y, z *big.Int
}

// Infinity is the identity element of a curve's group.
type Infinity struct {
	curve *Curve
}

func (*Affine) sealed()   {}
func (*Jacobian) sealed() {}
func (*Infinity) sealed() {}

func (pt *Affine) Curve() *Curve { return pt.curve }

// X returns a copy of the x coordinate.
func (pt *Affine) X() *big.Int { return new(big.Int).Set(pt.x) }

// Y returns a copy of the y coordinate.
func (pt *Affine) Y() *big.Int { return new(big.Int).Set(pt.y) }

func (pt *Affine) ToAffine() (Point, error) { return pt, nil }

func (pt *Affine) ToJacobian() Point {
	return &Jacobian{curve: pt.curve, x: pt.x, y: pt.y, z: big.NewInt(1)}
}

func (pt *Affine) Negate() Point {
	return &Affine{curve: pt.curve, x: pt.x, y: negMod(pt.y, pt.curve.p)}
}

func (pt *Affine) Equal(q Point) bool { return equal(pt, q) }

func (pt *Affine) IsInfinity() bool { return false }

func (pt *Affine) String() string { return fmt.Sprintf("(%s, %s)", pt.x, pt.y) }

func (pt *Jacobian) Curve() *Curve { return pt.curve }

func (pt *Jacobian) X() *big.Int { return new(big.Int).Set(pt.x) }
func (pt *Jacobian) Y() *big.Int { return new(big.Int).Set(pt.y) }
func (pt *Jacobian) Z() *big.Int { return new(big.Int).Set(pt.z) }

// ToAffine maps (X : Y : Z) to (X*Z^-2, Y*Z^-3) with a single inversion.
func (pt *Jacobian) ToAffine() (Point, error) {
	p := pt.curve.p
	if pt.IsInfinity() {
		return pt.curve.inf, nil
	}

	zInv, err := field.ModInverse(pt.z, p)
	if err != nil {
		return nil, err
	}
	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, p)
	zInv3 := new(big.Int).Mul(zInv2, zInv)
	zInv3.Mod(zInv3, p)

	x := new(big.Int).Mul(pt.x, zInv2)
	y := new(big.Int).Mul(pt.y, zInv3)
	return &Affine{curve: pt.curve, x: x.Mod(x, p), y: y.Mod(y, p)}, nil
}

func (pt *Jacobian) ToJacobian() Point { return pt }

func (pt *Jacobian) Negate() Point {
	return &Jacobian{curve: pt.curve, x: pt.x, y: negMod(pt.y, pt.curve.p), z: pt.z}
}

func (pt *Jacobian) Equal(q Point) bool { return equal(pt, q) }

// IsInfinity reports whether Z = 0 (mod p).
func (pt *Jacobian) IsInfinity() bool {
	return new(big.Int).Mod(pt.z, pt.curve.p).Sign() == 0
}

func (pt *Jacobian) String() string {
	return fmt.Sprintf("(%s : %s : %s)", pt.x, pt.y, pt.z)
}

func (inf *Infinity) Curve() *Curve            { return inf.curve }
func (inf *Infinity) ToAffine() (Point, error) { return inf, nil }
func (inf *Infinity) ToJacobian() Point        { return inf }
func (inf *Infinity) Negate() Point            { return inf }
func (inf *Infinity) Equal(q Point) bool       { return equal(inf, q) }
func (inf *Infinity) IsInfinity() bool         { return true }
func (inf *Infinity) String() string           { return "Infinity" }

// jacobianCoords returns (X, Y, Z) for a finite point, or ok = false for the
// identity.
func jacobianCoords(pt Point) (x, y, z *big.Int, ok bool) {
	switch q := pt.(type) {
	case *Affine:
		return q.x, q.y, big.NewInt(1), true
	case *Jacobian:
		if q.IsInfinity() {
			return nil, nil, nil, false
		}
		return q.x, q.y, q.z, true
	}
	return nil, nil, nil, false
}

// equal compares two points in the same projective class by
// cross-multiplying: X1*Z2^2 = X2*Z1^2 and Y1*Z2^3 = Y2*Z1^3.
func equal(a, b Point) bool {
	if a == nil || b == nil || !a.Curve().Equal(b.Curve()) {
		return false
	}
	x1, y1, z1, fin1 := jacobianCoords(a)
	x2, y2, z2, fin2 := jacobianCoords(b)
	if !fin1 || !fin2 {
		return fin1 == fin2
	}

	p := a.Curve().p
	z1z1 := new(big.Int).Mul(z1, z1)
	z2z2 := new(big.Int).Mul(z2, z2)

	lhs := new(big.Int).Mul(x1, z2z2)
	rhs := new(big.Int).Mul(x2, z1z1)
	if lhs.Mod(lhs, p).Cmp(rhs.Mod(rhs, p)) != 0 {
		return false
	}

	lhs.Mul(y1, z2z2).Mul(lhs, z2)
	rhs.Mul(y2, z1z1).Mul(rhs, z1)
	return lhs.Mod(lhs, p).Cmp(rhs.Mod(rhs, p)) == 0
}

func negMod(y, p *big.Int) *big.Int {
	r := new(big.Int).Neg(y)
	return r.Mod(r, p)
}
