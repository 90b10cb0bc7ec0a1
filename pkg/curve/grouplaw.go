package curve

import "math/big"

// Add returns p + q in Jacobian coordinates, or the curve's Infinity. Both
// operands must belong to c.
func (c *Curve) Add(p, q Point) (Point, error) {
	if err := c.owns(p); err != nil {
		return nil, err
	}
	if err := c.owns(q); err != nil {
		return nil, err
	}
	return c.add(p, q), nil
}

// AddAffine is Add followed by normalization to affine coordinates.
func (c *Curve) AddAffine(p, q Point) (Point, error) {
	r, err := c.Add(p, q)
	if err != nil {
		return nil, err
	}
	return r.ToAffine()
}

// Double returns 2p in Jacobian coordinates, or the curve's Infinity.
func (c *Curve) Double(p Point) (Point, error) {
	if err := c.owns(p); err != nil {
		return nil, err
	}
	return c.double(p), nil
}

// DoubleAffine is Double followed by normalization to affine coordinates.
func (c *Curve) DoubleAffine(p Point) (Point, error) {
	r, err := c.Double(p)
	if err != nil {
		return nil, err
	}
	return r.ToAffine()
}

// add assumes both operands belong to c. The cases are resolved in order:
// identity operand, inverse operands, equal operands, general addition.
func (c *Curve) add(p, q Point) Point {
	x1, y1, z1, fin1 := jacobianCoords(p)
	x2, y2, z2, fin2 := jacobianCoords(q)
	switch {
	case !fin1 && !fin2:
		return c.inf
	case !fin1:
		return q.ToJacobian()
	case !fin2:
		return p.ToJacobian()
	}

	m := c.p
	z1z1 := new(big.Int).Mul(z1, z1)
	z1z1.Mod(z1z1, m)
	z2z2 := new(big.Int).Mul(z2, z2)
	z2z2.Mod(z2z2, m)

	u1 := new(big.Int).Mul(x1, z2z2)
	u1.Mod(u1, m)
	u2 := new(big.Int).Mul(x2, z1z1)
	u2.Mod(u2, m)

	s1 := new(big.Int).Mul(y1, z2z2)
	s1.Mul(s1, z2)
	s1.Mod(s1, m)
	s2 := new(big.Int).Mul(y2, z1z1)
	s2.Mul(s2, z1)
	s2.Mod(s2, m)

	if u1.Cmp(u2) == 0 {
		// Same x: either q = -p or q = p.
		if s1.Cmp(s2) != 0 {
			return c.inf
		}
		return c.doubleCoords(x1, y1, z1)
	}

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, m)
	r := new(big.Int).Sub(s2, s1)
	r.Mod(r, m)

	x3, y3, z3 := c.ops.add(u1, u2, s1, h, r, z1, z2)
	return &Jacobian{curve: c, x: x3, y: y3, z: z3}
}

func (c *Curve) double(p Point) Point {
	x, y, z, fin := jacobianCoords(p)
	if !fin {
		return c.inf
	}
	return c.doubleCoords(x, y, z)
}

// doubleCoords doubles a finite point; points of order two map to Infinity.
func (c *Curve) doubleCoords(x, y, z *big.Int) Point {
	if new(big.Int).Mod(y, c.p).Sign() == 0 {
		return c.inf
	}
	x3, y3, z3 := c.ops.double(x, y, z)
	return &Jacobian{curve: c, x: x3, y: y3, z: z3}
}
