package curve

import "math/big"

// formulas holds the form-specific parts of the group law in Jacobian
// coordinates. A set is chosen once by New and never re-selected.
//
// Addition shares its prologue across forms:
//
//	U1 = X1*Z2^2, U2 = X2*Z1^2, S1 = Y1*Z2^3, S2 = Y2*Z1^3
//	H = U2 - U1, R = S2 - S1
//
// so add receives those values and only finishes the computation. Inputs to
// add have U1 != U2; inputs to double have Y != 0. All outputs are reduced.
type formulas interface {
	onCurve(x, y *big.Int) bool
	add(u1, u2, s1, h, r, z1, z2 *big.Int) (x3, y3, z3 *big.Int)
	double(x, y, z *big.Int) (x3, y3, z3 *big.Int)
}

var (
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigEight = big.NewInt(8)
)

// weierstrassFormulas implements y^2 = x^3 + a*x + b.
type weierstrassFormulas struct {
	a, b, p *big.Int
}

// weierstrassMinus3Formulas specializes doubling for a = -3.
type weierstrassMinus3Formulas struct {
	weierstrassFormulas
}

func newWeierstrassFormulas(a, b, p *big.Int) formulas {
	base := weierstrassFormulas{a: a, b: b, p: p}
	minus3 := new(big.Int).Sub(p, bigThree)
	if a.Cmp(minus3) == 0 {
		return &weierstrassMinus3Formulas{base}
	}
	return &base
}

func (f *weierstrassFormulas) onCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, f.p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Add(rhs, f.a)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, f.b)
	rhs.Mod(rhs, f.p)

	return lhs.Cmp(rhs) == 0
}

// add computes
//
//	X3 = R^2 - H^3 - 2*U1*H^2
//	Y3 = R*(U1*H^2 - X3) - S1*H^3
//	Z3 = H*Z1*Z2
func (f *weierstrassFormulas) add(u1, u2, s1, h, r, z1, z2 *big.Int) (*big.Int, *big.Int, *big.Int) {
	p := f.p
	_, hhh, u1hh := addTerms(u1, h, p)

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, hhh)
	x3.Sub(x3, new(big.Int).Lsh(u1hh, 1))
	x3.Mod(x3, p)

	y3 := jacobianY3(r, u1hh, x3, s1, hhh, p)

	z3 := new(big.Int).Mul(h, z1)
	z3.Mul(z3, z2)
	z3.Mod(z3, p)

	return x3, y3, z3
}

// double computes, with S = 4*X*Y^2 and M = 3*X^2 + a*Z^4,
//
//	X3 = M^2 - 2*S
//	Y3 = M*(S - X3) - 8*Y^4
//	Z3 = 2*Y*Z
func (f *weierstrassFormulas) double(x, y, z *big.Int) (*big.Int, *big.Int, *big.Int) {
	p := f.p

	zz := new(big.Int).Mul(z, z)
	zz.Mod(zz, p)
	m := new(big.Int).Mul(x, x)
	m.Mul(m, bigThree)
	aZ4 := new(big.Int).Mul(zz, zz)
	aZ4.Mul(aZ4, f.a)
	m.Add(m, aZ4)
	m.Mod(m, p)

	return weierstrassDouble(m, x, y, z, p)
}

// double uses M = 3*(X + Z^2)*(X - Z^2), which equals 3*X^2 - 3*Z^4.
func (f *weierstrassMinus3Formulas) double(x, y, z *big.Int) (*big.Int, *big.Int, *big.Int) {
	p := f.p

	zz := new(big.Int).Mul(z, z)
	zz.Mod(zz, p)
	m := new(big.Int).Add(x, zz)
	m.Mul(m, new(big.Int).Sub(x, zz))
	m.Mul(m, bigThree)
	m.Mod(m, p)

	return weierstrassDouble(m, x, y, z, p)
}

func weierstrassDouble(m, x, y, z, p *big.Int) (*big.Int, *big.Int, *big.Int) {
	yy := new(big.Int).Mul(y, y)
	yy.Mod(yy, p)

	s := new(big.Int).Mul(x, yy)
	s.Mul(s, bigFour)
	s.Mod(s, p)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, new(big.Int).Lsh(s, 1))
	x3.Mod(x3, p)

	yyyy8 := new(big.Int).Mul(yy, yy)
	yyyy8.Mul(yyyy8, bigEight)

	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, yyyy8)
	y3.Mod(y3, p)

	z3 := new(big.Int).Mul(y, z)
	z3.Mul(z3, bigTwo)
	z3.Mod(z3, p)

	return x3, y3, z3
}

// montgomeryFormulas implements b*y^2 = x^3 + a*x^2 + x. With x = X/Z^2 and
// y = Y/Z^3 the chord and tangent slopes become R/(H*Z1*Z2) and
// M/(2*b*Y*Z), which keeps Z3 identical in shape to the Weierstrass case.
type montgomeryFormulas struct {
	a, b, p *big.Int
}

func (f *montgomeryFormulas) onCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mul(lhs, f.b)
	lhs.Mod(lhs, f.p)

	rhs := new(big.Int).Add(x, f.a)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mul(rhs, x)
	rhs.Mod(rhs, f.p)

	return lhs.Cmp(rhs) == 0
}

// add computes
//
//	Z3 = H*Z1*Z2
//	X3 = b*R^2 - a*Z3^2 - (U1 + U2)*H^2
//	Y3 = R*(U1*H^2 - X3) - S1*H^3
func (f *montgomeryFormulas) add(u1, u2, s1, h, r, z1, z2 *big.Int) (*big.Int, *big.Int, *big.Int) {
	p := f.p
	hh, hhh, u1hh := addTerms(u1, h, p)

	z3 := new(big.Int).Mul(h, z1)
	z3.Mul(z3, z2)
	z3.Mod(z3, p)

	x3 := new(big.Int).Mul(r, r)
	x3.Mul(x3, f.b)
	az3 := new(big.Int).Mul(z3, z3)
	az3.Mul(az3, f.a)
	x3.Sub(x3, az3)
	uSum := new(big.Int).Add(u1, u2)
	uSum.Mul(uSum, hh)
	x3.Sub(x3, uSum)
	x3.Mod(x3, p)

	y3 := jacobianY3(r, u1hh, x3, s1, hhh, p)
	return x3, y3, z3
}

// double computes, with M = 3*X^2 + 2*a*X*Z^2 + Z^4 and T = 4*b^2*X*Y^2,
//
//	Z3 = 2*b*Y*Z
//	X3 = b*M^2 - a*Z3^2 - 2*T
//	Y3 = M*(T - X3) - 8*b^3*Y^4
func (f *montgomeryFormulas) double(x, y, z *big.Int) (*big.Int, *big.Int, *big.Int) {
	p := f.p

	zz := new(big.Int).Mul(z, z)
	zz.Mod(zz, p)

	m := new(big.Int).Mul(x, x)
	m.Mul(m, bigThree)
	axzz := new(big.Int).Mul(x, zz)
	axzz.Mul(axzz, f.a)
	axzz.Lsh(axzz, 1)
	m.Add(m, axzz)
	m.Add(m, new(big.Int).Mul(zz, zz))
	m.Mod(m, p)

	z3 := new(big.Int).Mul(y, z)
	z3.Mul(z3, f.b)
	z3.Lsh(z3, 1)
	z3.Mod(z3, p)

	yy := new(big.Int).Mul(y, y)
	yy.Mod(yy, p)
	bb := new(big.Int).Mul(f.b, f.b)
	t := new(big.Int).Mul(x, yy)
	t.Mul(t, bb)
	t.Lsh(t, 2)
	t.Mod(t, p)

	x3 := new(big.Int).Mul(m, m)
	x3.Mul(x3, f.b)
	az3 := new(big.Int).Mul(z3, z3)
	az3.Mul(az3, f.a)
	x3.Sub(x3, az3)
	x3.Sub(x3, new(big.Int).Lsh(t, 1))
	x3.Mod(x3, p)

	b3y4 := new(big.Int).Mul(yy, yy)
	b3y4.Mul(b3y4, bb)
	b3y4.Mul(b3y4, f.b)
	b3y4.Mul(b3y4, bigEight)

	y3 := new(big.Int).Sub(t, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, b3y4)
	y3.Mod(y3, p)

	return x3, y3, z3
}

// addTerms returns H^2, H^3 and U1*H^2, all reduced.
func addTerms(u1, h, p *big.Int) (hh, hhh, u1hh *big.Int) {
	hh = new(big.Int).Mul(h, h)
	hh.Mod(hh, p)
	hhh = new(big.Int).Mul(hh, h)
	hhh.Mod(hhh, p)
	u1hh = new(big.Int).Mul(u1, hh)
	u1hh.Mod(u1hh, p)
	return hh, hhh, u1hh
}

// jacobianY3 returns R*(U1*H^2 - X3) - S1*H^3 mod p.
func jacobianY3(r, u1hh, x3, s1, hhh, p *big.Int) *big.Int {
	y3 := new(big.Int).Sub(u1hh, x3)
	y3.Mul(y3, r)
	y3.Sub(y3, new(big.Int).Mul(s1, hhh))
	return y3.Mod(y3, p)
}
