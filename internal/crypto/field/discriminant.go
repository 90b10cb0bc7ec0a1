package field

import "math/big"

// WeierstrassNonSingular reports whether y^2 = x^3 + a*x + b is non-singular
// over GF(p), i.e. 4a^3 + 27b^2 != 0 (mod p).
func WeierstrassNonSingular(a, b, p *big.Int) bool {
	lhs := new(big.Int).Exp(Mod(a, p), three, p)
	lhs.Mul(lhs, four)

	rhs := new(big.Int).Mul(b, b)
	rhs.Mul(rhs, big.NewInt(27))

	lhs.Add(lhs, rhs)
	return lhs.Mod(lhs, p).Sign() != 0
}

// MontgomeryNonSingular reports whether b*y^2 = x^3 + a*x^2 + x is
// non-singular over GF(p): a^2 != 4 and b != 0 (mod p).
func MontgomeryNonSingular(a, b, p *big.Int) bool {
	if Mod(b, p).Sign() == 0 {
		return false
	}
	a2 := new(big.Int).Mul(a, a)
	a2.Sub(a2, four)
	return a2.Mod(a2, p).Sign() != 0
}
