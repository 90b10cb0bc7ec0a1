package curves

import (
	"math/big"

	"filippo.io/edwards25519"

	"github.com/smallyu/go-ecmath/pkg/curve"
)

var (
	// l = 2^252 + 27742317777372353535851937790883648493
	curve25519Order, _ = new(big.Int).SetString("72370055773322622139731865630429942408571163593799076060019509382854542509893", 10)

	curve25519Prime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// v-coordinate of the base point u = 9 (RFC 7748, section 4.1).
	curve25519Gy, _ = new(big.Int).SetString("14781619447589544791020593568409986887264606134616475288964881837755586237401", 10)
)

// Curve25519 is the Montgomery curve y^2 = x^3 + 486662*x^2 + x over
// GF(2^255 - 19). Scalar multiplication runs on the birationally equivalent
// edwards25519 curve and maps the result back with BytesMontgomery, so only
// the u-coordinate is available.
type Curve25519 struct{}

func (c *Curve25519) Name() string { return "curve25519" }

func (c *Curve25519) Form() curve.Form { return curve.Montgomery }

func (c *Curve25519) Field() *big.Int { return new(big.Int).Set(curve25519Prime) }

func (c *Curve25519) Order() *big.Int { return new(big.Int).Set(curve25519Order) }

func (c *Curve25519) Cofactor() *big.Int { return big.NewInt(8) }

func (c *Curve25519) Coefficients() (*big.Int, *big.Int) {
	return big.NewInt(486662), big.NewInt(1)
}

func (c *Curve25519) Generator() (*big.Int, *big.Int) {
	return big.NewInt(9), new(big.Int).Set(curve25519Gy)
}

func (c *Curve25519) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, bool) {
	kn := new(big.Int).Mod(k, curve25519Order)
	if kn.Sign() == 0 {
		return nil, nil, false
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(toLittleEndian(kn))
	if err != nil {
		return nil, nil, false
	}
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	return fromLittleEndian(p.BytesMontgomery()), nil, true
}

// NewCurve25519 returns the edwards25519-backed Curve25519 reference.
func NewCurve25519() Reference {
	return &Curve25519{}
}

// toLittleEndian encodes n < 2^256 as 32 little-endian bytes.
func toLittleEndian(n *big.Int) []byte {
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}

func fromLittleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
