package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Marshal encodes the signature as the ASN.1 DER structure
// SEQUENCE { r INTEGER, s INTEGER }.
func (sig *Signature) Marshal() ([]byte, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "incomplete signature")
	}
	if sig.R.Sign() <= 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "R must be larger than zero")
	}
	if sig.S.Sign() <= 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "S must be larger than zero")
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R)
		b.AddASN1BigInt(sig.S)
	})
	return b.Bytes()
}

// ParseSignature decodes a DER signature produced by Marshal.
func ParseSignature(der []byte) (*Signature, error) {
	var (
		inner cryptobyte.String
		r     = new(big.Int)
		s     = new(big.Int)
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "malformed ASN.1 signature")
	}

	if r.Sign() <= 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "R must be larger than zero")
	}
	if s.Sign() <= 0 {
		return nil, ecmath.NewError(ecmath.ErrInvalidSignatureEncoding, "S must be larger than zero")
	}
	return &Signature{R: r, S: s}, nil
}

// IsLowS reports whether s does not exceed half the group order.
func (sig *Signature) IsLowS(order *big.Int) bool {
	half := new(big.Int).Rsh(order, 1)
	return sig.S.Cmp(half) <= 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(r=0x%x, s=0x%x)", sig.R, sig.S)
}

// toLowS maps s to n-s when s is above n/2. Both values verify.
func toLowS(s, order *big.Int) *big.Int {
	half := new(big.Int).Rsh(order, 1)
	if s.Cmp(half) > 0 {
		return new(big.Int).Sub(order, s)
	}
	return s
}
