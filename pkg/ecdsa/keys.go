package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/logging"
	"github.com/smallyu/go-ecmath/pkg/curve"
)

// KeyPair holds a private scalar d in [1, n-1] and its public point d*G.
type KeyPair struct {
	d   *big.Int
	pub *curve.Affine
}

// Private returns a copy of the private scalar.
func (kp *KeyPair) Private() *big.Int {
	return new(big.Int).Set(kp.d)
}

// Public returns the public point.
func (kp *KeyPair) Public() *curve.Affine {
	return kp.pub
}

func (kp *KeyPair) String() string {
	return fmt.Sprintf("KeyPair(pub=%s, priv=%s)", kp.pub, logging.Placeholder())
}
