// Package naf computes width-w non-adjacent form recodings of scalars.
package naf

import (
	"math/big"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

const (
	// MinWidth and MaxWidth bound the supported window sizes. Digits must
	// fit an int8, which caps the window at 8 bits.
	MinWidth = 2
	MaxWidth = 8
)

// Recode returns the width-w NAF of k with the most significant digit first.
// Every nonzero digit is odd with magnitude below 2^(width-1), and any width
// consecutive digits hold at most one nonzero digit. Recode(0) is [0]; a
// negative k yields the negated digits of |k|.
func Recode(k *big.Int, width int) ([]int8, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, ecmath.NewError(ecmath.ErrInvalidWindow,
			"NAF width %d outside [%d, %d]", width, MinWidth, MaxWidth)
	}
	if k.Sign() == 0 {
		return []int8{0}, nil
	}

	n := new(big.Int).Abs(k)
	mod := int64(1) << uint(width)
	half := mod >> 1
	mask := big.NewInt(mod - 1)

	// Digits are produced least significant first.
	var digits []int8
	low := new(big.Int)
	for n.Sign() > 0 {
		var d int64
		if n.Bit(0) == 1 {
			d = low.And(n, mask).Int64()
			if d >= half {
				d -= mod
			}
			n.Sub(n, big.NewInt(d))
		}
		digits = append(digits, int8(d))
		n.Rsh(n, 1)
	}

	neg := k.Sign() < 0
	for i, j := 0, len(digits)-1; i <= j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
		if neg {
			digits[i] = -digits[i]
			if i != j {
				digits[j] = -digits[j]
			}
		}
	}
	return digits, nil
}

// Value evaluates an MSB-first digit string back to the integer it encodes.
func Value(digits []int8) *big.Int {
	v := new(big.Int)
	for _, d := range digits {
		v.Lsh(v, 1)
		v.Add(v, big.NewInt(int64(d)))
	}
	return v
}
