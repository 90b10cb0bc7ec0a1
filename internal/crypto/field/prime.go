package field

import (
	"crypto/rand"
	"math/big"
)

// primalityRounds is the number of Miller-Rabin witnesses. A composite
// survives with probability at most 4^-40.
const primalityRounds = 40

var smallPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// IsPrime reports whether n is prime with high probability.
func IsPrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// Trial division rejects most composites before any exponentiation.
	m := new(big.Int)
	for _, sp := range smallPrimes {
		q := big.NewInt(sp)
		if n.Cmp(q) == 0 {
			return true
		}
		if m.Mod(n, q).Sign() == 0 {
			return false
		}
	}

	return millerRabin(n, primalityRounds)
}

// millerRabin runs the probabilistic test on an odd n > 3.
func millerRabin(n *big.Int, rounds int) bool {
	nMinus1 := new(big.Int).Sub(n, one)

	// n - 1 = 2^s * d with d odd
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Witnesses are drawn from [2, n-2].
	span := new(big.Int).Sub(n, three)
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rand.Reader, span)
		if err != nil {
			// Without entropy fall back to the deterministic stdlib test.
			return n.ProbablyPrime(rounds)
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for r := 1; r < s; r++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
