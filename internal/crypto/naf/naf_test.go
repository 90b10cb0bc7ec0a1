package naf

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

func TestRecodeWidth2(t *testing.T) {
	tests := []struct {
		k    int64
		want []int8
	}{
		{0, []int8{0}},
		{1, []int8{1}},
		{2, []int8{1, 0}},
		{3, []int8{1, 0, -1}},
		{4, []int8{1, 0, 0}},
		{5, []int8{1, 0, 1}},
		{6, []int8{1, 0, -1, 0}},
		{7, []int8{1, 0, 0, -1}},
		{8, []int8{1, 0, 0, 0}},
		{9, []int8{1, 0, 0, 1}},
		{10, []int8{1, 0, 1, 0}},
		{-3, []int8{-1, 0, 1}},
		{-7, []int8{-1, 0, 0, 1}},
	}

	for _, tt := range tests {
		got, err := Recode(big.NewInt(tt.k), 2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "k = %d", tt.k)
	}
}

func TestRecodeWidth4(t *testing.T) {
	got, err := Recode(big.NewInt(7), 4)
	require.NoError(t, err)
	assert.Equal(t, []int8{7}, got)

	got, err = Recode(big.NewInt(947), 4)
	require.NoError(t, err)
	assert.Equal(t, []int8{1, 0, 0, 0, 0, 0, -5, 0, 0, 0, 3}, got)
}

// TestRecodeProperties checks the digit set, the non-adjacency window and the
// round trip for random scalars at every supported width.
func TestRecodeProperties(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 521)
	for width := MinWidth; width <= MaxWidth; width++ {
		limit := 1 << uint(width-1)
		for i := 0; i < 20; i++ {
			k, err := rand.Int(rand.Reader, bound)
			require.NoError(t, err)
			if i%2 == 1 {
				k.Neg(k)
			}

			digits, err := Recode(k, width)
			require.NoError(t, err)
			assert.Equal(t, 0, Value(digits).Cmp(k), "round trip at width %d", width)

			if k.Sign() != 0 {
				assert.NotEqual(t, int8(0), digits[0], "leading digit must be nonzero")
			}

			lastNonZero := -width
			for pos, d := range digits {
				if d == 0 {
					continue
				}
				v := int(d)
				if v < 0 {
					v = -v
				}
				assert.Equal(t, 1, v%2, "digit %d must be odd", d)
				assert.Less(t, v, limit, "digit %d exceeds window", d)
				assert.GreaterOrEqual(t, pos-lastNonZero, width,
					"nonzero digits closer than width %d", width)
				lastNonZero = pos
			}
		}
	}
}

func TestRecodeInvalidWidth(t *testing.T) {
	for _, w := range []int{-1, 0, 1, 9, 64} {
		_, err := Recode(big.NewInt(5), w)
		assert.True(t, errors.Is(err, ecmath.ErrInvalidWindow), "width %d", w)
	}
}

func TestRecodeDoesNotMutateInput(t *testing.T) {
	k := big.NewInt(947)
	_, err := Recode(k, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(947), k.Int64())
}
