package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJacobianToAffine(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 11)

	// (2 : 3 : 4) = (2/16, 3/64) = (7, 4) mod 11
	j := &Jacobian{curve: c, x: big.NewInt(2), y: big.NewInt(3), z: big.NewInt(4)}
	aff, err := j.ToAffine()
	require.NoError(t, err)
	a, ok := aff.(*Affine)
	require.True(t, ok)
	assert.Equal(t, int64(7), a.X().Int64())
	assert.Equal(t, int64(4), a.Y().Int64())

	zero := &Jacobian{curve: c, x: big.NewInt(1), y: big.NewInt(1), z: big.NewInt(0)}
	assert.True(t, zero.IsInfinity())
	aff, err = zero.ToAffine()
	require.NoError(t, err)
	assert.Same(t, c.Infinity(), aff)
}

func TestRepresentationRoundTrip(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 13)
	pt := mustPoint(t, c, 9, 7)

	j := pt.ToJacobian()
	assert.IsType(t, &Jacobian{}, j)
	assert.Same(t, j, j.ToJacobian())

	back, err := j.ToAffine()
	require.NoError(t, err)
	assert.Equal(t, pt.String(), back.String())

	aff, err := pt.ToAffine()
	require.NoError(t, err)
	assert.Same(t, pt, aff)

	inf := c.Infinity()
	assert.Same(t, inf, inf.ToJacobian())
	a, err := inf.ToAffine()
	require.NoError(t, err)
	assert.Same(t, inf, a)
}

func TestNegate(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 13)
	pt := mustPoint(t, c, 1, 8)

	neg := pt.Negate()
	assert.Equal(t, "(1, 5)", neg.String())
	assert.True(t, pt.Equal(neg.Negate()))

	jneg := pt.ToJacobian().Negate()
	assert.True(t, jneg.Equal(neg))

	assert.Same(t, c.Infinity(), c.Infinity().Negate())

	// y = 0 is its own inverse.
	m := mustMontgomery(t, 3, 1, 101)
	origin := mustPoint(t, m, 0, 0)
	assert.True(t, origin.Equal(origin.Negate()))
}

func TestEqual(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 13)
	pt := mustPoint(t, c, 2, 3)

	// (2 : 3 : 1) scaled by lambda = 5 is (2*25 : 3*125 : 5).
	scaled := &Jacobian{curve: c, x: big.NewInt(50), y: big.NewInt(375), z: big.NewInt(5)}
	assert.True(t, pt.Equal(scaled))
	assert.True(t, scaled.Equal(pt))
	assert.True(t, scaled.Equal(pt.ToJacobian()))

	assert.False(t, pt.Equal(mustPoint(t, c, 2, 10)))
	assert.False(t, pt.Equal(c.Infinity()))
	assert.False(t, c.Infinity().Equal(pt))
	assert.True(t, c.Infinity().Equal(c.Infinity()))
	assert.False(t, pt.Equal(nil))

	zero := &Jacobian{curve: c, x: big.NewInt(4), y: big.NewInt(4), z: big.NewInt(13)}
	assert.True(t, zero.Equal(c.Infinity()))

	t.Run("different curves", func(t *testing.T) {
		// (1, 8) also lies on y^2 = x^3 + 3x + 8 over GF(13) built twice,
		// and equal parameters make equal curves.
		twin := mustWeierstrass(t, 3, 8, 13)
		assert.True(t, mustPoint(t, c, 1, 8).Equal(mustPoint(t, twin, 1, 8)))

		other := mustWeierstrass(t, 3, 7, 13)
		assert.False(t, c.Infinity().Equal(other.Infinity()))
	})
}

func TestAccessorsCopy(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 13)
	pt := mustPoint(t, c, 1, 8)
	pt.X().SetInt64(0)
	pt.Y().SetInt64(0)
	assert.Equal(t, "(1, 8)", pt.String())

	j := &Jacobian{curve: c, x: big.NewInt(1), y: big.NewInt(2), z: big.NewInt(3)}
	j.Z().SetInt64(0)
	assert.Equal(t, "(1 : 2 : 3)", j.String())
	assert.Equal(t, int64(1), j.X().Int64())
	assert.Equal(t, int64(2), j.Y().Int64())
	assert.Equal(t, "Infinity", c.Infinity().String())
}
