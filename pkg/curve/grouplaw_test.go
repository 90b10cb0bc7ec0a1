package curve

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

func TestAdd(t *testing.T) {
	c := mustWeierstrass(t, 3, 8, 13)
	p := mustPoint(t, c, 1, 8)
	q := mustPoint(t, c, 9, 7)

	t.Run("general", func(t *testing.T) {
		sum, err := c.AddAffine(p, q)
		require.NoError(t, err)
		assert.Equal(t, "(2, 10)", sum.String())

		j, err := c.Add(p, q)
		require.NoError(t, err)
		assert.IsType(t, &Jacobian{}, j)
		assert.True(t, j.Equal(sum))
	})

	t.Run("identity", func(t *testing.T) {
		sum, err := c.Add(p, c.Infinity())
		require.NoError(t, err)
		assert.True(t, sum.Equal(p))

		sum, err = c.Add(c.Infinity(), q)
		require.NoError(t, err)
		assert.True(t, sum.Equal(q))

		sum, err = c.Add(c.Infinity(), c.Infinity())
		require.NoError(t, err)
		assert.Same(t, c.Infinity(), sum)
	})

	t.Run("inverse", func(t *testing.T) {
		sum, err := c.Add(p, p.Negate())
		require.NoError(t, err)
		assert.Same(t, c.Infinity(), sum)
	})

	t.Run("equal operands double", func(t *testing.T) {
		sum, err := c.AddAffine(p, p.ToJacobian())
		require.NoError(t, err)
		dbl, err := c.DoubleAffine(p)
		require.NoError(t, err)
		assert.Equal(t, "(2, 3)", dbl.String())
		assert.True(t, sum.Equal(dbl))
	})

	t.Run("foreign point", func(t *testing.T) {
		other := mustWeierstrass(t, 2, 4, 5)
		_, err := c.Add(p, other.Infinity())
		assert.True(t, errors.Is(err, ecmath.ErrPointNotOnCurve))
		_, err = c.Double(other.Infinity())
		assert.True(t, errors.Is(err, ecmath.ErrPointNotOnCurve))
		_, err = c.Add(nil, p)
		assert.True(t, errors.Is(err, ecmath.ErrPointNotOnCurve))
	})
}

func TestDoubleOrderTwo(t *testing.T) {
	m := mustMontgomery(t, 3, 1, 101)

	origin := mustPoint(t, m, 0, 0)
	dbl, err := m.Double(origin)
	require.NoError(t, err)
	assert.True(t, dbl.IsInfinity())

	// (2, 74) has order 4.
	q := mustPoint(t, m, 2, 74)
	q2, err := m.DoubleAffine(q)
	require.NoError(t, err)
	assert.Equal(t, "(77, 0)", q2.String())
	q4, err := m.Double(q2)
	require.NoError(t, err)
	assert.True(t, q4.IsInfinity())

	dbl, err = m.Double(m.Infinity())
	require.NoError(t, err)
	assert.Same(t, m.Infinity(), dbl)
}

func TestMontgomeryAdd(t *testing.T) {
	m := mustMontgomery(t, 3, 1, 101)
	p := mustPoint(t, m, 24, 27)

	p2, err := m.DoubleAffine(p)
	require.NoError(t, err)
	assert.Equal(t, "(97, 9)", p2.String())

	p11 := mustPoint(t, m, 80, 90)
	sum, err := m.AddAffine(p, p11)
	require.NoError(t, err)
	assert.Equal(t, "(0, 0)", sum.String())
}

// checkGroupAxioms verifies closure, commutativity, identity and inverses on
// all pairs and associativity on sampled triples.
func checkGroupAxioms(t *testing.T, c *Curve, triples int) {
	pts, err := c.Points()
	require.NoError(t, err)

	for _, p := range pts {
		inv, err := c.Add(p, p.Negate())
		require.NoError(t, err)
		assert.True(t, inv.IsInfinity(), "%s + -%s", p, p)

		id, err := c.Add(p, c.Infinity())
		require.NoError(t, err)
		assert.True(t, id.Equal(p))

		for _, q := range pts {
			pq, err := c.Add(p, q)
			require.NoError(t, err)
			qp, err := c.Add(q, p)
			require.NoError(t, err)
			assert.True(t, c.Contains(pq), "%s + %s escapes the curve", p, q)
			assert.True(t, pq.Equal(qp), "%s + %s not commutative", p, q)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < triples; i++ {
		p, q, r := pts[rng.Intn(len(pts))], pts[rng.Intn(len(pts))], pts[rng.Intn(len(pts))]

		pq, _ := c.Add(p, q)
		left, _ := c.Add(pq, r)
		qr, _ := c.Add(q, r)
		right, _ := c.Add(p, qr)
		assert.True(t, left.Equal(right), "(%s + %s) + %s", p, q, r)
	}
}

func TestGroupAxioms(t *testing.T) {
	t.Run("weierstrass", func(t *testing.T) {
		checkGroupAxioms(t, mustWeierstrass(t, 3, 8, 13), 500)
	})
	t.Run("weierstrass a=-3", func(t *testing.T) {
		checkGroupAxioms(t, mustWeierstrass(t, -3, 5, 13), 500)
	})
	t.Run("montgomery", func(t *testing.T) {
		checkGroupAxioms(t, mustMontgomery(t, 3, 1, 101), 2000)
	})
}
