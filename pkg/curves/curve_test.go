package curves

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurve(t testing.TB, a, b, p int64) *Curve {
	t.Helper()
	c, err := NewInt64(a, b, p)
	require.NoError(t, err)
	return c
}

// allPoints enumerates the affine points of a small curve.
func allPoints(c *Curve) []Point {
	p := c.P().Int64()
	var pts []Point
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			pt := NewPointInt64(x, y)
			if c.IsOnCurve(pt) {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNew(t *testing.T) {
	t.Run("valid curve", func(t *testing.T) {
		c, err := NewInt64(3, 8, 13)
		require.NoError(t, err)
		assert.Equal(t, int64(4*27+27*64), c.Discriminant().Int64())
		assert.Equal(t, "E(F_13): y² = x³ + 3x + 8", c.String())
	})

	t.Run("degenerate curve", func(t *testing.T) {
		_, err := NewInt64(0, 0, 13)
		var degenerate *DegenerateCurveError
		require.ErrorAs(t, err, &degenerate)
		assert.Equal(t, int64(0), degenerate.A.Int64())
	})

	t.Run("degenerate with nonzero coefficients", func(t *testing.T) {
		// 4(-3)³ + 27(2)² = 0
		_, err := NewInt64(-3, 2, 13)
		var degenerate *DegenerateCurveError
		assert.ErrorAs(t, err, &degenerate)
	})

	t.Run("invalid modulus", func(t *testing.T) {
		_, err := NewInt64(1, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("singular only modulo p", func(t *testing.T) {
		// 27·13² is not zero, but it vanishes mod 13: y² = x³ over F_13.
		c, err := NewInt64(0, 13, 13)
		require.NoError(t, err)
		assert.True(t, c.SingularModP())

		assert.False(t, mustCurve(t, 3, 8, 13).SingularModP())
	})

	t.Run("parameters are copied", func(t *testing.T) {
		a := big.NewInt(3)
		c, err := New(a, big.NewInt(8), big.NewInt(13))
		require.NoError(t, err)
		a.SetInt64(99)
		assert.Equal(t, int64(3), c.A().Int64())
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "E(F_13): y² = x³ + 8", mustCurve(t, 0, 8, 13).String())
	assert.Equal(t, "E(F_13): y² = x³ + 1x", mustCurve(t, 1, 0, 13).String())
}

func TestIsOnCurve(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)

	if !c.IsOnCurve(NewPointInt64(9, 7)) {
		t.Error("(9, 7) should be on the curve")
	}
	if c.IsOnCurve(NewPointInt64(9, 8)) {
		t.Error("(9, 8) should not be on the curve")
	}
	if !c.IsOnCurve(Infinity()) {
		t.Error("O should be on the curve")
	}
	// Unreduced coordinates are checked modulo p.
	if !c.IsOnCurve(NewPointInt64(9, -7)) {
		t.Error("(9, -7) should be on the curve")
	}

	if got := len(allPoints(c)); got != 8 {
		t.Errorf("expected 8 affine points, got %d", got)
	}
}

func TestNegate(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)

	assertPoint(t, NewPointInt64(9, -7), c.Negate(NewPointInt64(9, 7)))
	assert.True(t, c.Negate(Infinity()).IsInfinity())
	assertPoint(t, NewPointInt64(9, 6), c.Reduce(c.Negate(NewPointInt64(9, 7))))
	assert.True(t, c.Reduce(Infinity()).IsInfinity())
}

func TestAdd(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)
	p := NewPointInt64(9, 7)
	q := NewPointInt64(1, 8)

	t.Run("reference vectors", func(t *testing.T) {
		r, err := c.Add(p, c.Negate(p))
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())

		r, err = c.Add(p, q)
		require.NoError(t, err)
		assertPoint(t, NewPointInt64(2, 10), r)
	})

	t.Run("identity", func(t *testing.T) {
		r, err := c.Add(p, Infinity())
		require.NoError(t, err)
		assertPoint(t, p, r)

		r, err = c.Add(Infinity(), p)
		require.NoError(t, err)
		assertPoint(t, p, r)
	})

	t.Run("reduced negation", func(t *testing.T) {
		r, err := c.Add(p, NewPointInt64(9, 6))
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())
	})

	t.Run("doubling", func(t *testing.T) {
		r, err := c.Double(p)
		require.NoError(t, err)
		assertPoint(t, NewPointInt64(9, 6), r)
	})

	t.Run("point with y = 0 is not the identity", func(t *testing.T) {
		// (0, 0) lies on y² = x³ + x and has order 2.
		c := mustCurve(t, 1, 0, 13)
		z := NewPointInt64(0, 0)
		require.True(t, c.IsOnCurve(z))
		assert.False(t, z.IsInfinity())

		r, err := c.Add(z, z)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())

		order, err := c.Order(z)
		require.NoError(t, err)
		assert.Equal(t, int64(2), order.Int64())
	})

	t.Run("non invertible over composite modulus", func(t *testing.T) {
		// Over Z/15Z the points (1, 1) and (6, 0) have x2 - x1 = 5.
		c := mustCurve(t, 1, 1, 15)
		_, err := c.Add(NewPointInt64(1, 1), NewPointInt64(6, 0))

		var ni *NonInvertibleError
		require.ErrorAs(t, err, &ni)
		assert.Equal(t, int64(5), ni.Value.Int64())
		assert.Equal(t, int64(15), ni.Modulus.Int64())
		assert.Equal(t, int64(5), ni.Divisor().Int64())
	})
}

func TestGroupAxioms(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)
	pts := append(allPoints(c), Infinity())

	add := func(p, q Point) Point {
		r, err := c.Add(p, q)
		require.NoError(t, err)
		return r
	}

	for _, p := range pts {
		assertPoint(t, p, add(p, Infinity()))
		assert.True(t, add(p, c.Negate(p)).IsInfinity(), "P + (-P) for %s", p)

		for _, q := range pts {
			assertPoint(t, add(p, q), add(q, p))

			for _, r := range pts {
				lhs := add(add(p, q), r)
				rhs := add(p, add(q, r))
				if !c.Equivalent(lhs, rhs) {
					t.Fatalf("(%s + %s) + %s = %s, but %s + (%s + %s) = %s", p, q, r, lhs, p, q, r, rhs)
				}
			}
		}
	}
}

func TestSlope(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)
	p := NewPointInt64(9, 7)

	l, vertical, err := c.Slope(p, NewPointInt64(1, 8))
	require.NoError(t, err)
	assert.False(t, vertical)
	assert.Equal(t, int64(8), l.Int64())

	_, vertical, err = c.Slope(p, c.Negate(p))
	require.NoError(t, err)
	assert.True(t, vertical)

	_, vertical, err = c.Slope(p, Infinity())
	require.NoError(t, err)
	assert.True(t, vertical)
}

func TestScalarMult(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		c := mustCurve(t, 14, 19, 3623)
		r, err := c.ScalarMultInt64(NewPointInt64(6, 730), 947)
		require.NoError(t, err)
		assertPoint(t, NewPointInt64(3492, 60), r)
	})

	t.Run("one is identity map", func(t *testing.T) {
		c := mustCurve(t, 3, 8, 13)
		r, err := c.ScalarMultInt64(NewPointInt64(9, 7), 1)
		require.NoError(t, err)
		assertPoint(t, NewPointInt64(9, 7), r)
	})

	t.Run("homomorphism", func(t *testing.T) {
		c := mustCurve(t, 14, 19, 3623)
		p := NewPointInt64(6, 730)
		for _, mn := range [][2]int64{{1, 1}, {2, 5}, {17, 30}, {947, 1000}, {3000, 566}} {
			sum, err := c.ScalarMultInt64(p, mn[0]+mn[1])
			require.NoError(t, err)
			a, err := c.ScalarMultInt64(p, mn[0])
			require.NoError(t, err)
			b, err := c.ScalarMultInt64(p, mn[1])
			require.NoError(t, err)
			ab, err := c.Add(a, b)
			require.NoError(t, err)
			if !c.Equivalent(sum, ab) {
				t.Errorf("(%d+%d)P = %s, %dP + %dP = %s", mn[0], mn[1], sum, mn[0], mn[1], ab)
			}
		}
	})

	t.Run("invalid scalar", func(t *testing.T) {
		c := mustCurve(t, 3, 8, 13)
		for _, n := range []int64{0, -1} {
			_, err := c.ScalarMultInt64(NewPointInt64(9, 7), n)
			var invalid *InvalidScalarError
			assert.ErrorAs(t, err, &invalid)
		}
	})

	t.Run("point not on curve", func(t *testing.T) {
		c := mustCurve(t, 3, 8, 13)
		_, err := c.ScalarMultInt64(NewPointInt64(9, 8), 3)
		var notOnCurve *PointNotOnCurveError
		require.ErrorAs(t, err, &notOnCurve)
		assertPoint(t, NewPointInt64(9, 8), notOnCurve.Point)
	})

	t.Run("infinity", func(t *testing.T) {
		c := mustCurve(t, 3, 8, 13)
		r, err := c.ScalarMultInt64(Infinity(), 5)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())
	})
}

func TestOrder(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)

	t.Run("small curve", func(t *testing.T) {
		for _, pt := range allPoints(c) {
			n, err := c.Order(pt)
			require.NoError(t, err)

			r, err := c.ScalarMult(pt, n)
			require.NoError(t, err)
			assert.True(t, r.IsInfinity(), "%s·%s should be O", n, pt)

			for k := int64(1); k < n.Int64(); k++ {
				r, err := c.ScalarMultInt64(pt, k)
				require.NoError(t, err)
				if r.IsInfinity() {
					t.Errorf("%d·%s = O, but order is %s", k, pt, n)
				}
			}
		}

		n, err := c.Order(NewPointInt64(9, 7))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n.Int64())

		n, err = c.Order(NewPointInt64(1, 8))
		require.NoError(t, err)
		assert.Equal(t, int64(9), n.Int64())
	})

	t.Run("larger curve", func(t *testing.T) {
		c := mustCurve(t, 14, 19, 3623)
		n, err := c.Order(NewPointInt64(6, 730))
		require.NoError(t, err)
		assert.Equal(t, int64(3566), n.Int64())
	})

	t.Run("infinity", func(t *testing.T) {
		n, err := c.Order(Infinity())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n.Int64())
	})

	t.Run("point not on curve", func(t *testing.T) {
		_, err := c.Order(NewPointInt64(0, 0))
		var notOnCurve *PointNotOnCurveError
		assert.True(t, errors.As(err, &notOnCurve))
	})
}

func TestInverse(t *testing.T) {
	c := mustCurve(t, 3, 8, 13)

	inv, err := c.Inverse(big.NewInt(-8))
	require.NoError(t, err)
	assert.Equal(t, int64(8), inv.Int64())

	_, err = c.Inverse(big.NewInt(26))
	var ni *NonInvertibleError
	require.ErrorAs(t, err, &ni)
	assert.Equal(t, int64(0), ni.Value.Int64())
	assert.Equal(t, int64(13), ni.Divisor().Int64())
}
