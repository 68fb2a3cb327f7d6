// Package pairing evaluates Miller functions and the Weil pairing on curves
// from package curves.
package pairing

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// ErrEvaluationAtInfinity is returned when a Miller function would be
// evaluated at the point at infinity.
var ErrEvaluationAtInfinity = errors.New("pairing: cannot evaluate at the point at infinity")

var one = big.NewInt(1)

// Miller evaluates at q the Miller function of p for the multiplier m.
//
// Every bit of m is consumed, the leading one included: for each bit the
// running value is squared and multiplied by the tangent at T, T is doubled,
// and on a set bit the chord through T and p is applied and p added to T.
func Miller(c *curves.Curve, p, q curves.Point, m *big.Int) (*big.Int, error) {
	if m.Sign() < 1 {
		return nil, &curves.InvalidScalarError{Scalar: new(big.Int).Set(m)}
	}
	if q.IsInfinity() {
		return nil, ErrEvaluationAtInfinity
	}

	mod := c.P()
	t := p
	f := big.NewInt(1)

	for i := m.BitLen() - 1; i >= 0; i-- {
		g, err := line(c, q, t, t)
		if err != nil {
			return nil, err
		}
		f.Mul(f, f)
		f.Mul(f, g)
		f.Mod(f, mod)

		if t, err = c.Double(t); err != nil {
			return nil, err
		}

		if m.Bit(i) == 1 {
			if g, err = line(c, q, t, p); err != nil {
				return nil, err
			}
			f.Mul(f, g)
			f.Mod(f, mod)

			if t, err = c.Add(t, p); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// line evaluates at v the line through p1 and p2 divided by the vertical line
// through p1 + p2.
func line(c *curves.Curve, v, p1, p2 curves.Point) (*big.Int, error) {
	if p1.IsInfinity() || p2.IsInfinity() {
		return new(big.Int).Set(one), nil
	}

	mod := c.P()
	vx, vy := v.X(), v.Y()
	x1, y1 := p1.X(), p1.Y()

	l, vertical, err := c.Slope(p1, p2)
	if err != nil {
		return nil, err
	}
	if vertical {
		// x - x1
		r := vx.Sub(vx, x1)
		return r.Mod(r, mod), nil
	}

	// y - y1 - λ(x - x1)
	num := new(big.Int).Sub(vx, x1)
	num.Mul(num, l)
	num.Sub(vy, num)
	num.Sub(num, y1)

	// x + x1 + x2 - λ²
	den := new(big.Int).Add(vx, x1)
	den.Add(den, p2.X())
	den.Sub(den, new(big.Int).Mul(l, l))

	inv, err := c.Inverse(den)
	if err != nil {
		return nil, err
	}

	num.Mul(num, inv)
	return num.Mod(num, mod), nil
}
