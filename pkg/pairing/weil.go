package pairing

import (
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// Weil returns the Weil pairing of p and q built from Miller functions for the
// multiplier m.
//
// s is an auxiliary point that must lie outside the subgroups generated by p
// and q. This is not checked; a bad choice typically surfaces as a
// *curves.NonInvertibleError when a Miller value is zero.
func Weil(c *curves.Curve, m *big.Int, p, q, s curves.Point) (*big.Int, error) {
	qs, err := c.Add(q, s)
	if err != nil {
		return nil, err
	}
	r1, err := millerRatio(c, p, qs, s, m)
	if err != nil {
		return nil, err
	}

	negS := c.Negate(s)
	ps, err := c.Add(p, negS)
	if err != nil {
		return nil, err
	}
	r2, err := millerRatio(c, q, ps, negS, m)
	if err != nil {
		return nil, err
	}

	inv, err := c.Inverse(r2)
	if err != nil {
		return nil, err
	}
	r1.Mul(r1, inv)
	return r1.Mod(r1, c.P()), nil
}

// millerRatio returns f_p(num) / f_p(den) mod p.
func millerRatio(c *curves.Curve, p, num, den curves.Point, m *big.Int) (*big.Int, error) {
	fn, err := Miller(c, p, num, m)
	if err != nil {
		return nil, err
	}
	fd, err := Miller(c, p, den, m)
	if err != nil {
		return nil, err
	}
	inv, err := c.Inverse(fd)
	if err != nil {
		return nil, err
	}
	fn.Mul(fn, inv)
	return fn.Mod(fn, c.P()), nil
}
