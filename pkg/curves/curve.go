package curves

import (
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
	tw7   = big.NewInt(27)
)

// Curve is the short Weierstrass curve y² = x³ + Ax + B over Z/pZ.
//
// p is expected to be an odd prime. It is not checked: Lenstra factorization
// deliberately works over a composite modulus, where a failed inversion in the
// group law exposes a factor.
//
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	a, b, p *big.Int
	disc    *big.Int
}

// New returns the curve y² = x³ + ax + b over Z/pZ. The discriminant
// 4a³ + 27b² is checked against zero as an integer, not modulo p; see
// SingularModP.
func New(a, b, p *big.Int) (*Curve, error) {
	if p.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}

	disc := discriminant(a, b)
	if disc.Sign() == 0 {
		return nil, &DegenerateCurveError{
			A: new(big.Int).Set(a),
			B: new(big.Int).Set(b),
		}
	}

	return &Curve{
		a:    new(big.Int).Set(a),
		b:    new(big.Int).Set(b),
		p:    new(big.Int).Set(p),
		disc: disc,
	}, nil
}

// NewInt64 is New for small parameters.
func NewInt64(a, b, p int64) (*Curve, error) {
	return New(big.NewInt(a), big.NewInt(b), big.NewInt(p))
}

// discriminant returns 4a³ + 27b².
func discriminant(a, b *big.Int) *big.Int {
	a3 := new(big.Int).Mul(a, a)
	a3.Mul(a3, a)
	a3.Mul(a3, four)

	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, tw7)

	return a3.Add(a3, b2)
}

func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// Discriminant returns 4A³ + 27B² as an integer.
func (c *Curve) Discriminant() *big.Int { return new(big.Int).Set(c.disc) }

// SingularModP reports whether the discriminant vanishes modulo p. Such a curve
// is accepted by New but has no group structure over the field.
func (c *Curve) SingularModP() bool {
	return new(big.Int).Mod(c.disc, c.p).Sign() == 0
}

// Identity returns the point at infinity.
func (c *Curve) Identity() Point {
	return Infinity()
}

// IsOnCurve reports whether pt satisfies y² ≡ x³ + Ax + B (mod p).
// The point at infinity is on every curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}

	y2 := new(big.Int).Mul(pt.y, pt.y)
	y2.Mod(y2, c.p)

	return c.rhs(pt.x).Cmp(y2) == 0
}

// rhs returns x³ + Ax + B mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)

	ax := new(big.Int).Mul(c.a, x)

	x3.Add(x3, ax)
	x3.Add(x3, c.b)
	return x3.Mod(x3, c.p)
}

// Equivalent reports whether p1 and p2 are the same point once their
// coordinates are reduced modulo p.
func (c *Curve) Equivalent(p1, p2 Point) bool {
	if p1.IsInfinity() || p2.IsInfinity() {
		return p1.IsInfinity() == p2.IsInfinity()
	}
	return c.congruent(p1.x, p2.x) && c.congruent(p1.y, p2.y)
}

func (c *Curve) congruent(u, v *big.Int) bool {
	d := new(big.Int).Sub(u, v)
	return d.Mod(d, c.p).Sign() == 0
}

// Reduce returns pt with both coordinates reduced into [0, p).
func (c *Curve) Reduce(pt Point) Point {
	if pt.IsInfinity() {
		return pt
	}
	return Point{
		x:      new(big.Int).Mod(pt.x, c.p),
		y:      new(big.Int).Mod(pt.y, c.p),
		affine: true,
	}
}

// Negate returns (x, -y). The result is not reduced. Negate(O) is O.
func (c *Curve) Negate(pt Point) Point {
	if pt.IsInfinity() {
		return pt
	}
	return Point{
		x:      new(big.Int).Set(pt.x),
		y:      new(big.Int).Neg(pt.y),
		affine: true,
	}
}

// Add returns p1 + p2 under the chord-and-tangent law. The result is reduced
// into [0, p). A *NonInvertibleError is returned when the slope denominator has
// no inverse modulo p.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}
	if c.Equivalent(p1, c.Negate(p2)) {
		return Infinity(), nil
	}

	l, err := c.slope(p1, p2)
	if err != nil {
		return Point{}, err
	}

	// x3 = λ² - x1 - x2
	x3 := new(big.Int).Mul(l, l)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	// y3 = λ(x1 - x3) - y1
	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, l)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, affine: true}, nil
}

// Double returns pt + pt.
func (c *Curve) Double(pt Point) (Point, error) {
	return c.Add(pt, pt)
}

// Slope returns the slope of the line through p1 and p2 (the tangent when they
// coincide). vertical is true when the line is vertical: p1 = -p2, or either
// point is the point at infinity.
func (c *Curve) Slope(p1, p2 Point) (lambda *big.Int, vertical bool, err error) {
	if p1.IsInfinity() || p2.IsInfinity() || c.Equivalent(p1, c.Negate(p2)) {
		return nil, true, nil
	}
	lambda, err = c.slope(p1, p2)
	if err != nil {
		return nil, false, err
	}
	return lambda, false, nil
}

// slope assumes neither point is O and p1 != -p2.
func (c *Curve) slope(p1, p2 Point) (*big.Int, error) {
	num := new(big.Int)
	den := new(big.Int)

	if c.Equivalent(p1, p2) {
		// (3x² + A) / 2y
		num.Mul(p1.x, p1.x)
		num.Mul(num, three)
		num.Add(num, c.a)
		den.Mul(p1.y, two)
	} else {
		// (y2 - y1) / (x2 - x1)
		num.Sub(p2.y, p1.y)
		den.Sub(p2.x, p1.x)
	}

	inv, err := c.Inverse(den)
	if err != nil {
		return nil, err
	}

	num.Mul(num, inv)
	return num.Mod(num, c.p), nil
}

// Inverse returns v⁻¹ mod p, or a *NonInvertibleError carrying v mod p.
func (c *Curve) Inverse(v *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(v, c.p)
	if new(big.Int).GCD(nil, nil, r, c.p).Cmp(one) != 0 {
		return nil, NewNonInvertibleError(r, c.p)
	}
	return r.ModInverse(r, c.p), nil
}

// ScalarMult returns n·pt using double-and-add, scanning n from the least
// significant bit. n must be at least 1 and pt must be on the curve.
func (c *Curve) ScalarMult(pt Point, n *big.Int) (Point, error) {
	if n.Sign() < 1 {
		return Point{}, &InvalidScalarError{Scalar: new(big.Int).Set(n)}
	}
	if !c.IsOnCurve(pt) {
		return Point{}, &PointNotOnCurveError{Point: pt}
	}

	var err error
	q := pt
	r := Infinity()

	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			if r, err = c.Add(r, q); err != nil {
				return Point{}, err
			}
		}
		// q is doubled after every bit, the last one included.
		if q, err = c.Add(q, q); err != nil {
			return Point{}, err
		}
	}

	return r, nil
}

// ScalarMultInt64 is ScalarMult for small multipliers.
func (c *Curve) ScalarMultInt64(pt Point, n int64) (Point, error) {
	return c.ScalarMult(pt, big.NewInt(n))
}

// Order returns the smallest n ≥ 2 with n·pt = O, found by linear search, or 1
// for the point at infinity. The search is only practical for small curves.
func (c *Curve) Order(pt Point) (*big.Int, error) {
	if !c.IsOnCurve(pt) {
		return nil, &PointNotOnCurveError{Point: pt}
	}
	if pt.IsInfinity() {
		return big.NewInt(1), nil
	}

	limit := c.hasseBound()
	n := big.NewInt(1)
	acc := pt

	for n.Cmp(limit) <= 0 {
		var err error
		if acc, err = c.Add(acc, pt); err != nil {
			return nil, err
		}
		n.Add(n, one)
		if acc.IsInfinity() {
			return n, nil
		}
	}

	return nil, ErrOrderNotFound
}

// hasseBound returns p + 1 + 2⌈√p⌉, an upper bound on the group order.
func (c *Curve) hasseBound() *big.Int {
	s := new(big.Int).Sqrt(c.p)
	s.Add(s, one)
	s.Mul(s, two)
	s.Add(s, c.p)
	return s.Add(s, one)
}

func (c *Curve) String() string {
	switch {
	case c.a.Sign() != 0 && c.b.Sign() != 0:
		return fmt.Sprintf("E(F_%s): y² = x³ + %sx + %s", c.p, c.a, c.b)
	case c.a.Sign() == 0:
		return fmt.Sprintf("E(F_%s): y² = x³ + %s", c.p, c.b)
	default:
		return fmt.Sprintf("E(F_%s): y² = x³ + %sx", c.p, c.a)
	}
}
