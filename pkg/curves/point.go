package curves

import (
	"fmt"
	"math/big"
)

// Point is either the point at infinity or an affine pair (x, y).
// Points are values: the coordinates are copied on the way in and on the way
// out, so a Point never changes after construction. The zero value is the
// point at infinity.
type Point struct {
	x, y   *big.Int
	affine bool
}

// Infinity returns the point at infinity, the identity of every curve group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). The coordinates are stored as
// given; curve operations reduce them when needed.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		affine: true,
	}
}

// NewPointInt64 is NewPoint for small coordinates.
func NewPointInt64(x, y int64) Point {
	return Point{
		x:      big.NewInt(x),
		y:      big.NewInt(y),
		affine: true,
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.affine
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal compares coordinates as integers. Use Curve.Equivalent to compare
// modulo the field.
func (p Point) Equal(q Point) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.affine {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
