package curves

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when the curve modulus is smaller than 2.
	ErrInvalidModulus = errors.New("curves: modulus must be at least 2")

	// ErrOrderNotFound is returned by Order when the search passes the Hasse
	// bound, which can only happen when the modulus is not prime.
	ErrOrderNotFound = errors.New("curves: point order exceeds the Hasse bound")
)

// DegenerateCurveError reports curve parameters describing a singular cubic.
type DegenerateCurveError struct {
	A, B *big.Int
}

func (e *DegenerateCurveError) Error() string {
	return fmt.Sprintf("curves: degenerate curve, 4A³ + 27B² = 0 for A=%s B=%s", e.A, e.B)
}

// PointNotOnCurveError reports a point that does not satisfy the curve equation.
type PointNotOnCurveError struct {
	Point Point
}

func (e *PointNotOnCurveError) Error() string {
	return fmt.Sprintf("curves: point %s is not on the curve", e.Point)
}

// InvalidScalarError reports a multiplier smaller than 1.
type InvalidScalarError struct {
	Scalar *big.Int
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("curves: scalar must be at least 1, got %s", e.Scalar)
}

// NonInvertibleError is returned by the group law when a denominator shares a
// factor with the modulus. Value is the offending denominator reduced into
// [0, Modulus), so callers can recover the shared factor without redoing the
// arithmetic.
type NonInvertibleError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("curves: inverse of %s (mod %s) does not exist", e.Value, e.Modulus)
}

// Divisor returns gcd(Value, Modulus). For a prime modulus this is always the
// modulus itself; for a composite one it may be a proper factor.
func (e *NonInvertibleError) Divisor() *big.Int {
	return new(big.Int).GCD(nil, nil, e.Value, e.Modulus)
}

// NewNonInvertibleError creates a NonInvertibleError for v mod m.
func NewNonInvertibleError(v, m *big.Int) *NonInvertibleError {
	return &NonInvertibleError{
		Value:   new(big.Int).Mod(v, m),
		Modulus: new(big.Int).Set(m),
	}
}
