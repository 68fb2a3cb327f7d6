// Package curves implements affine arithmetic on short Weierstrass curves
// y² = x³ + Ax + B over Z/pZ with math/big.
//
// The point at infinity is a distinct value (the zero Point), never an affine
// coordinate pair. Group-law failures caused by a non-invertible denominator
// are reported as *NonInvertibleError, which carries the offending value; over
// a composite modulus this is how Lenstra factorization finds a factor.
//
// The arithmetic is not constant time.
package curves
