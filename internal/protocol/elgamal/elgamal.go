package elgamal

import (
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// Ciphertext is an elliptic ElGamal ciphertext.
type Ciphertext struct {
	C1 curves.Point // k·base
	C2 curves.Point // m + k·pub
}

// ElGamal holds a key pair for elliptic ElGamal encryption.
type ElGamal struct {
	curve  *curves.Curve
	base   curves.Point
	secret *big.Int

	public *curves.Point
}

// New creates a key pair with the given secret multiplier.
func New(curve *curves.Curve, base curves.Point, secret *big.Int) *ElGamal {
	return &ElGamal{
		curve:  curve,
		base:   base,
		secret: new(big.Int).Set(secret),
	}
}

// PublicKey returns secret·base. The result is computed once.
func (e *ElGamal) PublicKey() (curves.Point, error) {
	if e.public != nil {
		return *e.public, nil
	}
	pub, err := e.curve.ScalarMult(e.base, e.secret)
	if err != nil {
		return curves.Point{}, err
	}
	e.public = &pub
	return pub, nil
}

// Encrypt encrypts the curve point m for pub with the ephemeral multiplier k.
func (e *ElGamal) Encrypt(m curves.Point, k *big.Int, pub curves.Point) (*Ciphertext, error) {
	if !e.curve.IsOnCurve(m) {
		return nil, &curves.PointNotOnCurveError{Point: m}
	}

	c1, err := e.curve.ScalarMult(e.base, k)
	if err != nil {
		return nil, err
	}
	mask, err := e.curve.ScalarMult(pub, k)
	if err != nil {
		return nil, err
	}
	c2, err := e.curve.Add(m, mask)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt returns C2 - secret·C1.
func (e *ElGamal) Decrypt(ct *Ciphertext) (curves.Point, error) {
	mask, err := e.curve.ScalarMult(ct.C1, e.secret)
	if err != nil {
		return curves.Point{}, err
	}
	m, err := e.curve.Add(ct.C2, e.curve.Negate(mask))
	if err != nil {
		return curves.Point{}, err
	}
	return e.curve.Reduce(m), nil
}
