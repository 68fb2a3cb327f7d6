package ecdh

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// ErrNotOnCurve is returned when an x coordinate has no matching y.
var ErrNotOnCurve = errors.New("ecdh: x is not the coordinate of a curve point")

// KeyExchange holds one party's side of an elliptic Diffie-Hellman exchange.
type KeyExchange struct {
	curve  *curves.Curve
	base   curves.Point
	secret *big.Int

	public *curves.Point
}

// New creates a key exchange for the given secret multiplier.
func New(curve *curves.Curve, base curves.Point, secret *big.Int) *KeyExchange {
	return &KeyExchange{
		curve:  curve,
		base:   base,
		secret: new(big.Int).Set(secret),
	}
}

// PublicKey returns secret·base. The result is computed once.
func (k *KeyExchange) PublicKey() (curves.Point, error) {
	if k.public != nil {
		return *k.public, nil
	}
	pub, err := k.curve.ScalarMult(k.base, k.secret)
	if err != nil {
		return curves.Point{}, err
	}
	k.public = &pub
	return pub, nil
}

// SharedPoint returns secret·peer.
func (k *KeyExchange) SharedPoint(peer curves.Point) (curves.Point, error) {
	return k.curve.ScalarMult(peer, k.secret)
}

// SharedSecretFromX takes only the x coordinate of the peer's public key,
// recovers a matching y and returns the x coordinate of the shared point.
// Either square root gives the same result.
func (k *KeyExchange) SharedSecretFromX(x *big.Int) (*big.Int, error) {
	p := k.curve.P()

	// y² = x³ + Ax + B
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	y2.Add(y2, new(big.Int).Mul(k.curve.A(), x))
	y2.Add(y2, k.curve.B())
	y2.Mod(y2, p)

	y := new(big.Int).ModSqrt(y2, p)
	if y == nil {
		return nil, ErrNotOnCurve
	}

	shared, err := k.SharedPoint(curves.NewPoint(x, y))
	if err != nil {
		return nil, err
	}
	if shared.IsInfinity() {
		return nil, ErrNotOnCurve
	}
	return shared.X(), nil
}
