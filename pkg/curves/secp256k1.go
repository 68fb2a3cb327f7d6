package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Params bundles a curve with a base point and its order.
type Params struct {
	Name  string
	Curve *Curve
	G     Point
	N     *big.Int
}

// NewParams builds Params from standard library curve parameters. The A
// coefficient is not part of elliptic.CurveParams and must be supplied.
func NewParams(a *big.Int, cp *elliptic.CurveParams) (*Params, error) {
	c, err := New(a, cp.B, cp.P)
	if err != nil {
		return nil, err
	}

	g := NewPoint(cp.Gx, cp.Gy)
	if !c.IsOnCurve(g) {
		return nil, &PointNotOnCurveError{Point: g}
	}

	return &Params{
		Name:  cp.Name,
		Curve: c,
		G:     g,
		N:     new(big.Int).Set(cp.N),
	}, nil
}

// Secp256k1 returns y² = x³ + 7 over the secp256k1 field, with its standard
// generator and group order.
func Secp256k1() *Params {
	params, err := NewParams(new(big.Int), secp256k1.S256().Params())
	if err != nil {
		// The constants are fixed; a failure here is a programming error.
		panic(err)
	}
	if params.Name == "" {
		params.Name = "secp256k1"
	}
	return params
}
