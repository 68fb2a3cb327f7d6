package schnorr

import (
	crand "crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

// Group fixes the setting of a proof: a curve, a base point and the order of
// the base point.
type Group struct {
	Curve *curves.Curve
	G     curves.Point
	N     *big.Int
}

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Point // Commitment R = k * G
	S *big.Int     // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
// Randomness is read from rnd, or crypto/rand when rnd is nil.
func (g *Group) Prove(x *big.Int, X curves.Point, rnd io.Reader) (*Proof, error) {
	if x == nil || g.N == nil || g.N.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("schnorr: invalid inputs")
	}
	if rnd == nil {
		rnd = crand.Reader
	}

	// 1. Generate random nonce k in [1, n)
	k, err := crand.Int(rnd, new(big.Int).Sub(g.N, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	k.Add(k, big.NewInt(1))

	// 2. Compute R = k * G
	R, err := g.mul(g.G, k)
	if err != nil {
		return nil, err
	}

	// 3. Compute challenge e = H(X, R)
	e := g.challenge(X, R)

	// 4. Compute s = k + e * x mod n
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, g.N)

	return &Proof{R: R, S: s}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (g *Group) Verify(p *Proof, X curves.Point) bool {
	if p == nil || p.S == nil {
		return false
	}
	if !g.Curve.IsOnCurve(X) || !g.Curve.IsOnCurve(p.R) {
		return false
	}

	// Check if s is in [0, n-1]
	if p.S.Sign() < 0 || p.S.Cmp(g.N) >= 0 {
		return false
	}

	e := g.challenge(X, p.R)

	// s*G = R + e*X
	lhs, err := g.mul(g.G, p.S)
	if err != nil {
		return false
	}
	eX, err := g.mul(X, e)
	if err != nil {
		return false
	}
	rhs, err := g.Curve.Add(p.R, eX)
	if err != nil {
		return false
	}

	return g.Curve.Equivalent(lhs, rhs)
}

// mul is ScalarMult with k reduced mod n, so that 0 maps to O.
func (g *Group) mul(pt curves.Point, k *big.Int) (curves.Point, error) {
	r := new(big.Int).Mod(k, g.N)
	if r.Sign() == 0 {
		return curves.Infinity(), nil
	}
	return g.Curve.ScalarMult(pt, r)
}

// challenge computes H(G, X, R) mod n. Coordinates are written at the byte
// width of p so the encoding is injective.
func (g *Group) challenge(X, R curves.Point) *big.Int {
	width := (g.Curve.P().BitLen() + 7) / 8

	h := sha256.New()
	for _, pt := range []curves.Point{g.G, X, R} {
		if pt.IsInfinity() {
			h.Write([]byte{0})
			continue
		}
		pt = g.Curve.Reduce(pt)
		h.Write([]byte{4})
		h.Write(pt.X().FillBytes(make([]byte, width)))
		h.Write(pt.Y().FillBytes(make([]byte, width)))
	}

	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, g.N)
}
