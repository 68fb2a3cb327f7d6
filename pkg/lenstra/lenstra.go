// Package lenstra implements Lenstra's elliptic curve factorization.
//
// Each trial picks a random curve over Z/nZ through a random point and
// multiplies the point by 2, 3, ..., bound-1. Because n is composite the group
// law can hit a denominator sharing a factor with n; the gcd of that
// denominator and n is then a factor.
package lenstra

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

var (
	ErrInvalidModulus = errors.New("lenstra: modulus must be at least 4")
	ErrPrimeModulus   = errors.New("lenstra: modulus is prime")
	ErrFactorNotFound = errors.New("lenstra: no factor found within the curve limit")

	errFound = errors.New("lenstra: factor found")
)

var (
	one  = big.NewInt(1)
	four = big.NewInt(4)
)

// Factorizer searches for a non-trivial factor of a composite integer.
type Factorizer struct {
	bound     int
	maxCurves int64
	workers   int
	newRand   func(worker int) *rand.Rand
	logger    *log.Entry
	metrics   *Metrics
}

// New returns a Factorizer with a bound of DefaultBound, a single worker and
// no limit on the number of curves.
func New(opts ...Option) *Factorizer {
	f := &Factorizer{
		bound:   DefaultBound,
		workers: 1,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.newRand == nil {
		f.newRand = defaultRandFactory()
	}
	if f.logger == nil {
		f.logger = log.WithField("component", "lenstra")
	}
	if f.metrics == nil {
		f.metrics, _ = NewMetrics(nil)
	}
	return f
}

// Factor returns a non-trivial factor of n drawing curves from rnd. It keeps
// trying new curves until it succeeds or ctx is done.
func Factor(ctx context.Context, n *big.Int, bound int, rnd *rand.Rand) (*big.Int, error) {
	return New(WithBound(bound), WithRand(rnd)).Factor(ctx, n)
}

// Factor returns a non-trivial factor d of n, 1 < d < n.
//
// Without a curve limit the search only ends on success or when ctx is done.
// With a limit it returns ErrFactorNotFound once the limit is spent.
func (f *Factorizer) Factor(ctx context.Context, n *big.Int) (*big.Int, error) {
	if n.Cmp(four) < 0 {
		return nil, ErrInvalidModulus
	}
	if n.ProbablyPrime(20) {
		return nil, ErrPrimeModulus
	}

	logger := f.logger.WithField("n", n.String())
	logger.WithFields(log.Fields{
		"bound":     f.bound,
		"workers":   f.workers,
		"maxCurves": f.maxCurves,
	}).Debug("lenstra: starting")

	var tried atomic.Int64
	found := make(chan *big.Int, f.workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < f.workers; w++ {
		rnd := f.newRand(w)
		wlog := logger.WithField("worker", w)
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				if f.maxCurves > 0 && tried.Add(1) > f.maxCurves {
					return ErrFactorNotFound
				}

				d := f.trial(gctx, rnd, n, wlog)
				if d != nil {
					found <- d
					return errFound
				}
			}
		})
	}

	err := g.Wait()
	select {
	case d := <-found:
		f.metrics.FactorsFound.Inc()
		logger.WithField("factor", d.String()).Info("lenstra: factor found")
		return d, nil
	default:
	}
	return nil, err
}

// trial runs one random curve and returns a factor of n, or nil.
func (f *Factorizer) trial(ctx context.Context, rnd *rand.Rand, n *big.Int, logger *log.Entry) *big.Int {
	f.metrics.CurvesTried.Inc()

	a := new(big.Int).Rand(rnd, n)
	x := new(big.Int).Rand(rnd, n)
	y := new(big.Int).Rand(rnd, n)

	// B = y² - x³ - Ax mod n puts (x, y) on the curve.
	b := new(big.Int).Mul(y, y)
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	b.Sub(b, x3)
	b.Sub(b, new(big.Int).Mul(a, x))
	b.Mod(b, n)

	c, err := curves.New(a, b, n)
	if err != nil {
		logger.WithError(err).Debug("lenstra: skipping curve")
		return nil
	}
	pt := curves.NewPoint(x, y)

	for j := 2; j < f.bound; j++ {
		if ctx.Err() != nil {
			return nil
		}

		_, err := c.ScalarMultInt64(pt, int64(j))
		var ni *curves.NonInvertibleError
		if !errors.As(err, &ni) {
			continue
		}
		f.metrics.NonInvertible.Inc()

		d := ni.Divisor()
		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			logger.WithFields(log.Fields{
				"curve": c.String(),
				"point": pt.String(),
				"j":     j,
			}).Debug("lenstra: non-invertible element shares a factor")
			return d
		}
	}
	return nil
}
