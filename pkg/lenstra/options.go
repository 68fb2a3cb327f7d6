package lenstra

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBound is the default largest multiplier (exclusive) tried per curve.
const DefaultBound = 100

// Option configures a Factorizer.
type Option func(*Factorizer)

// WithBound sets the exclusive upper limit of the multipliers j tried on each
// curve. Values below 3 are ignored.
func WithBound(bound int) Option {
	return func(f *Factorizer) {
		if bound > 2 {
			f.bound = bound
		}
	}
}

// WithMaxCurves caps the total number of random curves tried across all
// workers. Zero, the default, retries until a factor is found.
func WithMaxCurves(n int64) Option {
	return func(f *Factorizer) {
		if n >= 0 {
			f.maxCurves = n
		}
	}
}

// WithWorkers sets the number of concurrent trial workers.
func WithWorkers(n int) Option {
	return func(f *Factorizer) {
		if n > 0 {
			f.workers = n
		}
	}
}

// WithRand makes every worker draw from rnd. A *rand.Rand is not safe for
// concurrent use, so combine this only with a single worker.
func WithRand(rnd *rand.Rand) Option {
	return func(f *Factorizer) {
		f.newRand = func(int) *rand.Rand { return rnd }
	}
}

// WithSeed gives worker i its own generator seeded with seed + i.
func WithSeed(seed int64) Option {
	return func(f *Factorizer) {
		f.newRand = func(worker int) *rand.Rand {
			return rand.New(rand.NewSource(seed + int64(worker)))
		}
	}
}

// WithRandFactory sets the function creating each worker's generator.
func WithRandFactory(newRand func(worker int) *rand.Rand) Option {
	return func(f *Factorizer) {
		f.newRand = newRand
	}
}

// WithLogger sets the log entry used for trial progress.
func WithLogger(logger *log.Entry) Option {
	return func(f *Factorizer) {
		f.logger = logger
	}
}

// WithMetrics sets the counters updated by the factorizer.
func WithMetrics(m *Metrics) Option {
	return func(f *Factorizer) {
		f.metrics = m
	}
}

func defaultRandFactory() func(int) *rand.Rand {
	seed := time.Now().UnixNano()
	return func(worker int) *rand.Rand {
		return rand.New(rand.NewSource(seed + int64(worker)))
	}
}
