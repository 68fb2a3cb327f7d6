package lenstra

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the factorizer counters.
type Metrics struct {
	CurvesTried   prometheus.Counter
	NonInvertible prometheus.Counter
	FactorsFound  prometheus.Counter
}

// NewMetrics creates the factorizer counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		CurvesTried: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecarith",
			Subsystem: "lenstra",
			Name:      "curves_tried_total",
			Help:      "Random curves tried by Lenstra factorization",
		}),
		NonInvertible: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecarith",
			Subsystem: "lenstra",
			Name:      "non_invertible_total",
			Help:      "Scalar multiplications that hit a non-invertible element",
		}),
		FactorsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecarith",
			Subsystem: "lenstra",
			Name:      "factors_found_total",
			Help:      "Non-trivial factors found",
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.CurvesTried, m.NonInvertible, m.FactorsFound} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
