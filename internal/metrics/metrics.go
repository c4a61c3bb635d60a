package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sink receives domain counters. It is passed explicitly to the components
// that emit, so there is no process-wide mutable registry to reach into.
type Sink interface {
	LoanCreated()
}

// Noop satisfies Sink for tests and for deployments without metrics.
type Noop struct{}

func (Noop) LoanCreated() {}

type Prometheus struct {
	loansCreated prometheus.Counter
}

// NewPrometheus registers the counters on reg and returns a sink bound to
// them. Lifecycle follows the registry, which lives for the process.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		loansCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loans_created_total",
			Help: "Total number of loans created in the system",
		}),
	}
	reg.MustRegister(p.loansCreated)
	return p
}

func (p *Prometheus) LoanCreated() { p.loansCreated.Inc() }
