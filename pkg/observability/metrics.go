package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tessera/pkg/record"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeUnknownField = "unknown_field"
	OutcomeError        = "error"
)

// Metrics counts construction attempts and validation failures.
type Metrics struct {
	constructions *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		constructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tessera_constructions_total",
				Help: "Total number of record construction attempts",
			},
			[]string{"type", "outcome"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tessera_validation_failures_total",
				Help: "Total number of rejected field values",
			},
			[]string{"type", "field", "stage"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tessera_construct_duration_seconds",
				Help:    "Duration of record construction",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
			[]string{"type"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.constructions, m.failures, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Observe records one construction event.
func (m *Metrics) Observe(e record.ConstructEvent) {
	m.constructions.WithLabelValues(e.Type, outcome(e.Err)).Inc()
	m.duration.WithLabelValues(e.Type).Observe(e.Duration.Seconds())
	if e.Field != "" {
		m.failures.WithLabelValues(e.Type, e.Field, string(e.Stage)).Inc()
	}
}

// Hooks returns constructor hooks that feed m.
func (m *Metrics) Hooks() record.Hooks {
	return record.Hooks{OnConstruct: m.Observe}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, record.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, record.ErrUnknownField):
		return OutcomeUnknownField
	default:
		return OutcomeError
	}
}
