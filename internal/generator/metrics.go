package generator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts generated ids per entity.
type Metrics struct {
	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// NewMetrics registers the generator counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zuid_ids_generated_total",
			Help: "Number of ids generated, by entity.",
		}, []string{"entity"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zuid_generate_errors_total",
			Help: "Number of failed id generations, by entity.",
		}, []string{"entity"}),
	}
	reg.MustRegister(m.generated, m.failures)
	return m
}

// Instrument wraps g so that every id it mints is counted under entity.
func (m *Metrics) Instrument(entity string, g Generator) Generator {
	return &instrumented{
		Generator: g,
		generated: m.generated.WithLabelValues(entity),
		failures:  m.failures.WithLabelValues(entity),
	}
}

type instrumented struct {
	Generator
	generated prometheus.Counter
	failures  prometheus.Counter
}

func (i *instrumented) Generate() (string, error) {
	id, err := i.Generator.Generate()
	if err != nil {
		i.failures.Inc()
		return "", err
	}
	i.generated.Inc()
	return id, nil
}

func (i *instrumented) GenerateBatch(count int) ([]string, error) {
	ids, err := i.Generator.GenerateBatch(count)
	if err != nil {
		i.failures.Inc()
		return nil, err
	}
	i.generated.Add(float64(len(ids)))
	return ids, nil
}
