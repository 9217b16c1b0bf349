package log

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var logStatements = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "zuid_log_statements_total",
		Help: "Number of log statements, by level.",
	},
	[]string{"level"},
)

// LevelCounter is a zerolog hook counting log statements per level.
type LevelCounter struct{}

// Run implements zerolog.Hook.
func (LevelCounter) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		logStatements.WithLabelValues(level.String()).Inc()
	}
}
