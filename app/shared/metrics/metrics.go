// Package metrics defines the tournament service's metrics surface. The
// Prometheus implementation backs the /metrics endpoint; the no-op
// implementation keeps tests quiet.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TournamentMetrics records the service's operational signals.
type TournamentMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
	RecordLeaderboardRecompute(ctx context.Context, groups, players int)
	RecordScoreWrite(ctx context.Context, modifiedByType string)
	RecordExport(ctx context.Context)
}

type prometheusMetrics struct {
	attempts   *prometheus.CounterVec
	successes  *prometheus.CounterVec
	failures   *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	recomputes prometheus.Counter
	players    prometheus.Gauge
	writes     *prometheus.CounterVec
	exports    prometheus.Counter
}

// NewPrometheusMetrics registers the tournament collectors on the given
// registerer and returns the recording interface.
func NewPrometheusMetrics(reg prometheus.Registerer) TournamentMetrics {
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parklive_operation_attempts_total",
			Help: "Service operations started, by operation name.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parklive_operation_successes_total",
			Help: "Service operations completed successfully.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parklive_operation_failures_total",
			Help: "Service operations that failed or panicked.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parklive_operation_duration_seconds",
			Help:    "Service operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parklive_leaderboard_recomputes_total",
			Help: "Full leaderboard recomputations.",
		}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parklive_leaderboard_players",
			Help: "Players in the most recent leaderboard computation.",
		}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parklive_score_writes_total",
			Help: "Score cell writes, by writer type.",
		}, []string{"modified_by_type"}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parklive_exports_total",
			Help: "Spreadsheet exports generated.",
		}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.recomputes, m.players, m.writes, m.exports)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *prometheusMetrics) RecordLeaderboardRecompute(_ context.Context, groups, players int) {
	m.recomputes.Inc()
	m.players.Set(float64(players))
}

func (m *prometheusMetrics) RecordScoreWrite(_ context.Context, modifiedByType string) {
	m.writes.WithLabelValues(modifiedByType).Inc()
}

func (m *prometheusMetrics) RecordExport(_ context.Context) {
	m.exports.Inc()
}

// NoOpMetrics discards every signal; used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordLeaderboardRecompute(context.Context, int, int)          {}
func (NoOpMetrics) RecordScoreWrite(context.Context, string)                      {}
func (NoOpMetrics) RecordExport(context.Context)                                  {}
