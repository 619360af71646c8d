package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
)

type RunMetrics struct {
	enabled     bool
	runsTotal   *prometheus.CounterVec
	runDuration prometheus.Histogram
	buildsTotal *prometheus.CounterVec
}

func NewRunMetrics(enablePrometheus bool) *RunMetrics {
	m := &RunMetrics{
		enabled: enablePrometheus,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stevedore_runs_total",
			Help: "Pipeline runs by final status",
		}, []string{"status", "trigger"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stevedore_run_duration_seconds",
			Help:    "Wall clock duration of pipeline runs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		buildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stevedore_builds_total",
			Help: "Image builds by target",
		}, []string{"target"}),
	}

	if enablePrometheus {
		prometheus.MustRegister(m.runsTotal, m.runDuration, m.buildsTotal)
	}

	return m
}

func (m *RunMetrics) ObserveRun(run *domain.PipelineRun) {
	if !m.enabled || run.FinishedAt == nil {
		return
	}
	m.runsTotal.WithLabelValues(string(run.Status), string(run.Trigger)).Inc()
	m.runDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
}

func (m *RunMetrics) ObserveBuild(target string) {
	if !m.enabled {
		return
	}
	m.buildsTotal.WithLabelValues(target).Inc()
}

func (m *RunMetrics) Shutdown() {
	if !m.enabled {
		return
	}
	prometheus.Unregister(m.runsTotal)
	prometheus.Unregister(m.runDuration)
	prometheus.Unregister(m.buildsTotal)
}
