package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the run counters of one experiment process
type Registry struct {
	// Sweep metrics
	GraphsGeneratedTotal prometheus.Counter
	TrialsCompletedTotal prometheus.Counter
	TrialFailuresTotal   prometheus.Counter
	GenerateDuration     prometheus.Histogram
	AnalyzeDuration      prometheus.Histogram

	// Artifact metrics
	RenderDuration        prometheus.Histogram
	ArtifactsWrittenTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all experiment metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		GraphsGeneratedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smallworld",
			Subsystem: "sweep",
			Name:      "graphs_generated_total",
			Help:      "Number of graphs generated across the sweep",
		}),
		TrialsCompletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smallworld",
			Subsystem: "sweep",
			Name:      "trials_completed_total",
			Help:      "Number of (beta, trial) tasks completed",
		}),
		TrialFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smallworld",
			Subsystem: "sweep",
			Name:      "trial_failures_total",
			Help:      "Number of (beta, trial) tasks that failed",
		}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smallworld",
			Subsystem: "sweep",
			Name:      "generate_duration_seconds",
			Help:      "Time spent generating one graph",
			Buckets:   prometheus.DefBuckets,
		}),
		AnalyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smallworld",
			Subsystem: "sweep",
			Name:      "analyze_duration_seconds",
			Help:      "Time spent computing metrics for one graph",
			Buckets:   prometheus.DefBuckets,
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smallworld",
			Subsystem: "artifacts",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one image artifact",
			Buckets:   prometheus.DefBuckets,
		}),
		ArtifactsWrittenTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smallworld",
			Subsystem: "artifacts",
			Name:      "written_total",
			Help:      "Number of artifact files written to disk",
		}),
		registry: prometheus.NewRegistry(),
	}

	r.registry.MustRegister(
		r.GraphsGeneratedTotal,
		r.TrialsCompletedTotal,
		r.TrialFailuresTotal,
		r.GenerateDuration,
		r.AnalyzeDuration,
		r.RenderDuration,
		r.ArtifactsWrittenTotal,
	)
	return r
}

// Gatherer exposes the underlying registry for snapshotting and tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
