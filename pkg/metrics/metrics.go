package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// All Record methods are nil-safe so callers can run without a registry.

// RecordGenerate records one successful graph generation
func (r *Registry) RecordGenerate(duration time.Duration) {
	if r == nil {
		return
	}
	r.GraphsGeneratedTotal.Inc()
	r.GenerateDuration.Observe(duration.Seconds())
}

// RecordAnalyze records the metric computation of one graph
func (r *Registry) RecordAnalyze(duration time.Duration) {
	if r == nil {
		return
	}
	r.AnalyzeDuration.Observe(duration.Seconds())
}

// RecordTrial records one completed (beta, trial) task
func (r *Registry) RecordTrial() {
	if r == nil {
		return
	}
	r.TrialsCompletedTotal.Inc()
}

// RecordTrialFailure records one failed (beta, trial) task
func (r *Registry) RecordTrialFailure() {
	if r == nil {
		return
	}
	r.TrialFailuresTotal.Inc()
}

// RecordRender records one rendered image artifact
func (r *Registry) RecordRender(duration time.Duration) {
	if r == nil {
		return
	}
	r.RenderDuration.Observe(duration.Seconds())
	r.ArtifactsWrittenTotal.Inc()
}

// RecordArtifact records one non-image artifact written to disk
func (r *Registry) RecordArtifact() {
	if r == nil {
		return
	}
	r.ArtifactsWrittenTotal.Inc()
}

// WriteSnapshot writes the current counter values to path in Prometheus
// text exposition format. The process is one-shot, so a file snapshot
// stands in for a scrape endpoint.
func (r *Registry) WriteSnapshot(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
