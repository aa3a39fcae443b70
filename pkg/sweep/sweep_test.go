package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrungPhamSet99/small-world-network/pkg/config"
	"github.com/TrungPhamSet99/small-world-network/pkg/metrics"
	"github.com/TrungPhamSet99/small-world-network/pkg/smallworld"
)

func testConfig() *config.ExperimentConfig {
	cfg := config.Default()
	cfg.Betas = []float64{0, 0.01, 0.1, 1.0}
	cfg.Seed = 42
	cfg.Trials = 1
	cfg.Workers = 4
	return cfg
}

func TestRunner_ScenarioShape(t *testing.T) {
	cfg := testConfig()
	runner := NewRunner(cfg, nil, nil)

	result, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, result.Series, 4)
	require.Len(t, result.Graphs, 4)

	for i, point := range result.Series {
		assert.Equal(t, cfg.Betas[i], point.Beta, "series must keep the configured beta order")
		require.NotNil(t, result.Graphs[i])
		assert.Equal(t, cfg.Nodes, result.Graphs[i].Nodes().Len())
		assert.False(t, math.IsNaN(point.Clustering))
		assert.GreaterOrEqual(t, point.ComponentCoverage, 0.0)
		assert.LessOrEqual(t, point.ComponentCoverage, 1.0)
	}

	assert.Equal(t, smallworld.Regular, result.Series[0].Category)
	assert.Equal(t, smallworld.SmallWorld, result.Series[1].Category)
	assert.Equal(t, smallworld.Random, result.Series[3].Category)
	assert.NotEmpty(t, result.RunID)

	// The unrewired lattice is exact: L = sum of ring distances, C = 1/2
	assert.InDelta(t, 0.5, result.Series[0].Clustering, 1e-9)
	assert.False(t, math.IsNaN(result.Series[0].AvgPathLength))
}

func TestRunner_DeterministicUnderSeed(t *testing.T) {
	first, err := NewRunner(testConfig(), nil, nil).Run()
	require.NoError(t, err)
	second, err := NewRunner(testConfig(), nil, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Series, second.Series,
		"same seed and parameters must reproduce the metric series exactly")
}

func TestRunner_DeterministicAcrossWorkerCounts(t *testing.T) {
	serial := testConfig()
	serial.Workers = 1
	pooled := testConfig()
	pooled.Workers = 8

	a, err := NewRunner(serial, nil, nil).Run()
	require.NoError(t, err)
	b, err := NewRunner(pooled, nil, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, a.Series, b.Series,
		"worker scheduling must not influence results")
}

func TestRunner_SmallWorldBehavior(t *testing.T) {
	// Averaged over enough trials the defining small-world shape emerges:
	// clustering decays toward the random value and paths get shorter.
	cfg := config.Default()
	cfg.Nodes = 100
	cfg.Degree = 4
	cfg.Betas = []float64{0, 0.5, 1.0}
	cfg.Trials = 10
	cfg.Seed = 42
	cfg.Workers = 4

	result, err := NewRunner(cfg, nil, nil).Run()
	require.NoError(t, err)

	series := result.Series
	assert.Greater(t, series[0].Clustering, series[1].Clustering)
	assert.Greater(t, series[1].Clustering, series[2].Clustering)

	assert.Greater(t, series[0].AvgPathLength, series[2].AvgPathLength,
		"full rewiring must shorten average paths relative to the lattice")
	assert.LessOrEqual(t, series[1].AvgPathLength, series[0].AvgPathLength+1e-9)
}

func TestRunner_ProgressReportsEveryTrial(t *testing.T) {
	cfg := testConfig()
	cfg.Trials = 3

	runner := NewRunner(cfg, nil, nil)
	seen := make(chan Progress, len(cfg.Betas)*cfg.Trials)
	runner.OnProgress(func(p Progress) { seen <- p })

	_, err := runner.Run()
	require.NoError(t, err)
	close(seen)

	count := 0
	var last Progress
	for p := range seen {
		count++
		assert.Equal(t, len(cfg.Betas)*cfg.Trials, p.Total)
		if p.Completed == p.Total {
			last = p
		}
	}
	assert.Equal(t, len(cfg.Betas)*cfg.Trials, count)
	assert.Equal(t, count, last.Total)
}

func TestRunner_RecordsMetrics(t *testing.T) {
	cfg := testConfig()
	registry := metrics.NewRegistry()

	_, err := NewRunner(cfg, nil, registry).Run()
	require.NoError(t, err)

	families, err := registry.Gatherer().Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				values[mf.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(len(cfg.Betas)*cfg.Trials), values["smallworld_sweep_graphs_generated_total"])
	assert.Equal(t, float64(len(cfg.Betas)*cfg.Trials), values["smallworld_sweep_trials_completed_total"])
}
