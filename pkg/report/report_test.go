package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrungPhamSet99/small-world-network/pkg/config"
	"github.com/TrungPhamSet99/small-world-network/pkg/smallworld"
	"github.com/TrungPhamSet99/small-world-network/pkg/sweep"
)

func sampleSeries() sweep.Series {
	return sweep.Series{
		{Beta: 0, AvgPathLength: 3.2368, Clustering: 0.5, Category: smallworld.Regular},
		{Beta: 0.2, AvgPathLength: 2.5, Clustering: 0.3012, Category: smallworld.SmallWorld},
		{Beta: 1, AvgPathLength: 2.0789, Clustering: 0.0421, Category: smallworld.Random},
	}
}

func TestReporter_PlainTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()

	New(&buf, false).Print(cfg, sampleSeries())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "Number of nodes: 20", lines[0])
	assert.Equal(t, "K: 4", lines[1])
	assert.Contains(t, lines[2], "beta")
	assert.Contains(t, lines[2], "avg shortest path")
	assert.Contains(t, lines[2], "clustering coefficient")
	assert.Contains(t, lines[2], "network category")

	assert.Contains(t, lines[3], "3.24")
	assert.Contains(t, lines[3], "0.50")
	assert.Contains(t, lines[3], "Regular network (Ring lattice)")
	assert.Contains(t, lines[4], "0.2")
	assert.Contains(t, lines[4], "Small-world network")
	assert.Contains(t, lines[5], "Random network")
}

func TestReporter_NaNPathPrintsNA(t *testing.T) {
	var buf bytes.Buffer
	series := sweep.Series{
		{Beta: 1, AvgPathLength: math.NaN(), Clustering: 0.1, Category: smallworld.Random},
	}

	New(&buf, false).Print(config.Default(), series)

	assert.Contains(t, buf.String(), "n/a")
}

func TestReporter_StyledTable(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, true).Print(config.Default(), sampleSeries())

	out := buf.String()
	// Bordered rendering still carries the header and every row
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "network category")
	assert.Contains(t, out, "Regular network (Ring lattice)")
	assert.Contains(t, out, "Random network")
	assert.Contains(t, out, "╭")
}

func TestFormatBeta(t *testing.T) {
	assert.Equal(t, "0", formatBeta(0))
	assert.Equal(t, "0.2", formatBeta(0.2))
	assert.Equal(t, "1", formatBeta(1))
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "3.24", formatMetric(3.2368))
	assert.Equal(t, "0.00", formatMetric(0))
	assert.Equal(t, "n/a", formatMetric(math.NaN()))
}
