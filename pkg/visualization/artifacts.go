package visualization

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Artifact filenames inside the run directory.
const (
	// CurvesImageName is the metric-curves summary image
	CurvesImageName = "metrics.png"
	// MetricsSnapshotName is the run-counter snapshot in Prometheus text format
	MetricsSnapshotName = "metrics.prom"
)

// GraphImageName returns the deterministic filename for the graph image of
// one sweep point, e.g. graph_beta_0.01.png.
func GraphImageName(beta float64) string {
	return fmt.Sprintf("graph_beta_%s.png", strconv.FormatFloat(beta, 'g', -1, 64))
}

// ResolveRunDir returns the directory artifacts are written into, creating
// it if needed.
//
// By default that is base itself and a repeated run overwrites its previous
// artifacts. With timestamped set, each run gets its own
// run_<stamp>_<id> subdirectory so no run clobbers another.
func ResolveRunDir(base string, timestamped bool, runID string, now time.Time) (string, error) {
	dir := base
	if timestamped {
		short := runID
		if len(short) > 8 {
			short = short[:8]
		}
		dir = filepath.Join(base, fmt.Sprintf("run_%s_%s", now.UTC().Format("20060102T150405Z"), short))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return dir, nil
}
