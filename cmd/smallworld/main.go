package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/TrungPhamSet99/small-world-network/pkg/config"
	"github.com/TrungPhamSet99/small-world-network/pkg/logging"
	"github.com/TrungPhamSet99/small-world-network/pkg/metrics"
	"github.com/TrungPhamSet99/small-world-network/pkg/report"
	"github.com/TrungPhamSet99/small-world-network/pkg/sweep"
	"github.com/TrungPhamSet99/small-world-network/pkg/validation"
	"github.com/TrungPhamSet99/small-world-network/pkg/visualization"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config file (optional)")
	nodes := flag.Int("nodes", 0, "Number of nodes n in each graph")
	degree := flag.Int("degree", 0, "Ring-lattice degree k (even, < nodes)")
	betas := flag.String("betas", "", "Comma-separated rewiring probabilities, each in [0,1]")
	trials := flag.Int("trials", 0, "Independent graphs per beta")
	seed := flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	workers := flag.Int("workers", 0, "Sweep worker pool size")
	outDir := flag.String("out", "", "Output directory for image artifacts")
	timestamp := flag.Bool("timestamp", false, "Write artifacts into a per-run subdirectory")
	layout := flag.String("layout", "", "Graph layout: circular or force")
	writeMetrics := flag.Bool("metrics", false, "Write a metrics.prom run-counter snapshot")
	styled := flag.Bool("styled", false, "Render the results table with borders and color")
	tui := flag.Bool("tui", false, "Show a live progress bar instead of log lines")
	flag.Parse()

	cfg, err := buildConfig(*configPath, func(cfg *config.ExperimentConfig) error {
		if *nodes > 0 {
			cfg.Nodes = *nodes
		}
		if *degree > 0 {
			cfg.Degree = *degree
		}
		if *betas != "" {
			parsed, err := parseBetas(*betas)
			if err != nil {
				return err
			}
			cfg.Betas = parsed
		}
		if *trials > 0 {
			cfg.Trials = *trials
		}
		if *seed != 0 {
			cfg.Seed = *seed
		}
		if *workers > 0 {
			cfg.Workers = *workers
		}
		if *outDir != "" {
			cfg.OutputDir = *outDir
		}
		if *timestamp {
			cfg.TimestampedRuns = true
		}
		if *layout != "" {
			cfg.Layout = *layout
		}
		if *writeMetrics {
			cfg.WriteMetrics = true
		}
		if *styled {
			cfg.StyledTable = true
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallworld: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *tui); err != nil {
		fmt.Fprintf(os.Stderr, "smallworld: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig layers: defaults, then the optional YAML file, then flag
// overrides, then validates the result.
func buildConfig(path string, override func(*config.ExperimentConfig) error) (*config.ExperimentConfig, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := override(cfg); err != nil {
		return nil, err
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseBetas(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	betas := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse betas %q: %w", s, err)
		}
		betas = append(betas, v)
	}
	return betas, nil
}

func run(cfg *config.ExperimentConfig, tui bool) error {
	logger := logging.NewDefaultLogger()
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		logger.SetLevel(logging.ParseLevel(levelStr))
	}

	var registry *metrics.Registry
	if cfg.WriteMetrics {
		registry = metrics.NewRegistry()
	}

	runner := sweep.NewRunner(cfg, logger, registry)

	stage := logging.StartStage(logger, "sweep complete", logging.Component("main"))
	var (
		result *sweep.Result
		err    error
	)
	if tui {
		result, err = runSweepTUI(runner)
	} else {
		runner.OnProgress(func(p sweep.Progress) {
			logger.Debug("trial complete",
				logging.Beta(p.Beta),
				logging.Trial(p.Trial),
				logging.Int("completed", p.Completed),
				logging.Int("total", p.Total))
		})
		result, err = runner.Run()
	}
	if err != nil {
		stage.EndError(err)
		return err
	}
	stage.End()

	if err := writeArtifacts(cfg, logger, registry, result); err != nil {
		return err
	}

	report.New(os.Stdout, cfg.StyledTable).Print(cfg, result.Series)
	logger.Info("experiment complete", logging.RunID(result.RunID))
	return nil
}

// writeArtifacts renders one graph image per sweep point plus the metric
// curve summary, and optionally the run-counter snapshot.
func writeArtifacts(cfg *config.ExperimentConfig, logger logging.Logger, registry *metrics.Registry, result *sweep.Result) error {
	runDir, err := visualization.ResolveRunDir(cfg.OutputDir, cfg.TimestampedRuns, result.RunID, time.Now())
	if err != nil {
		return err
	}

	layoutConfig := &visualization.LayoutConfig{Width: 1000, Height: 1000}
	layout, err := visualization.NewLayout(cfg.Layout, layoutConfig, rand.NewPCG(cfg.Seed, 0x1a70))
	if err != nil {
		return err
	}
	renderer := visualization.NewRenderer(layout, cfg.MaxRenderNodes)

	for i, point := range result.Series {
		title := fmt.Sprintf("beta=%s\navg_path_length=%s\nclustering_coefficient=%s",
			strconv.FormatFloat(point.Beta, 'g', -1, 64),
			strconv.FormatFloat(round2(point.AvgPathLength), 'g', -1, 64),
			strconv.FormatFloat(round2(point.Clustering), 'g', -1, 64))

		path := filepath.Join(runDir, visualization.GraphImageName(point.Beta))
		start := time.Now()
		if err := renderer.RenderGraph(result.Graphs[i], title, path); err != nil {
			if errors.Is(err, visualization.ErrGraphTooLarge) {
				logger.Warn("skipping graph image", logging.Beta(point.Beta), logging.Error(err))
				continue
			}
			return err
		}
		registry.RecordRender(time.Since(start))
		logger.Info("wrote graph image", logging.Beta(point.Beta), logging.Artifact(path))
	}

	curves := visualization.MetricCurves{
		Betas:                 make([]float64, len(result.Series)),
		AvgPathLength:         make([]float64, len(result.Series)),
		Clustering:            make([]float64, len(result.Series)),
		TheoreticalClustering: make([]float64, len(result.Series)),
	}
	for i, point := range result.Series {
		curves.Betas[i] = point.Beta
		curves.AvgPathLength[i] = point.AvgPathLength
		curves.Clustering[i] = point.Clustering
		curves.TheoreticalClustering[i] = point.TheoreticalClustering
	}

	curvesPath := filepath.Join(runDir, visualization.CurvesImageName)
	start := time.Now()
	if err := renderer.RenderCurves(curves, curvesPath); err != nil {
		return err
	}
	registry.RecordRender(time.Since(start))
	logger.Info("wrote metric curves", logging.Artifact(curvesPath))

	if cfg.WriteMetrics {
		snapshotPath := filepath.Join(runDir, visualization.MetricsSnapshotName)
		if err := registry.WriteSnapshot(snapshotPath); err != nil {
			return fmt.Errorf("write metrics snapshot: %w", err)
		}
		registry.RecordArtifact()
		logger.Info("wrote metrics snapshot", logging.Artifact(snapshotPath))
	}

	return nil
}

func round2(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
