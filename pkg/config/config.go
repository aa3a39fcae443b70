package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/TrungPhamSet99/small-world-network/pkg/parallel"
	"github.com/TrungPhamSet99/small-world-network/pkg/validation"
)

// Layout algorithm names accepted by the experiment config.
const (
	LayoutCircular = "circular"
	LayoutForce    = "force"
)

// DefaultMaxRenderNodes caps how large a graph may be before image
// rendering is refused.
const DefaultMaxRenderNodes = 5000

// ExperimentConfig holds every parameter of one experiment run. The record
// is immutable once validated; sweep workers only ever read it.
type ExperimentConfig struct {
	// Nodes is the number of nodes n in each generated graph
	Nodes int `yaml:"nodes" validate:"required,min=3"`

	// Degree is the ring-lattice degree k: each node starts joined to its
	// k/2 nearest neighbors on each side. Must be even and less than Nodes.
	Degree int `yaml:"degree" validate:"required,min=2"`

	// Betas is the swept list of rewiring probabilities, each in [0, 1]
	Betas []float64 `yaml:"betas" validate:"required,min=1,dive,gte=0,lte=1"`

	// Trials is how many independent graphs are generated per beta;
	// reported metrics are trial averages
	Trials int `yaml:"trials" validate:"min=1"`

	// Seed fixes the random stream; runs with equal seed and parameters
	// produce identical metric series and artifacts
	Seed uint64 `yaml:"seed"`

	// Workers sizes the sweep worker pool
	Workers int `yaml:"workers" validate:"min=1"`

	// OutputDir is where image and metrics artifacts are written
	OutputDir string `yaml:"output_dir"`

	// TimestampedRuns places artifacts in a per-run subdirectory instead
	// of overwriting previous artifacts in OutputDir
	TimestampedRuns bool `yaml:"timestamped_runs"`

	// Layout selects the node layout for graph images: circular or force
	Layout string `yaml:"layout"`

	// MaxRenderNodes refuses graph image rendering above this node count
	MaxRenderNodes int `yaml:"max_render_nodes"`

	// WriteMetrics writes a metrics.prom snapshot of run counters
	WriteMetrics bool `yaml:"write_metrics"`

	// StyledTable renders the results table with borders and color
	StyledTable bool `yaml:"styled_table"`
}

// Default returns the experiment configuration of the reference run:
// a 20-node, degree-4 ring swept over four rewiring probabilities.
func Default() *ExperimentConfig {
	return &ExperimentConfig{
		Nodes:          20,
		Degree:         4,
		Betas:          []float64{0, 0.2, 0.4, 1},
		Trials:         1,
		Seed:           42,
		Workers:        runtime.NumCPU(),
		OutputDir:      ".",
		Layout:         LayoutCircular,
		MaxRenderNodes: DefaultMaxRenderNodes,
	}
}

// Load reads a YAML experiment config from path, layered over defaults.
func Load(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Fields zeroed out in the file fall back to their defaults
	cfg.Workers = validation.DefaultOrInt(cfg.Workers, runtime.NumCPU())
	cfg.MaxRenderNodes = validation.DefaultOrInt(cfg.MaxRenderNodes, DefaultMaxRenderNodes)
	cfg.Layout = validation.DefaultOrString(cfg.Layout, LayoutCircular)
	cfg.OutputDir = validation.DefaultOrString(cfg.OutputDir, ".")
	return cfg, nil
}

// Validate checks the full parameter contract before any graph work begins.
// All violations are collected so a bad config is reported in one pass.
func (c *ExperimentConfig) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	return validation.NewConfigValidator("ExperimentConfig").
		MinInt("Nodes", c.Nodes, 3).
		Positive("Degree", c.Degree).
		EvenInt("Degree", c.Degree).
		LessThanInt("Degree", c.Degree, c.Nodes).
		NotEmptyFloats("Betas", c.Betas).
		UnitIntervalEach("Betas", c.Betas).
		Positive("Trials", c.Trials).
		Positive("Workers", c.Workers).
		MaxInt("Workers", c.Workers, parallel.MaxWorkers).
		Positive("MaxRenderNodes", c.MaxRenderNodes).
		Required("OutputDir", c.OutputDir).
		Custom("Layout", func() error {
			switch c.Layout {
			case LayoutCircular, LayoutForce:
				return nil
			}
			return fmt.Errorf("unknown layout %q (expected %s or %s)", c.Layout, LayoutCircular, LayoutForce)
		}).
		Validate()
}
