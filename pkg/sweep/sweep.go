package sweep

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/TrungPhamSet99/small-world-network/pkg/algorithms"
	"github.com/TrungPhamSet99/small-world-network/pkg/config"
	"github.com/TrungPhamSet99/small-world-network/pkg/logging"
	"github.com/TrungPhamSet99/small-world-network/pkg/metrics"
	"github.com/TrungPhamSet99/small-world-network/pkg/parallel"
	"github.com/TrungPhamSet99/small-world-network/pkg/smallworld"
)

// Point is one entry of the merged metric series: the statistics of a
// single swept rewiring probability, averaged over its trials.
type Point struct {
	Beta                  float64
	AvgPathLength         float64
	Clustering            float64
	TheoreticalClustering float64
	// ComponentCoverage is the trial-average fraction of nodes inside the
	// largest connected component; 1 means every trial was connected
	ComponentCoverage float64
	Category          smallworld.Category
}

// Series is the merged metric series, ordered as the betas were configured.
type Series []Point

// Progress reports one completed (beta, trial) unit of work.
type Progress struct {
	Completed int
	Total     int
	Beta      float64
	Trial     int
}

// Result carries everything downstream stages need: the metric series and
// one representative graph per beta for rendering.
type Result struct {
	RunID  string
	Series Series
	// Graphs holds the first-trial graph for each beta, index-aligned
	// with Series
	Graphs []*simple.UndirectedGraph
}

// Runner executes the parameter sweep on a worker pool. Each (beta, trial)
// pair is an independent task with its own random stream derived from the
// run seed, so results do not depend on worker scheduling.
type Runner struct {
	cfg        *config.ExperimentConfig
	logger     logging.Logger
	registry   *metrics.Registry
	onProgress func(Progress)
}

// NewRunner creates a sweep runner. logger and registry may be nil.
func NewRunner(cfg *config.ExperimentConfig, logger logging.Logger, registry *metrics.Registry) *Runner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Runner{cfg: cfg, logger: logger, registry: registry}
}

// OnProgress registers a callback invoked after every completed trial.
// The callback may be invoked from worker goroutines.
func (r *Runner) OnProgress(fn func(Progress)) {
	r.onProgress = fn
}

// trialResult is the raw outcome of one (beta, trial) task.
type trialResult struct {
	pathLength algorithms.PathLengthResult
	clustering float64
	err        error
}

// Run generates and analyzes every (beta, trial) graph and merges the
// outcomes into an ordered metric series.
func (r *Runner) Run() (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.RunID(runID), logging.Component("sweep"))

	total := len(r.cfg.Betas) * r.cfg.Trials
	logger.Info("starting parameter sweep",
		logging.Nodes(r.cfg.Nodes),
		logging.Degree(r.cfg.Degree),
		logging.Int("betas", len(r.cfg.Betas)),
		logging.Int("trials", r.cfg.Trials),
		logging.Int("tasks", total),
		logging.Seed(r.cfg.Seed))

	pool, err := parallel.NewWorkerPool(r.cfg.Workers, logger)
	if err != nil {
		return nil, err
	}

	results := make([][]trialResult, len(r.cfg.Betas))
	graphs := make([]*simple.UndirectedGraph, len(r.cfg.Betas))
	for i := range results {
		results[i] = make([]trialResult, r.cfg.Trials)
	}

	var (
		mu        sync.Mutex
		completed int
	)

	for betaIdx := range r.cfg.Betas {
		for trial := 0; trial < r.cfg.Trials; trial++ {
			betaIdx, trial := betaIdx, trial
			task := func() {
				res, g := r.runTrial(betaIdx, trial)
				results[betaIdx][trial] = res
				if trial == 0 {
					graphs[betaIdx] = g
				}

				mu.Lock()
				completed++
				done := completed
				mu.Unlock()

				if r.onProgress != nil {
					r.onProgress(Progress{
						Completed: done,
						Total:     total,
						Beta:      r.cfg.Betas[betaIdx],
						Trial:     trial,
					})
				}
			}
			// The pool only closes in Wait below, so a rejected submit
			// means the runner's own sequencing is broken.
			if !pool.Submit(task) {
				pool.Wait()
				return nil, errors.New("sweep: worker pool rejected task")
			}
		}
	}
	pool.Wait()

	series := make(Series, 0, len(r.cfg.Betas))
	for betaIdx, beta := range r.cfg.Betas {
		point, err := r.mergeTrials(beta, results[betaIdx])
		if err != nil {
			return nil, err
		}
		if point.ComponentCoverage < 1 {
			logger.Warn("disconnected graphs in sweep point; path length restricted to largest component",
				logging.Beta(beta),
				logging.Float64("coverage", point.ComponentCoverage))
		}
		logger.Info("sweep point complete",
			logging.Beta(beta),
			logging.Float64("avg_path_length", point.AvgPathLength),
			logging.Float64("clustering_coefficient", point.Clustering))
		series = append(series, point)
	}

	return &Result{RunID: runID, Series: series, Graphs: graphs}, nil
}

// runTrial generates and analyzes one graph. The random stream is derived
// from the run seed and the task coordinates alone.
func (r *Runner) runTrial(betaIdx, trial int) (trialResult, *simple.UndirectedGraph) {
	src := rand.NewPCG(r.cfg.Seed, uint64(betaIdx)<<32|uint64(trial))

	params := smallworld.Params{
		Nodes:  r.cfg.Nodes,
		Degree: r.cfg.Degree,
		Beta:   r.cfg.Betas[betaIdx],
	}

	start := time.Now()
	g, err := smallworld.Generate(params, src)
	if err != nil {
		r.registry.RecordTrialFailure()
		return trialResult{err: err}, nil
	}
	r.registry.RecordGenerate(time.Since(start))

	start = time.Now()
	pathLength := algorithms.AveragePathLength(g)
	clustering := algorithms.ClusteringCoefficient(g)
	r.registry.RecordAnalyze(time.Since(start))
	r.registry.RecordTrial()

	return trialResult{pathLength: pathLength, clustering: clustering.Average}, g
}

// mergeTrials averages the trials of one beta into a series point.
// Trials whose largest component was too small to measure contribute no
// path length; if every trial was unmeasurable the mean is NaN.
func (r *Runner) mergeTrials(beta float64, trials []trialResult) (Point, error) {
	point := Point{
		Beta:                  beta,
		TheoreticalClustering: algorithms.TheoreticalClustering(r.cfg.Degree, beta),
		Category:              smallworld.Classify(beta),
	}

	var (
		pathTotal     float64
		pathCount     int
		clusterTotal  float64
		coverageTotal float64
	)
	for _, tr := range trials {
		if tr.err != nil {
			return Point{}, tr.err
		}
		if !math.IsNaN(tr.pathLength.Mean) {
			pathTotal += tr.pathLength.Mean
			pathCount++
		}
		clusterTotal += tr.clustering
		coverageTotal += tr.pathLength.Coverage
	}

	if len(trials) == 0 {
		return Point{}, errors.New("sweep: no trials for beta")
	}
	if pathCount > 0 {
		point.AvgPathLength = pathTotal / float64(pathCount)
	} else {
		point.AvgPathLength = math.NaN()
	}
	point.Clustering = clusterTotal / float64(len(trials))
	point.ComponentCoverage = coverageTotal / float64(len(trials))
	return point, nil
}
