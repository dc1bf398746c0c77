// SPDX-License-Identifier: MIT

package tcnn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/csatsp/matrix"
	"github.com/katalvlaran/csatsp/tsp"
)

// Trial defaults.
const (
	DefaultRuns    = 1
	DefaultMaxIter = 1000
	DefaultWorkers = 1
)

// TrialConfig controls RunTrials.
type TrialConfig struct {
	// Runs is the number of independent networks, > 0.
	Runs int
	// MaxIter caps the sweeps of every run, ≥ 0.
	MaxIter int
	// Seed is the parent seed; run r uses tsp.DeriveRNG(Seed, r).
	Seed int64
	// Workers bounds how many runs execute at once; ≤ 0 means DefaultWorkers.
	Workers int
	// Metrics are recorded per sweep for every run.
	Metrics []Metric
	// KnownOptimum, when > 0, enables relative errors |opt − length| / opt.
	KnownOptimum float64
	// Logger receives one record per run and one summary; nil discards.
	Logger *slog.Logger
	// Options are applied to every network before the per-run RNG and logger.
	Options []Option
}

// DefaultTrialConfig returns a single run capped at DefaultMaxIter sweeps.
func DefaultTrialConfig() TrialConfig {
	return TrialConfig{
		Runs:    DefaultRuns,
		MaxIter: DefaultMaxIter,
		Workers: DefaultWorkers,
	}
}

// TrialResult is the outcome of one run.
type TrialResult struct {
	// ID correlates log records of this run; it is random, not derived from Seed.
	ID uuid.UUID
	// Index is the run number in [0, Runs).
	Index int
	// Converged reports ValidTour after the run.
	Converged bool
	// Steps is the number of sweeps performed.
	Steps int
	// Tour, ClosedTour and Length are set only when Converged. Tour is the open
	// permutation as decoded; ClosedTour is the same cycle rotated to start and
	// end at city 0.
	Tour       []int
	ClosedTour []int
	Length     float64
	// RelError is |KnownOptimum − Length| / KnownOptimum, or NaN when unavailable.
	RelError float64
	// Series holds the recorded metrics.
	Series Series
}

// TrialSummary aggregates the converged runs.
type TrialSummary struct {
	Runs            int
	Converged       int
	ConvergenceRate float64
	// Length statistics over converged runs; zero when none converged.
	MeanLength float64
	StdLength  float64
	MinLength  float64
	MaxLength  float64
	// MeanRelError is NaN unless KnownOptimum > 0 and some run converged.
	MeanRelError float64
	// BestIndex is the run with the shortest tour (first on ties), −1 when none converged.
	BestIndex int
}

// TrialReport is everything RunTrials produces.
type TrialReport struct {
	Trials  []TrialResult
	Summary TrialSummary
}

// Best returns the shortest converged trial.
func (r TrialReport) Best() (TrialResult, bool) {
	if r.Summary.BestIndex < 0 || r.Summary.BestIndex >= len(r.Trials) {
		return TrialResult{}, false
	}

	return r.Trials[r.Summary.BestIndex], true
}

func (cfg TrialConfig) validate() error {
	switch {
	case cfg.Runs <= 0:
		return fmt.Errorf("Runs=%d: %w", cfg.Runs, ErrInvalidTrialConfig)
	case cfg.MaxIter < 0:
		return fmt.Errorf("MaxIter=%d: %w", cfg.MaxIter, ErrInvalidTrialConfig)
	case math.IsNaN(cfg.KnownOptimum) || math.IsInf(cfg.KnownOptimum, 0) || cfg.KnownOptimum < 0:
		return fmt.Errorf("KnownOptimum=%g: %w", cfg.KnownOptimum, ErrInvalidTrialConfig)
	}
	for _, m := range cfg.Metrics {
		if !m.Valid() {
			return fmt.Errorf("%v: %w", m, ErrUnknownMetric)
		}
	}

	return nil
}

// RunTrials runs cfg.Runs independent networks on the same instance and
// summarizes them. Each run owns its Network and its RNG stream
// tsp.DeriveRNG(cfg.Seed, run), so results do not depend on Workers or scheduling.
//
// Behavior highlights:
//   - Inputs are validated once, before any goroutine starts.
//   - Up to cfg.Workers runs execute concurrently; each run is itself sequential.
//   - Once ctx is done no further run starts; if that left runs undone, RunTrials
//     returns ctx.Err(). A cancellation after every run was started is ignored.
//
// Errors: ErrInvalidTrialConfig, ErrUnknownMetric, ErrInvalidConstants, distance
// validation errors, ctx.Err().
func RunTrials(ctx context.Context, dist matrix.Matrix, c Constants, cfg TrialConfig) (TrialReport, error) {
	if err := cfg.validate(); err != nil {
		return TrialReport{}, fmt.Errorf("tcnn.RunTrials: %w", err)
	}
	if err := c.Validate(); err != nil {
		return TrialReport{}, fmt.Errorf("tcnn.RunTrials: %w", err)
	}
	if _, err := tsp.ValidateDistances(dist); err != nil {
		return TrialReport{}, fmt.Errorf("tcnn.RunTrials: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	workers = min(workers, cfg.Runs)

	var (
		results = make([]TrialResult, cfg.Runs)
		errs    = make([]error, cfg.Runs)
		jobs    = make(chan int)
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = runTrial(dist, c, cfg, idx, logger)
			}
		}()
	}

	canceled := false
feed:
	for idx := 0; idx < cfg.Runs; idx++ {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		select {
		case <-ctx.Done():
			canceled = true
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	// A cancellation after the last run was handed out loses nothing.
	if canceled {
		return TrialReport{}, ctx.Err()
	}
	if err := errors.Join(errs...); err != nil {
		return TrialReport{}, fmt.Errorf("tcnn.RunTrials: %w", err)
	}

	report := TrialReport{Trials: results, Summary: summarize(results, cfg.KnownOptimum)}
	logger.Info("tcnn trials finished",
		slog.Int("runs", report.Summary.Runs),
		slog.Int("converged", report.Summary.Converged),
		slog.Float64("convergence_rate", report.Summary.ConvergenceRate),
		slog.Float64("mean_length", report.Summary.MeanLength),
		slog.Float64("min_length", report.Summary.MinLength),
	)

	return report, nil
}

// runTrial builds and runs the idx-th network.
func runTrial(dist matrix.Matrix, c Constants, cfg TrialConfig, idx int, logger *slog.Logger) (TrialResult, error) {
	res := TrialResult{ID: uuid.New(), Index: idx, RelError: math.NaN()}
	runLogger := logger.With(slog.String("trial_id", res.ID.String()), slog.Int("run", idx))

	opts := make([]Option, 0, len(cfg.Options)+2)
	opts = append(opts, cfg.Options...)
	opts = append(opts, WithRand(tsp.DeriveRNG(cfg.Seed, uint64(idx))), WithLogger(runLogger))

	nw, err := New(dist, c, opts...)
	if err != nil {
		return res, err
	}
	if res.Series, err = nw.Run(cfg.MaxIter, cfg.Metrics...); err != nil {
		return res, err
	}
	res.Steps = nw.Iteration()
	res.Converged = nw.ValidTour()

	if !res.Converged {
		runLogger.Info("run did not converge", slog.Int("steps", res.Steps),
			slog.Float64("percent_valid", nw.PercentValid()))
		return res, nil
	}
	if res.Tour, err = nw.Tour(); err != nil {
		return res, err
	}
	if res.ClosedTour, err = tsp.MakeTourFromPermutation(res.Tour, nw.N(), 0); err != nil {
		return res, err
	}
	if res.Length, err = nw.TourLength(); err != nil {
		return res, err
	}
	if cfg.KnownOptimum > 0 {
		res.RelError = math.Abs(cfg.KnownOptimum-res.Length) / cfg.KnownOptimum
	}
	runLogger.Info("run converged", slog.Int("steps", res.Steps), slog.Float64("length", res.Length))

	return res, nil
}

// summarize aggregates converged runs with gonum's stat/floats.
func summarize(results []TrialResult, knownOptimum float64) TrialSummary {
	sum := TrialSummary{Runs: len(results), BestIndex: -1, MeanRelError: math.NaN()}

	var (
		lengths []float64
		rel     []float64
		owners  []int
	)
	for _, r := range results {
		if !r.Converged {
			continue
		}
		lengths = append(lengths, r.Length)
		owners = append(owners, r.Index)
		if knownOptimum > 0 {
			rel = append(rel, r.RelError)
		}
	}
	sum.Converged = len(lengths)
	sum.ConvergenceRate = float64(sum.Converged) / float64(sum.Runs)
	if sum.Converged == 0 {
		return sum
	}

	sum.MeanLength = stat.Mean(lengths, nil)
	if sum.Converged > 1 {
		sum.StdLength = stat.StdDev(lengths, nil)
	}
	sum.MinLength = floats.Min(lengths)
	sum.MaxLength = floats.Max(lengths)
	sum.BestIndex = owners[floats.MinIdx(lengths)]
	if len(rel) > 0 {
		sum.MeanRelError = stat.Mean(rel, nil)
	}

	return sum
}
