package tcnn_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csatsp/matrix"
	"github.com/katalvlaran/csatsp/tcnn"
	"github.com/katalvlaran/csatsp/tsp"
)

func trialConfig(runs, workers int) tcnn.TrialConfig {
	cfg := tcnn.DefaultTrialConfig()
	cfg.Runs = runs
	cfg.Workers = workers
	cfg.MaxIter = 2000
	cfg.Seed = seedDet
	cfg.Metrics = []tcnn.Metric{tcnn.MetricPercentValid}

	return cfg
}

func TestDefaultTrialConfig(t *testing.T) {
	cfg := tcnn.DefaultTrialConfig()
	require.Equal(t, tcnn.DefaultRuns, cfg.Runs)
	require.Equal(t, tcnn.DefaultMaxIter, cfg.MaxIter)
	require.Equal(t, tcnn.DefaultWorkers, cfg.Workers)
}

func TestRunTrials_RejectsBadConfig(t *testing.T) {
	ctx := context.Background()
	dist := circle(t, 5)
	c := tcnn.DefaultConstants()

	cases := []struct {
		name string
		mod  func(*tcnn.TrialConfig)
		want error
	}{
		{"no runs", func(cfg *tcnn.TrialConfig) { cfg.Runs = 0 }, tcnn.ErrInvalidTrialConfig},
		{"negative max iter", func(cfg *tcnn.TrialConfig) { cfg.MaxIter = -1 }, tcnn.ErrInvalidTrialConfig},
		{"negative optimum", func(cfg *tcnn.TrialConfig) { cfg.KnownOptimum = -1 }, tcnn.ErrInvalidTrialConfig},
		{"NaN optimum", func(cfg *tcnn.TrialConfig) { cfg.KnownOptimum = math.NaN() }, tcnn.ErrInvalidTrialConfig},
		{"unknown metric", func(cfg *tcnn.TrialConfig) { cfg.Metrics = []tcnn.Metric{42} }, tcnn.ErrUnknownMetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := trialConfig(2, 1)
			tc.mod(&cfg)
			_, err := tcnn.RunTrials(ctx, dist, c, cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}

	bad := c
	bad.K = 2
	_, err := tcnn.RunTrials(ctx, dist, bad, trialConfig(1, 1))
	require.ErrorIs(t, err, tcnn.ErrInvalidConstants)

	nonSquare, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tcnn.RunTrials(ctx, nonSquare, c, trialConfig(1, 1))
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}

func TestRunTrials_SummaryConsistent(t *testing.T) {
	const n = 8
	dist := circle(t, n)
	opt, err := tsp.TourLength(dist, []int{0, 1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	cfg := trialConfig(6, 3)
	cfg.KnownOptimum = opt
	rep, err := tcnn.RunTrials(context.Background(), dist, tcnn.DefaultConstants(), cfg)
	require.NoError(t, err)
	require.Len(t, rep.Trials, cfg.Runs)
	require.Positive(t, rep.Summary.Converged)

	var (
		converged []float64
		relErrs   []float64
	)
	for idx, tr := range rep.Trials {
		require.Equal(t, idx, tr.Index)
		require.NotEqual(t, uuid.Nil, tr.ID)
		require.Equal(t, tr.Steps, tr.Series.Len())
		require.LessOrEqual(t, tr.Steps, cfg.MaxIter)
		if !tr.Converged {
			require.Equal(t, cfg.MaxIter, tr.Steps)
			require.Nil(t, tr.Tour)
			require.Nil(t, tr.ClosedTour)
			require.True(t, math.IsNaN(tr.RelError))
			continue
		}
		last, ok := tr.Series.Last(tcnn.MetricPercentValid)
		require.True(t, ok)
		require.Equal(t, 1.0, last)

		require.NoError(t, tsp.ValidatePermutation(tr.Tour, n))
		want, err := tsp.MakeTourFromPermutation(tr.Tour, n, 0)
		require.NoError(t, err)
		require.Equal(t, want, tr.ClosedTour)
		require.Len(t, tr.ClosedTour, n+1)
		require.Equal(t, 0, tr.ClosedTour[0])
		require.Equal(t, 0, tr.ClosedTour[n])

		l, err := tsp.TourLength(dist, tr.Tour)
		require.NoError(t, err)
		require.Equal(t, l, tr.Length)
		require.GreaterOrEqual(t, tr.Length, opt-1e-9)
		require.InDelta(t, (tr.Length-opt)/opt, tr.RelError, 1e-9)
		converged = append(converged, tr.Length)
		relErrs = append(relErrs, tr.RelError)
	}

	sum := rep.Summary
	require.Equal(t, cfg.Runs, sum.Runs)
	require.Equal(t, len(converged), sum.Converged)
	require.InDelta(t, float64(len(converged))/float64(cfg.Runs), sum.ConvergenceRate, epsTiny)

	var total, totalRel float64
	for idx, l := range converged {
		require.GreaterOrEqual(t, l, sum.MinLength)
		require.LessOrEqual(t, l, sum.MaxLength)
		total += l
		totalRel += relErrs[idx]
	}
	require.InDelta(t, total/float64(len(converged)), sum.MeanLength, 1e-9)
	require.InDelta(t, totalRel/float64(len(converged)), sum.MeanRelError, 1e-9)

	best, ok := rep.Best()
	require.True(t, ok)
	require.True(t, best.Converged)
	require.Equal(t, sum.BestIndex, best.Index)
	require.Equal(t, sum.MinLength, best.Length)
}

func TestRunTrials_IndependentOfWorkers(t *testing.T) {
	dist := circle(t, 8)
	c := tcnn.DefaultConstants()

	seq, err := tcnn.RunTrials(context.Background(), dist, c, trialConfig(5, 1))
	require.NoError(t, err)
	par, err := tcnn.RunTrials(context.Background(), dist, c, trialConfig(5, 4))
	require.NoError(t, err)
	require.Positive(t, seq.Summary.Converged)

	for idx := range seq.Trials {
		a, b := seq.Trials[idx], par.Trials[idx]
		require.Equal(t, a.Steps, b.Steps)
		require.Equal(t, a.Converged, b.Converged)
		require.Equal(t, a.Tour, b.Tour)
		require.Equal(t, a.ClosedTour, b.ClosedTour)
		require.Equal(t, a.Length, b.Length)
		require.Equal(t, a.Series, b.Series)
		require.NotEqual(t, a.ID, b.ID)
	}
	require.Equal(t, seq.Summary.Converged, par.Summary.Converged)
	require.Equal(t, seq.Summary.BestIndex, par.Summary.BestIndex)
	require.Equal(t, seq.Summary.MeanLength, par.Summary.MeanLength)
}

func TestRunTrials_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tcnn.RunTrials(ctx, circle(t, 5), tcnn.DefaultConstants(), trialConfig(8, 2))
	require.ErrorIs(t, err, context.Canceled)
}

// cancelOnRecord cancels a context as soon as any record is handled.
type cancelOnRecord struct {
	slog.Handler
	cancel context.CancelFunc
}

func (h cancelOnRecord) Handle(ctx context.Context, r slog.Record) error {
	h.cancel()
	return h.Handler.Handle(ctx, r)
}

func (h cancelOnRecord) WithAttrs(attrs []slog.Attr) slog.Handler {
	return cancelOnRecord{Handler: h.Handler.WithAttrs(attrs), cancel: h.cancel}
}

func (h cancelOnRecord) WithGroup(name string) slog.Handler {
	return cancelOnRecord{Handler: h.Handler.WithGroup(name), cancel: h.cancel}
}

func TestRunTrials_CanceledAfterLastRunKeepsReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The single run is already handed out when its own log record cancels ctx.
	cfg := trialConfig(1, 1)
	cfg.MaxIter = 10
	cfg.Logger = slog.New(cancelOnRecord{
		Handler: slog.NewTextHandler(io.Discard, nil),
		cancel:  cancel,
	})

	rep, err := tcnn.RunTrials(ctx, circle(t, 5), tcnn.DefaultConstants(), cfg)
	require.NoError(t, err)
	require.Error(t, ctx.Err())
	require.Len(t, rep.Trials, 1)
	require.Equal(t, 1, rep.Summary.Runs)
}

func TestRunTrials_Logs(t *testing.T) {
	var buf bytes.Buffer
	cfg := trialConfig(2, 2)
	cfg.Logger = slog.New(tint.NewHandler(&buf, &tint.Options{Level: slog.LevelInfo, NoColor: true}))

	rep, err := tcnn.RunTrials(context.Background(), circle(t, 8), tcnn.DefaultConstants(), cfg)
	require.NoError(t, err)
	require.Positive(t, rep.Summary.Converged)

	out := buf.String()
	require.Contains(t, out, "tcnn trials finished")
	require.Contains(t, out, "trial_id=")
	require.Contains(t, out, "runs=2")
	require.Contains(t, out, "run converged")
}
