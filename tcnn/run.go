// SPDX-License-Identifier: MIT

package tcnn

import (
	"context"
	"fmt"
	"log/slog"
)

// seriesCapHint bounds the preallocation per metric sequence.
const seriesCapHint = 1024

// Run sweeps until the outputs encode a valid tour or maxIter sweeps have been
// performed, and records the requested metrics after every sweep.
//
// Behavior highlights:
//   - Validity is checked before each sweep: an already valid network performs
//     no sweep at all.
//   - maxIter == 0 performs no sweeps; every requested sequence is empty.
//   - Hitting the cap is not an error; check ValidTour afterwards.
//   - Duplicate metrics are recorded once.
//
// Errors: ErrInvalidMaxIter (maxIter < 0) and ErrUnknownMetric, both reported
// before any sweep.
//
// Complexity: O(iters · n³), plus O(n³) per sweep when MetricEnergy is recorded.
func (nw *Network) Run(maxIter int, metrics ...Metric) (Series, error) {
	if maxIter < 0 {
		return nil, fmt.Errorf("tcnn.Run: %d: %w", maxIter, ErrInvalidMaxIter)
	}
	var (
		funcs = make([]metricFunc, 0, len(metrics))
		keys  = make([]Metric, 0, len(metrics))
		s     = make(Series, len(metrics))
	)
	for _, m := range metrics {
		f, ok := metricTable[m]
		if !ok {
			return nil, fmt.Errorf("tcnn.Run: %v: %w", m, ErrUnknownMetric)
		}
		if _, dup := s[m]; dup {
			continue
		}
		s[m] = make([]float64, 0, min(maxIter, seriesCapHint))
		funcs = append(funcs, f)
		keys = append(keys, m)
	}

	startIter := nw.iter
	for steps := 0; steps < maxIter && !nw.ValidTour(); steps++ {
		nw.Step()
		for idx, f := range funcs {
			s[keys[idx]] = append(s[keys[idx]], f(nw))
		}
	}

	if nw.logger.Enabled(context.Background(), slog.LevelDebug) {
		nw.logger.Debug("tcnn run finished",
			slog.Int("n", nw.n),
			slog.Int("sweeps", nw.iter-startIter),
			slog.Int("max_iter", maxIter),
			slog.Bool("valid_tour", nw.ValidTour()),
			slog.Float64("percent_valid", nw.PercentValid()),
			slog.Float64("self_feedback", nw.z),
		)
	}

	return s, nil
}
