// SPDX-License-Identifier: MIT

package tcnn

import "errors"

var (
	// ErrInvalidConstants is returned by Constants.Validate (wrapped with the field name).
	ErrInvalidConstants = errors.New("tcnn: invalid constants")

	// ErrInvalidTour is returned by Tour/TourLength while the outputs do not encode
	// a permutation matrix.
	ErrInvalidTour = errors.New("tcnn: outputs do not encode a valid tour")

	// ErrInvalidMaxIter is returned by Run for a negative iteration cap.
	ErrInvalidMaxIter = errors.New("tcnn: max iterations must be non-negative")

	// ErrUnknownMetric is returned for metric identifiers outside the dispatch table.
	ErrUnknownMetric = errors.New("tcnn: unknown metric")

	// ErrInvalidTrialConfig is returned by RunTrials for inconsistent TrialConfig values.
	ErrInvalidTrialConfig = errors.New("tcnn: invalid trial config")
)
