// SPDX-License-Identifier: MIT

package tcnn

import (
	"fmt"
	"strings"
)

// Metric identifies a per-sweep quantity the run loop can record.
type Metric int

// Recognized metrics. The zero value is not a metric.
const (
	// MetricIteration records the number of completed sweeps (1 after the first).
	MetricIteration Metric = iota + 1
	// MetricEnergy records Energy().
	MetricEnergy
	// MetricPercentValid records PercentValid().
	MetricPercentValid
	// MetricSelfFeedback records the self-feedback z after the sweep's decay.
	MetricSelfFeedback
)

// metricFunc reads one metric from a network.
type metricFunc func(*Network) float64

// metricTable is the fixed dispatch table behind Run.
var metricTable = map[Metric]metricFunc{
	MetricIteration:    func(nw *Network) float64 { return float64(nw.iter) },
	MetricEnergy:       (*Network).Energy,
	MetricPercentValid: (*Network).PercentValid,
	MetricSelfFeedback: (*Network).SelfFeedback,
}

var metricNames = map[Metric]string{
	MetricIteration:    "iteration",
	MetricEnergy:       "energy",
	MetricPercentValid: "percent_valid",
	MetricSelfFeedback: "self_feedback",
}

// metricAliases maps accepted spellings (lower-cased) to metrics.
var metricAliases = map[string]Metric{
	"iteration":     MetricIteration,
	"iter":          MetricIteration,
	"energy":        MetricEnergy,
	"percent_valid": MetricPercentValid,
	"percentvalid":  MetricPercentValid,
	"self_feedback": MetricSelfFeedback,
	"selffeedback":  MetricSelfFeedback,
	"z":             MetricSelfFeedback,
}

// AllMetrics lists every recognized metric in declaration order.
func AllMetrics() []Metric {
	return []Metric{MetricIteration, MetricEnergy, MetricPercentValid, MetricSelfFeedback}
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// Valid reports whether m is in the dispatch table.
func (m Metric) Valid() bool {
	_, ok := metricTable[m]
	return ok
}

// ParseMetric resolves a metric name, case-insensitively.
func ParseMetric(s string) (Metric, error) {
	if m, ok := metricAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMetric)
}

// Series holds one ordered sequence per recorded metric; index t of every
// sequence belongs to the same sweep.
type Series map[Metric][]float64

// Get returns the sequence for m (nil when m was not recorded).
func (s Series) Get(m Metric) []float64 { return s[m] }

// Len returns the number of recorded sweeps (0 for an empty Series).
func (s Series) Len() int {
	for _, v := range s {
		return len(v)
	}

	return 0
}

// Last returns the most recent value of m and whether there is one.
func (s Series) Last(m Metric) (float64, bool) {
	v := s[m]
	if len(v) == 0 {
		return 0, false
	}

	return v[len(v)-1], true
}
