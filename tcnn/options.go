// SPDX-License-Identifier: MIT

// Package tcnn: functional configuration of a Network.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Single resolution point: gatherOptions applies setters over documented defaults.
package tcnn

import (
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/csatsp/tsp"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed seeds the network RNG when neither WithSeed nor WithRand is given.
	// It follows the tsp.NewRNG policy (seed 0 ⇒ tsp.DefaultRNGSeed).
	DefaultSeed int64 = 0

	// DefaultActiveThreshold is the output level above which a neuron counts as
	// "on" for the validity test. Outputs are continuous in (0,1), so a literal
	// non-zero test would only pass once tanh saturates in float64 (|x/ε| ≳ 19);
	// 1e-6 corresponds to x/ε ≈ −7.25 and is reached a few sweeps earlier on the
	// same trajectory.
	DefaultActiveThreshold = 1e-6

	// DefaultReshuffleEachSweep keeps one sweep order for the whole life of a Network.
	DefaultReshuffleEachSweep = false
)

const (
	panicNilRand          = "tcnn: WithRand: rng must be non-nil"
	panicThresholdInvalid = "tcnn: WithActiveThreshold: threshold must be finite and in [0,1)"
)

// Option configures a Network at construction time.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	seed               int64
	rng                *rand.Rand
	logger             *slog.Logger
	activeThreshold    float64
	reshuffleEachSweep bool
}

// WithSeed seeds the network's private RNG. The RNG drives the initial
// activations and the sweep order, so equal seeds give equal trajectories.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand hands the network an explicit RNG. The network takes ownership:
// the caller must not use rng concurrently afterwards.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// WithLogger sets the structured logger; nil restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithActiveThreshold sets the output level above which a neuron is "on".
// t = 0 gives the literal non-zero test.
func WithActiveThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t >= 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.activeThreshold = t }
}

// WithReshuffleEachSweep draws a fresh sweep order before every sweep instead of
// reusing the order drawn at construction. This changes the dynamics: two
// networks with the same seed only agree with each other if both use it.
func WithReshuffleEachSweep() Option {
	return func(o *options) { o.reshuffleEachSweep = true }
}

// gatherOptions applies user setters on top of the defaults and resolves derived
// values (RNG from seed, discard logger).
func gatherOptions(user ...Option) options {
	o := options{
		seed:               DefaultSeed,
		activeThreshold:    DefaultActiveThreshold,
		reshuffleEachSweep: DefaultReshuffleEachSweep,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	if o.rng == nil {
		o.rng = tsp.NewRNG(o.seed)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
