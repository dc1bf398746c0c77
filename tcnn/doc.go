// SPDX-License-Identifier: MIT

// Package tcnn approximates Travelling Salesman tours with a Transiently Chaotic
// Neural Network (Chen & Aihara, 1995) performing chaotic simulated annealing.
//
// What & Why:
//
//	For n cities the network holds n² neurons; neuron (i,k) stands for "city i is
//	visited at position k". Each neuron has an unbounded internal activation x and an
//	output y = ½(1 + tanh(x/ε)) in (0,1). A self-feedback term z acts as a
//	temperature: while it is large the dynamics are chaotic and roam the state
//	space; it decays geometrically each sweep until the network settles into a
//	fixed point, ideally a permutation matrix that encodes a tour.
//
// Pipeline:
//
//	distances ─► New ─► Step/Run (asynchronous sweeps) ─► ValidTour ─► Tour/TourLength
//	                         │
//	                         └─► Energy / PercentValid / SelfFeedback (metrics)
//
// Update rule, per neuron (i,k) in the network's sweep order:
//
//	a = −W1·(Σ_{l≠k} y[i,l] + Σ_{j≠i} y[j,k])
//	b = −W2·Σ_{j≠i} d̂[i,j]·(y[j,k+1] + y[j,k−1])      (positions mod n)
//	c = K·x[i,k] − z·(y[i,k] − I0)
//	x[i,k] = α·(a + b + W1) + c;  y[i,k] = g(x[i,k])
//
// then z ← z·(1−β). d̂ is the distance matrix divided by its maximum.
// Updates are Gauss–Seidel: a neuron sees outputs already refreshed earlier in
// the same sweep. The sweep is sequential; batching it into a
// synchronous update changes the dynamics.
//
// Determinism:
//
//	All randomness (initial activations, sweep order) comes from one *rand.Rand per
//	Network, set with WithSeed or WithRand. Same seed ⇒ identical trajectories.
//
// Concurrency:
//
//	A Network is not goroutine-safe and is never shared. RunTrials runs independent
//	networks in parallel, each with its own derived RNG stream.
//
// Outcomes:
//
//	Reaching the iteration cap without a valid tour is a normal result, not an
//	error; check ValidTour after Run.
package tcnn
