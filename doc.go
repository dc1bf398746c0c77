// Package csatsp approximates Travelling Salesman tours with chaotic simulated
// annealing in a Transiently Chaotic Neural Network.
//
// What is in the module?
//
//	matrix/ : dense row-major float64 storage, validators and small kernels
//	tsp/    : distance validation, Euclidean instances, tour helpers, RNG, random baseline
//	tcnn/   : the network: update sweep, energy, validity, tour extraction, run loop, trials
//
// Quick start:
//
//	dist, _ := tsp.Euclidean(tsp.CirclePoints(10, 1))
//	nw, _ := tcnn.New(dist, tcnn.DefaultConstants(), tcnn.WithSeed(42))
//	_, _ = nw.Run(1000, tcnn.MetricEnergy)
//	if nw.ValidTour() {
//		tour, _ := nw.Tour()
//		length, _ := nw.TourLength()
//		fmt.Println(tour, length)
//	}
//
// Many independent runs with a summary:
//
//	rep, err := tcnn.RunTrials(ctx, dist, tcnn.DefaultConstants(), tcnn.TrialConfig{
//		Runs: 20, MaxIter: 2000, Seed: 7, Workers: 4,
//	})
//
// See examples/csa_circle for a runnable program.
package csatsp
