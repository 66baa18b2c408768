// Package dataset generates the synthetic medical sample sets behind each
// teaching chart.
//
// Every scenario draws its fields from fixed distributions: independent
// uniform draws combined with a linear or logistic signal plus noise. The
// signal shapes are part of the contract, since they define the illustrative
// correlation each chart exists to show; the noise scale is the only tunable
// (see WithNoiseScale).
//
// Generation is fully deterministic for a given (scenario, n, seed) triple.
// Each scenario derives its own random stream by folding the scenario name
// into the caller's seed, so generating two scenarios from the same seed does
// not replay correlated draws.
//
// Datasets are plain slices created fresh per call, never mutated by this
// package, and carry no identity beyond the slice itself: callers regenerate
// rather than update.
package dataset
