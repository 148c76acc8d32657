// Package spectrum samples a cosine series on a uniform time grid and
// recovers its dominant angular rates with a forward FFT.
//
// It is a consumer of the series evaluators: every sample goes through the
// configured [series.Strategy], so an analysis doubles as a workload that
// calls a strategy in a tight loop with no setup between calls.
package spectrum
