// Package stats estimates the percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// Each trial builds a fresh percolation.Percolation, opens uniformly random
// sites until the system percolates and records the fraction of open sites.
// New runs all trials up front; the accessors then report the sample mean,
// the sample standard deviation and a 95% confidence interval
// mean ± 1.96·stddev/√T.
//
// Trials run sequentially on a single random source, so a fixed seed gives a
// reproducible result.
package stats
