package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/percolation"
)

// Stats holds the thresholds and summary statistics of a finished run.
type Stats struct {
	side       int
	thresholds []float64
	mean       float64
	stddev     float64
}

// New runs trials independent experiments on an n×n grid.
// Returns an error wrapping ErrInvalidArgument if n < 1 or trials < 1.
// Complexity: O(trials·n²·α(n²)) time, O(n² + trials) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n < 1 || trials < 1 {
		return nil, fmt.Errorf("%w: side %d and trials %d must both be at least 1", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Stats{
		side:       n,
		thresholds: make([]float64, trials),
	}
	for i := range s.thresholds {
		threshold, err := runTrial(n, o)
		if err != nil {
			return nil, fmt.Errorf("stats: trial %d: %w", i, err)
		}
		s.thresholds[i] = threshold
		o.Logger.Debug("trial finished", "trial", i, "side", n, "threshold", threshold)
		if o.OnTrial != nil {
			o.OnTrial(i, threshold)
		}
	}
	s.mean = mean(s.thresholds)
	s.stddev = stddev(s.thresholds, s.mean)

	o.Logger.Info("simulation finished",
		"side", n,
		"trials", trials,
		"mean", s.mean,
		"stddev", s.stddev,
	)

	return s, nil
}

// runTrial opens random sites on a fresh system until it percolates and
// returns the open fraction. The loop ends after at most n² distinct opens.
func runTrial(n int, o Options) (float64, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for !p.Percolates() {
		row := o.Rand.Intn(n) + 1
		col := o.Rand.Intn(n) + 1
		if err := p.Open(row, col); err != nil {
			return 0, err
		}
	}

	return float64(p.NumberOfOpenSites()) / float64(n*n), nil
}

// mean returns the arithmetic mean of xs (len(xs) ≥ 1).
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// stddev returns the sample standard deviation of xs around mu.
// It is NaN for a single sample.
func stddev(xs []float64, mu float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var sumsq float64
	for _, x := range xs {
		d := x - mu
		sumsq += d * d
	}

	return math.Sqrt(sumsq / float64(len(xs)-1))
}

// Side returns the grid side length n.
func (s *Stats) Side() int { return s.side }

// Trials returns the number of trials run.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Thresholds returns a copy of the per-trial open-site fractions.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.mean }

// Stddev returns the sample standard deviation of the percolation threshold,
// or NaN after a single trial.
func (s *Stats) Stddev() float64 { return s.stddev }

// halfWidth is 1.96·stddev/√T.
func (s *Stats) halfWidth() float64 {
	return Confidence95 * s.stddev / math.Sqrt(float64(len(s.thresholds)))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.mean - s.halfWidth() }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.mean + s.halfWidth() }

// Summary returns all statistics in one value.
func (s *Stats) Summary() Summary {
	return Summary{
		Side:         s.side,
		Trials:       s.Trials(),
		Mean:         s.Mean(),
		Stddev:       s.Stddev(),
		ConfidenceLo: s.ConfidenceLo(),
		ConfidenceHi: s.ConfidenceHi(),
	}
}
