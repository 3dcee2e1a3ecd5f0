package stats

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidArgument indicates a side length or trial count below 1.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// Confidence95 is the z-score of a two-sided 95% confidence interval.
const Confidence95 = 1.96

// TrialFunc is invoked after every trial with its 0-based number and the
// recorded threshold.
type TrialFunc func(trial int, threshold float64)

// Options configures a simulation run.
type Options struct {
	// Rand is the random source for site selection. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// OnTrial, if non-nil, is called after every trial.
	OnTrial TrialFunc

	// Logger receives a debug record per trial and an info record with the
	// summary. Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithSeed uses a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. A nil r keeps the default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnTrial installs a per-trial hook.
func WithOnTrial(fn TrialFunc) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// WithLogger routes progress records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a time-seeded source, no hook and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		OnTrial: nil,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Summary is a flat, serializable view of a finished run.
type Summary struct {
	Side         int     `json:"side" yaml:"side"`
	Trials       int     `json:"trials" yaml:"trials"`
	Mean         float64 `json:"mean" yaml:"mean"`
	Stddev       float64 `json:"stddev" yaml:"stddev"`
	ConfidenceLo float64 `json:"confidence_lo" yaml:"confidence_lo"`
	ConfidenceHi float64 `json:"confidence_hi" yaml:"confidence_hi"`
}

// MarshalJSON encodes undefined statistics (NaN, from a single trial) as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Side         int      `json:"side"`
		Trials       int      `json:"trials"`
		Mean         float64  `json:"mean"`
		Stddev       *float64 `json:"stddev"`
		ConfidenceLo *float64 `json:"confidence_lo"`
		ConfidenceHi *float64 `json:"confidence_hi"`
	}{
		Side:         s.Side,
		Trials:       s.Trials,
		Mean:         s.Mean,
		Stddev:       finite(s.Stddev),
		ConfidenceLo: finite(s.ConfidenceLo),
		ConfidenceHi: finite(s.ConfidenceHi),
	})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}
