package spectrum

import "github.com/berquist/simd-examples/series"

// Config defines how a series is sampled and analysed.
type Config struct {
	// Samples is the number of time points; must be a power of two >= 2.
	Samples int
	// Start is the first sample time.
	Start float64
	// Step is the spacing between sample times; must be positive and finite.
	Step float64
	// Strategy evaluates the series at each sample time.
	Strategy series.Strategy
	// Peaks is the maximum number of peaks reported.
	Peaks int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Samples:  1024,
		Start:    0,
		Step:     1,
		Strategy: series.Vector,
		Peaks:    8,
	}
}

// WithSamples sets the number of samples. Validated by Analyze.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		cfg.Samples = n
	}
}

// WithStart sets the first sample time.
func WithStart(t float64) Option {
	return func(cfg *Config) {
		cfg.Start = t
	}
}

// WithStep sets the sample spacing. Validated by Analyze.
func WithStep(dt float64) Option {
	return func(cfg *Config) {
		cfg.Step = dt
	}
}

// WithStrategy selects the evaluator used for sampling.
func WithStrategy(s series.Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
	}
}

// WithPeaks sets how many peaks are reported; values < 1 are ignored.
func WithPeaks(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Peaks = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
