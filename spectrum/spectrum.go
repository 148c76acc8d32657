package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/berquist/simd-examples/series"
)

var (
	// ErrInvalidSampleCount reports a sample count that is not a power of two >= 2.
	ErrInvalidSampleCount = errors.New("spectrum: sample count must be a power of two >= 2")
	// ErrInvalidStep reports a non-positive or non-finite sample spacing.
	ErrInvalidStep = errors.New("spectrum: step must be positive and finite")
	// ErrStrategyUnavailable reports a strategy that cannot run on this processor.
	ErrStrategyUnavailable = errors.New("spectrum: strategy not available on this processor")
)

// Peak is one local maximum of the amplitude spectrum.
type Peak struct {
	Bin       int
	Rate      float64 // angular rate in radians per time unit
	Amplitude float64 // estimated term amplitude
	LevelDB   float64
}

// Result holds the sampled signal and its one-sided amplitude spectrum.
type Result struct {
	Samples    []float64
	Rates      []float64
	Amplitudes []float64
	Peaks      []Peak
}

// Magnitude returns |X[k]| for each bin. The bins are split into real and
// imaginary columns for vecmath.Magnitude.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	n := len(bins)
	cols := make([]float64, 3*n)
	re, im, out := cols[:n:n], cols[n:2*n:2*n], cols[2*n:]

	for k, x := range bins {
		re[k], im[k] = real(x), imag(x)
	}

	vecmath.Magnitude(out, re, im)

	return out
}

// Sample evaluates s at cfg.Samples equally spaced times starting at
// cfg.Start, using cfg.Strategy.
func Sample(s series.Series, cfg Config) ([]float64, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	eval := cfg.Strategy.Func()
	out := make([]float64, cfg.Samples)
	for i := range out {
		out[i] = eval(cfg.Start+float64(i)*cfg.Step, s)
	}

	return out, nil
}

// Analyze samples s and returns its one-sided amplitude spectrum with the
// strongest local maxima. A term a·cos(b + c·t) whose rate c falls on a bin
// centre shows up as a peak of amplitude |a| at Rate c.
func Analyze(s series.Series, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	samples, err := Sample(s, cfg)
	if err != nil {
		return Result{}, err
	}

	n := cfg.Samples
	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: fft plan of size %d: %w", n, err)
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	half := n/2 + 1
	amps := Magnitude(bins[:half])
	rates := make([]float64, half)
	scale := 2 / float64(n)
	rateStep := 2 * math.Pi / (float64(n) * cfg.Step)

	for k := range amps {
		rates[k] = float64(k) * rateStep
		if k == 0 || k == half-1 {
			amps[k] /= float64(n)
		} else {
			amps[k] *= scale
		}
	}

	return Result{
		Samples:    samples,
		Rates:      rates,
		Amplitudes: amps,
		Peaks:      findPeaks(rates, amps, cfg.Peaks),
	}, nil
}

func validate(cfg Config) error {
	if cfg.Samples < 2 || cfg.Samples&(cfg.Samples-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleCount, cfg.Samples)
	}

	if !(cfg.Step > 0) || math.IsInf(cfg.Step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, cfg.Step)
	}

	if !cfg.Strategy.Available() {
		return fmt.Errorf("%w: %v", ErrStrategyUnavailable, cfg.Strategy)
	}

	return nil
}

// findPeaks returns up to limit local maxima, strongest first.
func findPeaks(rates, amps []float64, limit int) []Peak {
	var peaks []Peak

	for k, a := range amps {
		if a <= 0 {
			continue
		}
		if k > 0 && amps[k-1] >= a {
			continue
		}
		if k < len(amps)-1 && amps[k+1] > a {
			continue
		}

		peaks = append(peaks, Peak{
			Bin:       k,
			Rate:      rates[k],
			Amplitude: a,
			LevelDB:   levelDB(a),
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Amplitude > peaks[j].Amplitude
	})

	if len(peaks) > limit {
		peaks = peaks[:limit]
	}

	return peaks
}
