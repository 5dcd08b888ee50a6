// Package spectrum measures the spectral tilt of rendered noise.
//
// A Welch periodogram (50% overlapped Hann segments) is averaged and a line
// is fitted to power in dB against log2 frequency, giving the tilt in dB per
// octave. White noise fits near 0, brown falls steeply, pink falls gently
// and blue rises.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-noise-mixer/internal/simdops"
)

// Common errors returned by the package.
var (
	// ErrInvalidSegment indicates a segment length that is too short or not a power of two.
	ErrInvalidSegment = errors.New("invalid segment length")

	// ErrTooShort indicates the signal does not fill a single segment.
	ErrTooShort = errors.New("signal shorter than one segment")

	// ErrBand indicates a frequency band with too few usable bins.
	ErrBand = errors.New("frequency band has too few bins")
)

// Spectrum is an averaged one-sided power spectrum.
type Spectrum struct {
	// Freqs holds the bin centre frequencies in Hz.
	Freqs []float64

	// Power holds the mean squared magnitude per bin.
	Power []float64

	// Segments is the number of segments averaged.
	Segments int
}

// Welch computes the averaged power spectrum of samples.
func Welch(samples []float64, sampleRate float64, segment int) (*Spectrum, error) {
	if segment < MinSegment || segment&(segment-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSegment, segment)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if len(samples) < segment {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooShort, len(samples), segment)
	}

	fft := fourier.NewFFT(segment)
	win := make([]float64, segment)
	floats.AddConst(1, win)
	win = window.Hann(win)

	bins := segment/2 + 1
	power := make([]float64, bins)
	buf := make([]float64, segment)
	coeffs := make([]complex128, bins)

	hop := segment / 2
	count := 0
	for start := 0; start+segment <= len(samples); start += hop {
		floats.MulTo(buf, samples[start:start+segment], win)
		coeffs = fft.Coefficients(coeffs, buf)
		for k, c := range coeffs {
			power[k] += real(c)*real(c) + imag(c)*imag(c)
		}
		count++
	}
	simdops.Float64Ops().Scale(power, power, 1/float64(count))

	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = fft.Freq(k) * sampleRate
	}

	return &Spectrum{Freqs: freqs, Power: power, Segments: count}, nil
}

// band returns the index range of bins with lo <= f <= hi.
func (s *Spectrum) band(lo, hi float64) (first, last int) {
	first, last = -1, -1
	for k, f := range s.Freqs {
		if f < lo || f > hi {
			continue
		}
		if first < 0 {
			first = k
		}
		last = k
	}
	return first, last
}

// Slope fits power in dB against log2 frequency over [lo, hi] Hz and
// returns the tilt in dB per octave.
func (s *Spectrum) Slope(lo, hi float64) (float64, error) {
	if lo <= 0 || hi <= lo {
		return 0, fmt.Errorf("%w: [%g, %g] Hz", ErrBand, lo, hi)
	}
	first, last := s.band(lo, hi)
	if first < 0 || last-first+1 < minFitBins {
		return 0, fmt.Errorf("%w: [%g, %g] Hz", ErrBand, lo, hi)
	}

	x := make([]float64, 0, last-first+1)
	y := make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		if s.Power[k] <= 0 {
			continue
		}
		x = append(x, math.Log2(s.Freqs[k]))
		y = append(y, decibelScale*math.Log10(s.Power[k]))
	}
	if len(x) < minFitBins {
		return 0, fmt.Errorf("%w: [%g, %g] Hz has no energy", ErrBand, lo, hi)
	}

	_, beta := stat.LinearRegression(x, y, nil, false)
	return beta, nil
}

// Centroid returns the power-weighted mean frequency in Hz.
func (s *Spectrum) Centroid() float64 {
	total := floats.Sum(s.Power)
	if total == 0 {
		return 0
	}
	return floats.Dot(s.Freqs, s.Power) / total
}

// BandLevel returns the mean power over [lo, hi] Hz in dB.
func (s *Spectrum) BandLevel(lo, hi float64) (float64, error) {
	first, last := s.band(lo, hi)
	if first < 0 {
		return 0, fmt.Errorf("%w: [%g, %g] Hz", ErrBand, lo, hi)
	}
	mean := stat.Mean(s.Power[first:last+1], nil)
	if mean <= 0 {
		return math.Inf(-1), nil
	}
	return decibelScale * math.Log10(mean), nil
}

// Float64s widens float32 samples for analysis.
func Float64s(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}
	return out
}
