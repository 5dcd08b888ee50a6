// Command analyze-noise renders each noise colour offline and reports its
// spectral tilt, centroid and band levels.
//
// Usage:
//
//	analyze-noise
//	analyze-noise -rate 44100 -seconds 10 -low 100 -high 8000
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	noisemix "github.com/tphakala/go-noise-mixer"
	"github.com/tphakala/go-noise-mixer/internal/noise"
	"github.com/tphakala/go-noise-mixer/internal/spectrum"
)

const (
	// Analysis defaults
	defaultRate    = 48000 // DAT/DVD sample rate
	defaultSeconds = 4.0   // Seconds rendered per colour
	defaultLow     = 200.0 // Slope fit lower edge in Hz
	defaultHigh    = 4000.0

	// Fixed reporting bands (Hz)
	lowBandStart  = 100.0
	lowBandEnd    = 400.0
	highBandStart = 4000.0
	highBandEnd   = 16000.0

	fullVolume = 100.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Sample rate in Hz")
	seconds := flag.Float64("seconds", defaultSeconds, "Seconds of noise rendered per colour")
	segment := flag.Int("segment", spectrum.DefaultSegment, "FFT segment length (power of two)")
	low := flag.Float64("low", defaultLow, "Slope fit lower frequency in Hz")
	high := flag.Float64("high", defaultHigh, "Slope fit upper frequency in Hz")
	flag.Parse()

	frames := int(*seconds * float64(*rate))
	fmt.Println("=== Analyzing Noise Colours ===")
	fmt.Printf("  Sample rate: %d Hz\n", *rate)
	fmt.Printf("  Frames per colour: %d\n", frames)
	fmt.Printf("  Segment: %d (%.2f Hz bins)\n", *segment, float64(*rate)/float64(*segment))
	fmt.Printf("  Slope fit: %.0f-%.0f Hz\n\n", *low, *high)

	for _, kind := range noise.Kinds {
		r, err := analyze(kind, *rate, frames, *segment, *low, *high)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		printReport(r)
	}
	return nil
}

// report holds the measurements for one colour.
type report struct {
	kind      noise.Kind
	slope     float64
	centroid  float64
	lowLevel  float64
	highLevel float64
	segments  int
	elapsed   time.Duration
}

// analyze renders one colour at full volume and measures its spectrum.
func analyze(kind noise.Kind, rate, frames, segment int, low, high float64) (*report, error) {
	m, err := noisemix.NewSingle(kind, fullVolume)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	samples := make([]float32, frames)
	m.Fill(samples)
	elapsed := time.Since(start)

	s, err := spectrum.Welch(spectrum.Float64s(samples), float64(rate), segment)
	if err != nil {
		return nil, err
	}
	slope, err := s.Slope(low, high)
	if err != nil {
		return nil, err
	}
	lowLevel, err := s.BandLevel(lowBandStart, lowBandEnd)
	if err != nil {
		return nil, err
	}
	highLevel, err := s.BandLevel(highBandStart, highBandEnd)
	if err != nil {
		return nil, err
	}

	return &report{
		kind:      kind,
		slope:     slope,
		centroid:  s.Centroid(),
		lowLevel:  lowLevel,
		highLevel: highLevel,
		segments:  s.Segments,
		elapsed:   elapsed,
	}, nil
}

func printReport(r *report) {
	fmt.Printf("%s noise:\n", r.kind)
	fmt.Printf("  Slope: %+.2f dB/octave\n", r.slope)
	fmt.Printf("  Centroid: %.0f Hz\n", r.centroid)
	fmt.Printf("  Level %.0f-%.0f Hz: %.2f dB\n", lowBandStart, lowBandEnd, r.lowLevel)
	fmt.Printf("  Level %.0f-%.0f Hz: %.2f dB\n", highBandStart, highBandEnd, r.highLevel)
	fmt.Printf("  Tilt (high - low): %+.2f dB\n", r.highLevel-r.lowLevel)
	fmt.Printf("  Segments averaged: %d, render time: %v\n\n", r.segments, r.elapsed)
}
