// Package noise implements the per-sample noise generators.
//
// A Source is a tagged variant: the Kind selects the algorithm and the
// struct carries the state every variant might need. Dispatch is a single
// switch in Next, so a slice of Sources can be iterated without interface
// calls on the audio goroutine.
package noise

import (
	"fmt"

	"github.com/tphakala/go-noise-mixer/internal/simdops"
)

// Source is a stateful noise generator producing one sample per call.
// The zero value is a White source.
type Source struct {
	kind Kind

	// last is the integrator for Brown and the previous white draw for Blue.
	last float32

	// taps and index form the Pink circular buffer.
	taps  [PinkTaps]float32
	index int
}

var sumTaps = simdops.Float32Ops().Sum

// New returns a Source of the given kind with zeroed state.
func New(kind Kind) (Source, error) {
	if !kind.Valid() {
		return Source{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
	return Source{kind: kind}, nil
}

// MustNew is like New but panics on an invalid kind.
func MustNew(kind Kind) Source {
	s, err := New(kind)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the colour of the source.
func (s *Source) Kind() Kind {
	return s.kind
}

// Next returns the next sample in [-1, 1], drawing from r.
func (s *Source) Next(r Rand) float32 {
	switch s.kind {
	case Brown:
		s.last = clamp(s.last+r.Uniform()*brownStep, minSample, maxSample)
		return s.last
	case Pink:
		s.taps[s.index] = r.Uniform()
		s.index++
		if s.index == PinkTaps {
			s.index = 0
		}
		return sumTaps(s.taps[:]) / PinkTaps
	case Blue:
		white := r.Uniform()
		out := clamp(white-s.last, minSample, maxSample)
		s.last = white
		return out
	default:
		return r.Uniform()
	}
}

// Reset returns the source to its initial state.
func (s *Source) Reset() {
	s.last = 0
	s.taps = [PinkTaps]float32{}
	s.index = 0
}

// Taps returns a copy of the pink tap buffer and the next write index.
// Other kinds return zeroed taps.
func (s *Source) Taps() ([PinkTaps]float32, int) {
	return s.taps, s.index
}

// Last returns the persistent scalar used by Brown and Blue.
func (s *Source) Last() float32 {
	return s.last
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
