// Package mixer combines noise voices into one bounded mono sample per frame.
//
// A Session is built once before streaming and then owned by the audio
// goroutine. Mix and Fill are its only mutating entry points; neither
// allocates nor blocks.
package mixer

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-noise-mixer/internal/noise"
	"github.com/tphakala/go-noise-mixer/internal/simdops"
)

// ErrInvalidVoice indicates a voice with an unusable volume or source.
var ErrInvalidVoice = errors.New("invalid voice")

// Voice pairs a noise source with its gain. The voice owns its source.
type Voice struct {
	Source noise.Source
	Volume float32
}

// NewVoice creates a voice of the given kind with a fresh source.
func NewVoice(kind noise.Kind, volume float32) (Voice, error) {
	src, err := noise.New(kind)
	if err != nil {
		return Voice{}, err
	}
	return Voice{Source: src, Volume: volume}, nil
}

// Session is the ordered voice list plus master volume.
// It is not safe for concurrent use.
type Session struct {
	voices []Voice
	master float32
	rand   noise.Rand

	// samples and volumes are per-frame scratch sized to len(voices).
	samples []float32
	volumes []float32
	divisor float32
	dot     func(a, b []float32) float32
}

// NewSession takes ownership of voices and returns a session mixing them
// in the given order. Volumes must be finite and non-negative; master must
// lie in [0, 1].
func NewSession(voices []Voice, master float32, r noise.Rand) (*Session, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidVoice)
	}
	if !finite(master) || master < 0 || master > 1 {
		return nil, fmt.Errorf("%w: master volume %v outside [0, 1]", ErrInvalidVoice, master)
	}

	volumes := make([]float32, len(voices))
	for i, v := range voices {
		if !finite(v.Volume) || v.Volume < 0 {
			return nil, fmt.Errorf("%w: voice %d (%s) has volume %v", ErrInvalidVoice, i, v.Source.Kind(), v.Volume)
		}
		if !v.Source.Kind().Valid() {
			return nil, fmt.Errorf("%w: voice %d has no source", ErrInvalidVoice, i)
		}
		volumes[i] = v.Volume
	}

	return &Session{
		voices:  voices,
		master:  master,
		rand:    r,
		samples: make([]float32, len(voices)),
		volumes: volumes,
		divisor: float32(max(len(voices), 1)),
		dot:     simdops.Float32Ops().DotProductUnsafe,
	}, nil
}

// Mix pulls exactly one sample from every voice, in order, and returns
// the averaged, master-scaled sample clamped to [-1, 1].
func (s *Session) Mix() float32 {
	if len(s.voices) == 0 {
		return 0
	}
	for i := range s.voices {
		s.samples[i] = s.voices[i].Source.Next(s.rand)
	}
	avg := s.dot(s.samples, s.volumes) / s.divisor
	return clamp(avg*s.master, -1, 1)
}

// Fill writes one mixed frame into every element of dst.
func (s *Session) Fill(dst []float32) {
	for i := range dst {
		dst[i] = s.Mix()
	}
}

// Voices returns the number of voices in the session.
func (s *Session) Voices() int {
	return len(s.voices)
}

// Master returns the master volume.
func (s *Session) Master() float32 {
	return s.master
}

// Kinds returns the colour of each voice in mixing order.
func (s *Session) Kinds() []noise.Kind {
	kinds := make([]noise.Kind, len(s.voices))
	for i := range s.voices {
		kinds[i] = s.voices[i].Source.Kind()
	}
	return kinds
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

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
