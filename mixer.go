package noisemix

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-noise-mixer/internal/mixer"
	"github.com/tphakala/go-noise-mixer/internal/noise"
	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// Mixer produces one normalized mono sample per output frame.
// Implementations are single-owner: after construction, only the goroutine
// driving the audio output may call them.
type Mixer interface {
	// Mix pulls one sample from every voice and returns the averaged,
	// master-scaled result clamped to [-1, 1].
	Mix() float32

	// Fill writes one mixed frame into every element of dst.
	Fill(dst []float32)

	// Voices returns the number of voices being mixed.
	Voices() int
}

// Rand supplies uniform draws in [-1, 1) to the noise generators.
type Rand interface {
	Uniform() float32
}

// Kind selects a noise colour.
type Kind = noise.Kind

// Noise colours.
const (
	White = noise.White
	Pink  = noise.Pink
	Brown = noise.Brown
	Blue  = noise.Blue
)

// Format identifies an output sample representation.
type Format = sampleconv.Format

// Supported output formats.
const (
	FormatFloat32 = sampleconv.FormatFloat32
	FormatInt16   = sampleconv.FormatInt16
	FormatUint16  = sampleconv.FormatUint16
	FormatUint8   = sampleconv.FormatUint8
	FormatInt24   = sampleconv.FormatInt24
	FormatInt32   = sampleconv.FormatInt32
)

// Config holds the mix configuration. Volumes are percentages; values
// outside [0, 100] are clamped rather than rejected.
type Config struct {
	// White, Pink, Brown and Blue are per-colour volumes in percent.
	White float32
	Pink  float32
	Brown float32
	Blue  float32

	// Master is the master volume in percent. It is attenuated ten times
	// more than the per-voice volumes.
	Master float32

	// SkipSilent drops voices whose volume is zero so they do not count
	// toward the averaging divisor. By default all four colours are mixed.
	SkipSilent bool

	// Rand overrides the random source. Nil uses a freshly seeded PCG.
	Rand Rand
}

// VoiceSpec describes one voice derived from a Config.
type VoiceSpec struct {
	Kind Kind

	// Gain is the effective linear gain applied before averaging.
	Gain float32
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid mixer configuration")

	// ErrUnsupportedFormat indicates an output sample format with no converter.
	ErrUnsupportedFormat = sampleconv.ErrUnsupportedFormat
)

// ClampPercentage maps a percentage to a linear gain:
// values <= 0 give 0, values >= 100 give 1, others are divided by 100.
func ClampPercentage(v float32) float32 {
	switch {
	case v <= 0:
		return 0
	case v >= percentFull:
		return 1
	default:
		return v / percentFull
	}
}

// Validate checks that every volume is a finite number.
func (c *Config) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"white", c.White},
		{"pink", c.Pink},
		{"brown", c.Brown},
		{"blue", c.Blue},
		{"master", c.Master},
	}
	for _, f := range fields {
		if math.IsNaN(float64(f.v)) {
			return fmt.Errorf("%w: %s volume is NaN", ErrInvalidConfig, f.name)
		}
	}
	return nil
}

// MasterGain returns the linear master gain.
func (c *Config) MasterGain() float32 {
	return ClampPercentage(c.Master) / masterAttenuation
}

// VoiceSpecs returns the voices in mixing order: brown, pink, white, blue.
// Brown receives a fixed boost to compensate for its quieter signal.
func (c *Config) VoiceSpecs() []VoiceSpec {
	specs := []VoiceSpec{
		{Kind: Brown, Gain: ClampPercentage(c.Brown) * brownBoost},
		{Kind: Pink, Gain: ClampPercentage(c.Pink)},
		{Kind: White, Gain: ClampPercentage(c.White)},
		{Kind: Blue, Gain: ClampPercentage(c.Blue)},
	}
	if !c.SkipSilent {
		return specs
	}

	active := specs[:0]
	for _, s := range specs {
		if s.Gain > 0 {
			active = append(active, s)
		}
	}
	return active
}

// New builds a Mixer from the configuration.
func New(config *Config) (Mixer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	specs := config.VoiceSpecs()
	voices := make([]mixer.Voice, len(specs))
	for i, s := range specs {
		v, err := mixer.NewVoice(s.Kind, s.Gain)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		voices[i] = v
	}

	var r noise.Rand = noise.NewRand()
	if config.Rand != nil {
		r = config.Rand
	}

	session, err := mixer.NewSession(voices, config.MasterGain(), r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return session, nil
}

// ParseFormat maps a format name such as "f32", "i16" or "u16" to a Format.
func ParseFormat(s string) (Format, error) {
	return sampleconv.ParseFormat(s)
}
