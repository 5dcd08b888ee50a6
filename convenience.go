package noisemix

import (
	"fmt"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
	"github.com/tphakala/go-noise-mixer/internal/simdops"
)

// NewSingle creates a mixer playing one colour at the given volume percentage
// with the master at full scale.
func NewSingle(kind Kind, volume float32) (Mixer, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown noise kind %d", ErrInvalidConfig, uint8(kind))
	}
	config := &Config{Master: percentFull, SkipSilent: true}
	switch kind {
	case White:
		config.White = volume
	case Pink:
		config.Pink = volume
	case Brown:
		config.Brown = volume
	case Blue:
		config.Blue = volume
	}
	return New(config)
}

// RenderMono is a convenience function that builds a mixer and renders
// frames mono samples.
func RenderMono(config *Config, frames int) ([]float32, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: negative frame count", ErrInvalidConfig)
	}
	m, err := New(config)
	if err != nil {
		return nil, err
	}
	out := make([]float32, frames)
	m.Fill(out)
	return out, nil
}

// RenderInterleaved renders frames of interleaved float32 audio with the
// mono mix duplicated across channels.
func RenderInterleaved(config *Config, frames, channels int) ([]float32, error) {
	if channels < monoChannels {
		return nil, fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}
	mono, err := RenderMono(config, frames)
	if err != nil {
		return nil, err
	}

	switch channels {
	case monoChannels:
		return mono, nil
	case stereoChannels:
		out := make([]float32, frames*stereoChannels)
		if frames > 0 {
			simdops.Float32Ops().Interleave2(out, mono, mono)
		}
		return out, nil
	default:
		out := make([]float32, frames*channels)
		for i, s := range mono {
			sampleconv.WriteFrame(out[i*channels:(i+1)*channels], s, sampleconv.ToFloat32)
		}
		return out, nil
	}
}

// Encode renders a mixer into the given integer or float format,
// duplicating each frame across channels. The format must be paired with
// the element type: float32/f32, int16/i16, uint16/u16, uint8/u8,
// int32/i24|i32, or int with any integer format.
func Encode[T sampleconv.Sample](m Mixer, format Format, dst []T, channels int) (int, error) {
	conv, err := sampleconv.ConverterFor[T](format)
	if err != nil {
		return 0, err
	}
	if channels < monoChannels {
		return 0, fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}
	return sampleconv.FillInterleaved(dst, channels, m, conv), nil
}
