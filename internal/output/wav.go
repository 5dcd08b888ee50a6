package output

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// WAVConfig describes an offline render.
type WAVConfig struct {
	SampleRate int
	Channels   int

	// BitDepth is 8, 16, 24 or 32 (integer PCM).
	BitDepth int

	// Frames is the number of frames to render.
	Frames int64

	// Progress, if set, is called after every chunk with the frames written so far.
	Progress func(written int64)
}

// Validate checks the render configuration.
func (c *WAVConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	if c.Channels < 1 || c.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be 1-%d", ErrInvalidConfig, maxChannels)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frame count must be positive", ErrInvalidConfig)
	}
	_, err := sampleconv.FormatForBitDepth(c.BitDepth)
	return err
}

// WriteWAV renders cfg.Frames frames from src into w as PCM WAV.
// It returns the number of frames written.
func WriteWAV(w io.WriteSeeker, src sampleconv.FrameSource, cfg WAVConfig) (written int64, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	format, err := sampleconv.FormatForBitDepth(cfg.BitDepth)
	if err != nil {
		return 0, err
	}
	conv, err := sampleconv.ConverterFor[int](format)
	if err != nil {
		return 0, err
	}

	enc := wav.NewEncoder(w, cfg.SampleRate, cfg.BitDepth, cfg.Channels, wavFormatPCM)
	defer func() {
		if closeErr := enc.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to finalize WAV: %w", closeErr)
		}
	}()

	buf := &audio.IntBuffer{
		Data: make([]int, renderChunkFrames*cfg.Channels),
		Format: &audio.Format{
			NumChannels: cfg.Channels,
			SampleRate:  cfg.SampleRate,
		},
		SourceBitDepth: cfg.BitDepth,
	}

	for written < cfg.Frames {
		chunk := min(int64(renderChunkFrames), cfg.Frames-written)
		buf.Data = buf.Data[:int(chunk)*cfg.Channels]
		n := sampleconv.FillInterleaved(buf.Data, cfg.Channels, src, conv)

		if err := enc.Write(buf); err != nil {
			return written, fmt.Errorf("failed to write audio data: %w", err)
		}
		written += int64(n)
		if cfg.Progress != nil {
			cfg.Progress(written)
		}
	}
	return written, nil
}

// CreateWAV renders into a new file at path.
func CreateWAV(path string, src sampleconv.FrameSource, cfg WAVConfig) (written int64, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()
	return WriteWAV(f, src, cfg)
}
