// Package output connects a mixer to audio devices and files.
//
// Device outputs own the stream lifecycle: they open the device, take
// ownership of the frame source, start playback and report asynchronous
// device errors on a channel. The frame source is only ever called from the
// device's audio goroutine.
package output

import (
	"errors"
	"fmt"
	"time"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// Output is a running or startable audio stream.
type Output interface {
	// Start begins playback. Calling Start twice is a no-op.
	Start() error

	// Close stops playback and releases the device.
	Close() error

	// Errors reports device-level stream errors. The channel is never closed
	// while the output is open; errors are dropped if nobody is reading.
	Errors() <-chan error
}

// Config describes the negotiated device stream.
type Config struct {
	// SampleRate is the device sample rate in Hz.
	SampleRate int

	// Channels is the number of output channels. The mono mix is
	// duplicated into each one.
	Channels int

	// Format is the device sample representation.
	Format sampleconv.Format

	// BufferSize is the device buffer duration hint. Zero uses the backend default.
	BufferSize time.Duration

	// FramesPerBuffer is the callback block size for callback backends.
	// Zero lets the backend choose.
	FramesPerBuffer int
}

// Common errors returned by outputs.
var (
	// ErrInvalidConfig indicates an unusable stream configuration.
	ErrInvalidConfig = errors.New("invalid output configuration")

	// ErrBackendUnavailable indicates the backend was not compiled in.
	ErrBackendUnavailable = errors.New("audio backend not available in this build")

	// ErrUnderflow is reported when the device ran out of samples.
	ErrUnderflow = errors.New("output underflow")

	// ErrOverflow is reported when the device dropped samples.
	ErrOverflow = errors.New("output overflow")
)

// Validate checks the stream configuration.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	if c.Channels < 1 || c.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be 1-%d", ErrInvalidConfig, maxChannels)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size must not be negative", ErrInvalidConfig)
	}
	if c.FramesPerBuffer < 0 {
		return fmt.Errorf("%w: frames per buffer must not be negative", ErrInvalidConfig)
	}
	return c.Format.Validate()
}

// reportError delivers err without blocking the caller.
func reportError(errs chan<- error, err error) {
	select {
	case errs <- err:
	default:
	}
}
