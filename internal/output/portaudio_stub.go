//go:build !portaudio

package output

import (
	"fmt"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// PortAudio is only available when built with -tags portaudio.
type PortAudio struct{}

// NewPortAudio reports that the backend is not compiled in.
func NewPortAudio(src sampleconv.FrameSource, cfg Config) (*PortAudio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: rebuild with -tags portaudio", ErrBackendUnavailable)
}

// Start always fails.
func (p *PortAudio) Start() error { return ErrBackendUnavailable }

// Close is a no-op.
func (p *PortAudio) Close() error { return nil }

// Errors returns a nil channel.
func (p *PortAudio) Errors() <-chan error { return nil }
