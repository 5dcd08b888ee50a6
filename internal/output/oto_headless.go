//go:build headless

package output

import (
	"fmt"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// Oto is unavailable in headless builds.
type Oto struct{}

// NewOto validates the configuration and then reports that no device backend is compiled in.
func NewOto(src sampleconv.FrameSource, cfg Config) (*Oto, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkOtoFormat(cfg.Format); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: oto (headless build)", ErrBackendUnavailable)
}

// Start always fails.
func (o *Oto) Start() error { return ErrBackendUnavailable }

// Close is a no-op.
func (o *Oto) Close() error { return nil }

// Errors returns a nil channel.
func (o *Oto) Errors() <-chan error { return nil }
