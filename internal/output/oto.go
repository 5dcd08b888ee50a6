//go:build !headless

package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// Oto plays a frame source through the default device using oto.
// The player pulls encoded bytes from an Encoder on oto's own goroutine.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	enc    *sampleconv.Encoder

	errs chan error
	done chan struct{}

	started bool
	closed  bool
	mutex   sync.Mutex // Only for Start/Close
}

// NewOto opens the default device and prepares a player for src.
// Unsupported formats fail here, before anything is played.
func NewOto(src sampleconv.FrameSource, cfg Config) (*Oto, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := otoFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	enc, err := sampleconv.NewEncoder(src, cfg.Format, cfg.Channels)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       format,
		BufferSize:   cfg.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open oto context: %w", err)
	}
	<-ready

	return &Oto{
		ctx:    ctx,
		player: ctx.NewPlayer(enc),
		enc:    enc,
		errs:   make(chan error, errorQueueSize),
		done:   make(chan struct{}),
	}, nil
}

// Start begins playback and starts watching for device errors.
func (o *Oto) Start() error {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.closed {
		return fmt.Errorf("%w: output is closed", ErrInvalidConfig)
	}
	if o.started {
		return nil
	}
	o.player.Play()
	o.started = true
	go o.watch()
	return nil
}

// Close stops playback and releases the player.
func (o *Oto) Close() error {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	close(o.done)
	return o.player.Close()
}

// Errors returns the device error channel.
func (o *Oto) Errors() <-chan error {
	return o.errs
}

// watch polls the player and context for errors. Each distinct error is
// reported once; oto does not recover from them and neither do we.
func (o *Oto) watch() {
	ticker := time.NewTicker(errorPollInterval)
	defer ticker.Stop()

	var lastPlayer, lastCtx error
	for {
		select {
		case <-o.done:
			return
		case <-ticker.C:
			if err := o.player.Err(); err != nil && err != lastPlayer {
				lastPlayer = err
				reportError(o.errs, fmt.Errorf("oto player: %w", err))
			}
			if err := o.ctx.Err(); err != nil && err != lastCtx {
				lastCtx = err
				reportError(o.errs, fmt.Errorf("oto context: %w", err))
			}
		}
	}
}

// otoFormat maps a sample format to the oto wire format.
func otoFormat(f sampleconv.Format) (oto.Format, error) {
	if err := checkOtoFormat(f); err != nil {
		return 0, err
	}
	switch f {
	case sampleconv.FormatInt16:
		return oto.FormatSignedInt16LE, nil
	case sampleconv.FormatUint8:
		return oto.FormatUnsignedInt8, nil
	default:
		return oto.FormatFloat32LE, nil
	}
}
