//go:build portaudio

package output

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// PortAudio plays a frame source through the default PortAudio device.
// PortAudio calls the stream callback on its own real-time thread; the
// callback fills interleaved frames and never blocks.
type PortAudio struct {
	stream *portaudio.Stream
	errs   chan error

	started bool
	closed  bool
	mutex   sync.Mutex
}

// NewPortAudio initializes PortAudio and opens the default output stream.
func NewPortAudio(src sampleconv.FrameSource, cfg Config) (*PortAudio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &PortAudio{errs: make(chan error, errorQueueSize)}
	callback, err := p.callbackFor(src, cfg)
	if err != nil {
		return nil, err
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, cfg.Channels, float64(cfg.SampleRate), cfg.FramesPerBuffer, callback)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("failed to open portaudio stream: %w", err)
	}
	p.stream = stream
	return p, nil
}

// callbackFor builds a typed stream callback. The conversion is chosen
// here so an unsupported format fails before the stream is opened.
func (p *PortAudio) callbackFor(src sampleconv.FrameSource, cfg Config) (any, error) {
	channels := cfg.Channels
	switch cfg.Format {
	case sampleconv.FormatFloat32:
		conv, err := sampleconv.ConverterFor[float32](cfg.Format)
		if err != nil {
			return nil, err
		}
		return func(out []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			p.checkFlags(flags)
			sampleconv.FillInterleaved(out, channels, src, conv)
		}, nil
	case sampleconv.FormatInt16:
		conv, err := sampleconv.ConverterFor[int16](cfg.Format)
		if err != nil {
			return nil, err
		}
		return func(out []int16, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			p.checkFlags(flags)
			sampleconv.FillInterleaved(out, channels, src, conv)
		}, nil
	case sampleconv.FormatInt32:
		conv, err := sampleconv.ConverterFor[int32](cfg.Format)
		if err != nil {
			return nil, err
		}
		return func(out []int32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			p.checkFlags(flags)
			sampleconv.FillInterleaved(out, channels, src, conv)
		}, nil
	case sampleconv.FormatUint8:
		conv, err := sampleconv.ConverterFor[uint8](cfg.Format)
		if err != nil {
			return nil, err
		}
		return func(out []uint8, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			p.checkFlags(flags)
			sampleconv.FillInterleaved(out, channels, src, conv)
		}, nil
	default:
		return nil, fmt.Errorf("%w: portaudio cannot play %s", sampleconv.ErrUnsupportedFormat, cfg.Format)
	}
}

func (p *PortAudio) checkFlags(flags portaudio.StreamCallbackFlags) {
	if flags&portaudio.OutputUnderflow != 0 {
		reportError(p.errs, ErrUnderflow)
	}
	if flags&portaudio.OutputOverflow != 0 {
		reportError(p.errs, ErrOverflow)
	}
}

// Start begins playback.
func (p *PortAudio) Start() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return fmt.Errorf("%w: output is closed", ErrInvalidConfig)
	}
	if p.started {
		return nil
	}
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("failed to start portaudio stream: %w", err)
	}
	p.started = true
	return nil
}

// Close stops the stream and terminates PortAudio.
func (p *PortAudio) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.started {
		if err := p.stream.Stop(); err != nil {
			reportError(p.errs, fmt.Errorf("portaudio stop: %w", err))
		}
	}
	closeErr := p.stream.Close()
	if err := portaudio.Terminate(); err != nil && closeErr == nil {
		closeErr = err
	}
	return closeErr
}

// Errors returns the device error channel.
func (p *PortAudio) Errors() <-chan error {
	return p.errs
}
