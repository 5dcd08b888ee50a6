package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	noisemix "github.com/tphakala/go-noise-mixer"
	"github.com/tphakala/go-noise-mixer/internal/output"
	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

var errUsage = errors.New("invalid arguments")

// options holds the parsed command line.
type options struct {
	white, pink, brown, blue, master float64

	rate     int
	channels int
	format   sampleconv.Format
	backend  string

	render   string
	duration time.Duration
	bits     int

	verbose    bool
	cpuprofile string
}

// parseFlags registers and parses all flags on fs.
// Each volume has a long name and a one-letter alias.
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	volume := func(p *float64, long, short, colour string) {
		usage := fmt.Sprintf("%s volume in percent (0-100)", colour)
		fs.Float64Var(p, long, minVolume, usage)
		fs.Float64Var(p, short, minVolume, usage+" (shorthand)")
	}
	volume(&opts.white, "white", "w", "White noise")
	volume(&opts.brown, "brown", "r", "Brown noise")
	volume(&opts.pink, "pink", "p", "Pink noise")
	volume(&opts.blue, "blue", "b", "Blue noise")
	volume(&opts.master, "master-volume", "m", "Master")

	fs.IntVar(&opts.rate, "rate", defaultRate, "Output sample rate in Hz")
	fs.IntVar(&opts.channels, "channels", defaultChannels, "Number of output channels")
	format := fs.String("format", defaultFormat, "Device sample format: f32, i16, u16, u8, i32")
	fs.StringVar(&opts.backend, "backend", defaultBackend, "Audio backend: oto, portaudio")
	fs.StringVar(&opts.render, "render", "", "Render to this WAV file instead of playing")
	fs.DurationVar(&opts.duration, "duration", defaultDuration, "Render duration (with -render)")
	fs.IntVar(&opts.bits, "bits", defaultBits, "WAV bit depth: 8, 16, 24, 32 (with -render)")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.StringVar(&opts.cpuprofile, "cpuprofile", "", "Write CPU profile to file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	f, err := sampleconv.ParseFormat(*format)
	if err != nil {
		return nil, err
	}
	opts.format = f
	opts.backend = strings.ToLower(opts.backend)

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// validate rejects values that cannot be clamped into something sensible.
func (o *options) validate() error {
	for _, v := range []float64{o.white, o.pink, o.brown, o.blue, o.master} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: volumes must be finite numbers", errUsage)
		}
	}
	if o.rate <= 0 {
		return fmt.Errorf("%w: rate must be positive", errUsage)
	}
	if o.channels < 1 {
		return fmt.Errorf("%w: channels must be at least 1", errUsage)
	}
	switch o.backend {
	case backendOto, backendPortAudio:
	default:
		return fmt.Errorf("%w: unknown backend %q", errUsage, o.backend)
	}
	if o.render != "" && o.duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", errUsage)
	}
	return nil
}

// mixConfig maps the volume flags onto a mixer configuration.
// Out-of-range percentages are clamped by the mixer.
func (o *options) mixConfig() *noisemix.Config {
	return &noisemix.Config{
		White:  float32(o.white),
		Pink:   float32(o.pink),
		Brown:  float32(o.brown),
		Blue:   float32(o.blue),
		Master: float32(o.master),
	}
}

// streamConfig describes the device stream.
func (o *options) streamConfig() output.Config {
	return output.Config{
		SampleRate: o.rate,
		Channels:   o.channels,
		Format:     o.format,
	}
}

// wavConfig describes an offline render.
func (o *options) wavConfig() output.WAVConfig {
	return output.WAVConfig{
		SampleRate: o.rate,
		Channels:   o.channels,
		BitDepth:   o.bits,
		Frames:     int64(o.duration.Seconds() * float64(o.rate)),
	}
}

// openOutput opens the selected backend with m as its frame source.
func openOutput(m noisemix.Mixer, o *options) (output.Output, error) {
	cfg := o.streamConfig()
	switch o.backend {
	case backendPortAudio:
		pa, err := output.NewPortAudio(m, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open portaudio output: %w", err)
		}
		return pa, nil
	default:
		ot, err := output.NewOto(m, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open oto output: %w", err)
		}
		return ot, nil
	}
}
