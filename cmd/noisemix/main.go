// Command noisemix plays a mix of white, pink, brown and blue noise.
//
// Usage:
//
//	noisemix -pink 60 -brown 40 -m 50               # Play until interrupted
//	noisemix -w 30 -b 30 -m 80 -format i16          # 16-bit device stream
//	noisemix -r 100 -m 60 -backend portaudio        # PortAudio build only
//	noisemix -p 100 -m 100 -render pink.wav -duration 30s -bits 24
//
// Volumes are percentages. The master volume is attenuated ten times more
// than the per-colour volumes, and brown noise is boosted to compensate for
// its quieter signal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	noisemix "github.com/tphakala/go-noise-mixer"
	"github.com/tphakala/go-noise-mixer/internal/output"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	// Start CPU profiling if requested
	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	m, err := noisemix.New(opts.mixConfig())
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Volumes: white=%g%% pink=%g%% brown=%g%% blue=%g%% master=%g%%",
			opts.white, opts.pink, opts.brown, opts.blue, opts.master)
		log.Printf("Voices mixed: %d", m.Voices())
	}

	if opts.render != "" {
		return renderToFile(m, opts)
	}
	return play(m, opts)
}

// play streams the mix to the selected device until SIGINT or SIGTERM.
func play(m noisemix.Mixer, opts *options) error {
	out, err := openOutput(m, opts)
	if err != nil {
		return err
	}

	if err := out.Start(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to start %s output: %w", opts.backend, err)
	}

	if opts.verbose {
		log.Printf("Playing via %s: %d Hz, %d channels, %s",
			opts.backend, opts.rate, opts.channels, opts.format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	waitForShutdown(ctx, out)

	if opts.verbose {
		log.Printf("Stopping")
	}
	return out.Close()
}

// waitForShutdown logs stream errors until ctx is cancelled.
// Stream errors are not fatal; the device keeps pulling samples.
func waitForShutdown(ctx context.Context, out output.Output) {
	errs := out.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errs:
			if err == nil {
				continue
			}
			if errors.Is(err, output.ErrUnderflow) || errors.Is(err, output.ErrOverflow) {
				log.Printf("Stream warning: %v", err)
				continue
			}
			log.Printf("Stream error: %v", err)
		}
	}
}

// renderToFile writes the mix to a WAV file instead of a device.
func renderToFile(m noisemix.Mixer, opts *options) error {
	cfg := opts.wavConfig()

	if opts.verbose {
		lastPct := -progressInterval
		cfg.Progress = func(written int64) {
			pct := int(written * percentScale / cfg.Frames)
			if pct >= lastPct+progressInterval {
				log.Printf("Progress: %d%%", pct)
				lastPct = pct
			}
		}
	}

	start := time.Now()
	written, err := output.CreateWAV(opts.render, m, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s\n", opts.render)
	fmt.Printf("  %d frames at %d Hz (%d channels, %d-bit)\n",
		written, cfg.SampleRate, cfg.Channels, cfg.BitDepth)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(written)/float64(cfg.SampleRate)/elapsed.Seconds())
	return nil
}
