// Package noisemix generates and mixes coloured noise for real-time playback.
//
// Four generators are available: white (uniform), pink (mean of seven
// overlapping white taps), brown (clamped random walk) and blue (clamped
// first difference of white noise). A [Mixer] averages the configured voices,
// applies the master volume and clamps the result to [-1, 1], producing one
// mono sample per output frame.
//
// # Quick Start
//
//	m, err := noisemix.New(&noisemix.Config{
//	    Pink:   60,
//	    Brown:  20,
//	    Master: 50,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf := make([]float32, 1024)
//	m.Fill(buf)
//
// # Volumes
//
// Volumes are percentages. [ClampPercentage] maps them to linear gain
// (<= 0 is silence, >= 100 is unity). The master volume is further divided
// by ten, and brown noise is boosted 33 times before mixing to compensate
// for its heavily clamped walk. Voices are mixed in the order brown, pink,
// white, blue and averaged by voice count.
//
// # Output Formats
//
// [Encode] converts the mono mix into a device representation (float32,
// signed or unsigned 16-bit, unsigned 8-bit, 24- or 32-bit PCM) and
// duplicates the converted value into every channel of the frame. The
// conversion is chosen once; an unsupported format returns
// [ErrUnsupportedFormat] before any audio is produced.
//
// # Real-time Use
//
// A Mixer never allocates or blocks in Mix or Fill. It is not safe for
// concurrent use: construct it, hand it to the audio callback, and do not
// touch it from any other goroutine.
package noisemix
