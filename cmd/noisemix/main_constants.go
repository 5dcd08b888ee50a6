package main

import "time"

// Default command-line flag values
const (
	defaultRate     = 48000 // DAT/DVD sample rate
	defaultChannels = 2     // Stereo
	defaultFormat   = "f32"
	defaultBackend  = backendOto
	defaultDuration = 10 * time.Second
	defaultBits     = 16
)

// Output backends
const (
	backendOto       = "oto"
	backendPortAudio = "portaudio"
)

// Volume flags default to silence
const minVolume = 0.0

// Rendering
const (
	percentScale     = 100
	progressInterval = 10 // Print progress every N%
)
