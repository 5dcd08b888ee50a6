package output

import "time"

// Stream limits.
const (
	maxChannels = 32
)

// Device defaults.
const (
	// errorQueueSize is the capacity of the async error channel.
	errorQueueSize = 8

	// errorPollInterval is how often player state is checked for errors.
	errorPollInterval = 250 * time.Millisecond
)

// WAV rendering.
const (
	// renderChunkFrames is the number of frames converted per encoder write.
	renderChunkFrames = 4096

	// wavFormatPCM is the WAVE format tag for integer PCM.
	wavFormatPCM = 1
)
