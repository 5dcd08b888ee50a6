package spectrum

// Segment limits for the averaged periodogram.
const (
	// MinSegment is the smallest FFT segment accepted by Welch.
	MinSegment = 64

	// DefaultSegment gives ~47 Hz bins at 48 kHz.
	DefaultSegment = 1024
)

// Slope fitting.
const (
	// minFitBins is the fewest bins a slope fit will accept.
	minFitBins = 3

	// decibelScale converts a power ratio to dB.
	decibelScale = 10.0
)
