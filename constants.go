package noisemix

// Volume scaling.
const (
	// percentFull is the percentage mapped to unity gain.
	percentFull = 100.0

	// masterAttenuation divides the master gain on top of the percentage scaling.
	masterAttenuation = 10.0

	// brownBoost compensates for the heavily clamped brown walk.
	brownBoost = 33.0
)

// Channel constants.
const (
	monoChannels   = 1
	stereoChannels = 2
)

// RateDAT is the DAT/DVD sample rate, the usual device default.
const RateDAT = 48000
