package sampleconv

// Full-scale values for linear float to integer scaling.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
	maxInt8  = 127.0

	// Midpoints of the unsigned representations (the zero level).
	midUint16 = 32768.0
	midUint8  = 128.0
)

// Byte sizes of the packed little-endian encodings.
const (
	bytesPerSample8  = 1
	bytesPerSample16 = 2
	bytesPerSample24 = 3
	bytesPerSample32 = 4
)

// Bit shift amounts for 24-bit sample encoding.
const (
	bitShift8  = 8
	bitShift16 = 16
)

// maxChannels bounds the channel count accepted by encoders.
const maxChannels = 32
