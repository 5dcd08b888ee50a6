// Package sampleconv converts normalized mono samples into device sample
// representations and replicates them across the channels of a frame.
package sampleconv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned when a sample representation has no converter.
// It is a configuration error: it is reported before any frame is produced.
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// Format identifies an output sample representation.
type Format uint8

const (
	// FormatUnknown is the zero Format and is never supported.
	FormatUnknown Format = iota

	// FormatFloat32 is 32-bit IEEE float in [-1, 1].
	FormatFloat32

	// FormatInt16 is signed 16-bit PCM.
	FormatInt16

	// FormatUint16 is unsigned 16-bit PCM with 32768 as zero.
	FormatUint16

	// FormatUint8 is unsigned 8-bit PCM with 128 as zero.
	FormatUint8

	// FormatInt24 is signed 24-bit PCM, packed in 3 bytes when encoded.
	FormatInt24

	// FormatInt32 is signed 32-bit PCM.
	FormatInt32
)

var formatNames = map[Format]string{
	FormatFloat32: "f32",
	FormatInt16:   "i16",
	FormatUint16:  "u16",
	FormatUint8:   "u8",
	FormatInt24:   "i24",
	FormatInt32:   "i32",
}

// String returns the short name of the format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// BytesPerSample returns the packed size of one sample, or 0 if unsupported.
func (f Format) BytesPerSample() int {
	switch f {
	case FormatUint8:
		return bytesPerSample8
	case FormatInt16, FormatUint16:
		return bytesPerSample16
	case FormatInt24:
		return bytesPerSample24
	case FormatFloat32, FormatInt32:
		return bytesPerSample32
	default:
		return 0
	}
}

// BitDepth returns the number of significant bits per sample.
func (f Format) BitDepth() int {
	return f.BytesPerSample() * 8
}

// IsInteger reports whether f is a fixed-point representation.
func (f Format) IsInteger() bool {
	return f.BytesPerSample() > 0 && f != FormatFloat32
}

// Validate returns ErrUnsupportedFormat for unknown formats.
func (f Format) Validate() error {
	if f.BytesPerSample() == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return nil
}

// ParseFormat maps a format name to a Format. Accepted names are the short
// forms (f32, i16, u16, u8, i24, i32) and their long spellings.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f32", "float32", "float":
		return FormatFloat32, nil
	case "i16", "int16", "s16":
		return FormatInt16, nil
	case "u16", "uint16":
		return FormatUint16, nil
	case "u8", "uint8":
		return FormatUint8, nil
	case "i24", "int24", "s24":
		return FormatInt24, nil
	case "i32", "int32", "s32":
		return FormatInt32, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatForBitDepth returns the integer PCM format used by WAV files of the given depth.
func FormatForBitDepth(bits int) (Format, error) {
	switch bits {
	case 8:
		return FormatUint8, nil
	case 16:
		return FormatInt16, nil
	case 24:
		return FormatInt24, nil
	case 32:
		return FormatInt32, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bits)
	}
}
