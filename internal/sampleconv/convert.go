package sampleconv

import "fmt"

// Sample is the set of native element types a frame can hold.
type Sample interface {
	float32 | int16 | uint16 | uint8 | int32 | int
}

// FrameSource produces one normalized mono sample per call.
// *mixer.Session satisfies it.
type FrameSource interface {
	Mix() float32
}

// ToFloat32 returns s unchanged.
func ToFloat32(s float32) float32 { return s }

// ToInt16 scales s to signed 16-bit.
func ToInt16(s float32) int16 { return int16(s * maxInt16) }

// ToUint16 scales s to unsigned 16-bit around the 32768 midpoint.
func ToUint16(s float32) uint16 { return uint16(midUint16 + s*maxInt16) }

// ToUint8 scales s to unsigned 8-bit around the 128 midpoint.
func ToUint8(s float32) uint8 { return uint8(midUint8 + s*maxInt8) }

// ToInt24 scales s to the signed 24-bit range.
func ToInt24(s float32) int32 { return int32(float64(s) * maxInt24) }

// ToInt32 scales s to signed 32-bit.
// float64 keeps 1.0 from rounding past MaxInt32.
func ToInt32(s float32) int32 { return int32(float64(s) * maxInt32) }

// ConverterFor returns the conversion from a normalized sample to element
// type T for format f. The pairing is checked once here so the per-frame
// path is a plain function call.
//
// Accepted pairings: float32/FormatFloat32, int16/FormatInt16,
// uint16/FormatUint16, uint8/FormatUint8, int32/FormatInt24|FormatInt32,
// and int with any integer format (the go-audio IntBuffer case).
func ConverterFor[T Sample](f Format) (func(float32) T, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var conv any
	var zero T
	switch any(zero).(type) {
	case float32:
		if f == FormatFloat32 {
			conv = ToFloat32
		}
	case int16:
		if f == FormatInt16 {
			conv = ToInt16
		}
	case uint16:
		if f == FormatUint16 {
			conv = ToUint16
		}
	case uint8:
		if f == FormatUint8 {
			conv = ToUint8
		}
	case int32:
		switch f {
		case FormatInt24:
			conv = ToInt24
		case FormatInt32:
			conv = ToInt32
		}
	case int:
		conv = intConverter(f)
	}

	fn, ok := conv.(func(float32) T)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be stored as %T", ErrUnsupportedFormat, f, zero)
	}
	return fn, nil
}

func intConverter(f Format) any {
	switch f {
	case FormatInt16:
		return func(s float32) int { return int(ToInt16(s)) }
	case FormatUint16:
		return func(s float32) int { return int(ToUint16(s)) }
	case FormatUint8:
		return func(s float32) int { return int(ToUint8(s)) }
	case FormatInt24:
		return func(s float32) int { return int(ToInt24(s)) }
	case FormatInt32:
		return func(s float32) int { return int(ToInt32(s)) }
	default:
		return nil
	}
}

// WriteFrame converts s once and stores the value in every channel slot of frame.
func WriteFrame[T Sample](frame []T, s float32, conv func(float32) T) {
	v := conv(s)
	for i := range frame {
		frame[i] = v
	}
}

// FillInterleaved fills dst with whole frames of the given channel count,
// pulling one sample from src per frame. A trailing partial frame is left
// untouched. It returns the number of frames written.
func FillInterleaved[T Sample](dst []T, channels int, src FrameSource, conv func(float32) T) int {
	if channels < 1 {
		return 0
	}
	frames := len(dst) / channels
	for i := range frames {
		base := i * channels
		WriteFrame(dst[base:base+channels], src.Mix(), conv)
	}
	return frames
}
