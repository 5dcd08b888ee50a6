package sampleconv

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoder streams little-endian interleaved frames from a FrameSource.
// Each frame is converted and packed once, then the packed slot is copied
// into every channel. Encoder implements io.Reader so it can back
// pull-style players; reads may end mid-frame and resume on the next call.
//
// An Encoder is owned by the goroutine that reads from it.
type Encoder struct {
	src      FrameSource
	format   Format
	channels int
	bps      int

	frame []byte // one packed frame
	off   int    // bytes of frame already handed out
	pack  func(dst []byte, s float32)
}

// NewEncoder returns an Encoder for the given format and channel count.
func NewEncoder(src FrameSource, format Format, channels int) (*Encoder, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: frame source is nil", ErrUnsupportedFormat)
	}
	if channels < 1 || channels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels (want 1-%d)", ErrUnsupportedFormat, channels, maxChannels)
	}
	pack, err := packerFor(format)
	if err != nil {
		return nil, err
	}

	bps := format.BytesPerSample()
	frame := make([]byte, bps*channels)
	return &Encoder{
		src:      src,
		format:   format,
		channels: channels,
		bps:      bps,
		frame:    frame,
		off:      len(frame),
		pack:     pack,
	}, nil
}

// Format returns the output format.
func (e *Encoder) Format() Format { return e.format }

// Channels returns the channel count.
func (e *Encoder) Channels() int { return e.channels }

// FrameSize returns the size of one packed frame in bytes.
func (e *Encoder) FrameSize() int { return len(e.frame) }

// Read fills p completely with encoded audio. It never returns an error.
func (e *Encoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if e.off == len(e.frame) {
			e.encodeFrame(e.src.Mix())
		}
		c := copy(p[n:], e.frame[e.off:])
		e.off += c
		n += c
	}
	return n, nil
}

// EncodeFrame packs s into dst, replicated across all channels.
// dst must be at least FrameSize bytes.
func (e *Encoder) EncodeFrame(dst []byte, s float32) {
	e.pack(dst[:e.bps], s)
	for ch := 1; ch < e.channels; ch++ {
		copy(dst[ch*e.bps:(ch+1)*e.bps], dst[:e.bps])
	}
}

func (e *Encoder) encodeFrame(s float32) {
	e.EncodeFrame(e.frame, s)
	e.off = 0
}

func packerFor(f Format) (func(dst []byte, s float32), error) {
	switch f {
	case FormatFloat32:
		return func(dst []byte, s float32) {
			binary.LittleEndian.PutUint32(dst, math.Float32bits(s))
		}, nil
	case FormatInt16:
		return func(dst []byte, s float32) {
			binary.LittleEndian.PutUint16(dst, uint16(ToInt16(s)))
		}, nil
	case FormatUint16:
		return func(dst []byte, s float32) {
			binary.LittleEndian.PutUint16(dst, ToUint16(s))
		}, nil
	case FormatUint8:
		return func(dst []byte, s float32) {
			dst[0] = ToUint8(s)
		}, nil
	case FormatInt24:
		return func(dst []byte, s float32) {
			v := ToInt24(s)
			dst[0] = byte(v)
			dst[1] = byte(v >> bitShift8)
			dst[2] = byte(v >> bitShift16)
		}, nil
	case FormatInt32:
		return func(dst []byte, s float32) {
			binary.LittleEndian.PutUint32(dst, uint32(ToInt32(s)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}
