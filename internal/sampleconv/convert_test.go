package sampleconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-noise-mixer/internal/testutil"
)

// constSource yields the same sample forever.
type constSource float32

func (c constSource) Mix() float32 { return float32(c) }

// seqSource yields its values in order, then zeros.
type seqSource struct {
	values []float32
	calls  int
}

func (s *seqSource) Mix() float32 {
	s.calls++
	if s.calls > len(s.values) {
		return 0
	}
	return s.values[s.calls-1]
}

func TestConverters_ZeroMapsToMidpoint(t *testing.T) {
	assert.Equal(t, float32(0), ToFloat32(0))
	assert.Equal(t, int16(0), ToInt16(0))
	assert.Equal(t, uint16(32768), ToUint16(0))
	assert.Equal(t, uint8(128), ToUint8(0))
	assert.Equal(t, int32(0), ToInt24(0))
	assert.Equal(t, int32(0), ToInt32(0))
}

func TestConverters_FullScaleMapsToMax(t *testing.T) {
	assert.Equal(t, float32(1), ToFloat32(1))
	assert.Equal(t, int16(math.MaxInt16), ToInt16(1))
	assert.Equal(t, uint16(math.MaxUint16), ToUint16(1))
	assert.Equal(t, uint8(math.MaxUint8), ToUint8(1))
	assert.Equal(t, int32(8388607), ToInt24(1))
	assert.Equal(t, int32(math.MaxInt32), ToInt32(1))
}

func TestConverters_NegativeFullScale(t *testing.T) {
	assert.Equal(t, float32(-1), ToFloat32(-1))
	assert.Equal(t, int16(-math.MaxInt16), ToInt16(-1))
	assert.Equal(t, uint16(1), ToUint16(-1))
	assert.Equal(t, uint8(1), ToUint8(-1))
	assert.Equal(t, int32(-8388607), ToInt24(-1))
	assert.Equal(t, int32(-math.MaxInt32), ToInt32(-1))
}

func TestConverters_Monotonic(t *testing.T) {
	prev16, prevU16, prevU8 := ToInt16(-1), ToUint16(-1), ToUint8(-1)
	for i := 1; i <= 200; i++ {
		s := float32(-1 + float64(i)*0.01)
		assert.GreaterOrEqual(t, ToInt16(s), prev16)
		assert.GreaterOrEqual(t, ToUint16(s), prevU16)
		assert.GreaterOrEqual(t, ToUint8(s), prevU8)
		prev16, prevU16, prevU8 = ToInt16(s), ToUint16(s), ToUint8(s)
	}
}

func TestConverterFor_Pairings(t *testing.T) {
	f32, err := ConverterFor[float32](FormatFloat32)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f32(0.5))

	i16, err := ConverterFor[int16](FormatInt16)
	require.NoError(t, err)
	assert.Equal(t, int16(math.MaxInt16), i16(1))

	u16, err := ConverterFor[uint16](FormatUint16)
	require.NoError(t, err)
	assert.Equal(t, uint16(32768), u16(0))

	u8, err := ConverterFor[uint8](FormatUint8)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), u8(0))

	i24, err := ConverterFor[int32](FormatInt24)
	require.NoError(t, err)
	assert.Equal(t, int32(8388607), i24(1))

	i32, err := ConverterFor[int32](FormatInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), i32(1))

	for _, f := range []Format{FormatInt16, FormatUint16, FormatUint8, FormatInt24, FormatInt32} {
		conv, err := ConverterFor[int](f)
		require.NoError(t, err, f.String())
		assert.NotZero(t, conv(1), f.String())
	}
}

func TestConverterFor_Mismatch(t *testing.T) {
	_, err := ConverterFor[int16](FormatFloat32)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ConverterFor[int](FormatFloat32)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ConverterFor[float32](FormatUnknown)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ConverterFor[int32](Format(200))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFrame_ReplicatesAcrossChannels(t *testing.T) {
	calls := 0
	conv := func(s float32) int16 {
		calls++
		return ToInt16(s)
	}

	for _, channels := range []int{1, 2, 6, 8} {
		calls = 0
		frame := make([]int16, channels)
		WriteFrame(frame, 0.5, conv)
		assert.Equal(t, 1, calls, "converted once per frame")
		testutil.AssertAllEqual(t, frame, ToInt16(0.5))
	}
}

func TestFillInterleaved_OneSourceSamplePerFrame(t *testing.T) {
	src := &seqSource{values: []float32{0.1, -0.2, 0.3}}
	conv, err := ConverterFor[float32](FormatFloat32)
	require.NoError(t, err)

	dst := make([]float32, 7) // 3 stereo frames + 1 spare slot
	dst[6] = 42
	n := FillInterleaved(dst, 2, src, conv)

	assert.Equal(t, 3, n)
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, []float32{0.1, 0.1, -0.2, -0.2, 0.3, 0.3, 42}, dst)

	assert.Zero(t, FillInterleaved(dst, 0, src, conv))
}

func TestFillInterleaved_AllFormatsAllChannelsEqual(t *testing.T) {
	const channels = 4
	check := func(t *testing.T, name string, fn func() bool) {
		t.Helper()
		assert.True(t, fn(), name)
	}

	check(t, "u16", func() bool {
		conv, _ := ConverterFor[uint16](FormatUint16)
		dst := make([]uint16, channels*16)
		FillInterleaved(dst, channels, constSource(1), conv)
		return testutil.AssertAllEqual(t, dst, uint16(math.MaxUint16))
	})
	check(t, "u8", func() bool {
		conv, _ := ConverterFor[uint8](FormatUint8)
		dst := make([]uint8, channels*16)
		FillInterleaved(dst, channels, constSource(0), conv)
		return testutil.AssertAllEqual(t, dst, uint8(128))
	})
	check(t, "i32", func() bool {
		conv, _ := ConverterFor[int32](FormatInt32)
		dst := make([]int32, channels*16)
		FillInterleaved(dst, channels, constSource(-1), conv)
		return testutil.AssertAllEqual(t, dst, int32(-math.MaxInt32))
	})
}
