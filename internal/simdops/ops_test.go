package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The mixer only ever hands these ops short vectors: up to 4 voices and 7 pink taps.
func TestFloat32Ops_SmallVectors(t *testing.T) {
	ops := Float32Ops()

	samples := []float32{0.5, -0.25, 1, 0}
	volumes := []float32{1, 0.5, 0.25, 1}
	assert.InDelta(t, 0.625, ops.DotProductUnsafe(samples, volumes), 1e-6)

	taps := []float32{0.1, 0.2, 0.3, 0.4, -0.5, -0.6, 0.7}
	assert.InDelta(t, 0.6, ops.Sum(taps), 1e-6)

	single := []float32{0.75}
	assert.InDelta(t, 0.375, ops.DotProductUnsafe(single, []float32{0.5}), 1e-6)
}

func TestFloat32Ops_ScaleAndInterleave(t *testing.T) {
	ops := Float32Ops()

	src := []float32{1, -1, 0.5}
	dst := make([]float32, len(src))
	ops.Scale(dst, src, 0.5)
	assert.InDeltaSlice(t, []float32{0.5, -0.5, 0.25}, dst, 1e-6)

	stereo := make([]float32, 2*len(src))
	ops.Interleave2(stereo, src, src)
	assert.Equal(t, []float32{1, 1, -1, -1, 0.5, 0.5}, stereo)
}

func TestFloat64Ops_Sum(t *testing.T) {
	ops := Float64Ops()
	assert.InDelta(t, 6.0, ops.Sum([]float64{1, 2, 3}), 1e-12)
}

func BenchmarkDotProduct4Voices(b *testing.B) {
	ops := Float32Ops()
	samples := []float32{0.1, 0.2, 0.3, 0.4}
	volumes := []float32{1, 0.5, 0.25, 0.125}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(samples, volumes)
	}
}

func BenchmarkSum7Taps(b *testing.B) {
	ops := Float32Ops()
	taps := make([]float32, 7)
	for i := range taps {
		taps[i] = float32(i) * 0.1
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Sum(taps)
	}
}
