package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-noise-mixer/internal/noise"
	"github.com/tphakala/go-noise-mixer/internal/testutil"
)

func whiteVoices(t *testing.T, n int, volume float32) []Voice {
	t.Helper()
	voices := make([]Voice, n)
	for i := range voices {
		v, err := NewVoice(noise.White, volume)
		require.NoError(t, err)
		voices[i] = v
	}
	return voices
}

func TestMix_IdenticalVoicesCancelCount(t *testing.T) {
	tests := []struct {
		name           string
		sample, volume float32
		master         float32
	}{
		{"half", 0.5, 0.8, 0.1},
		{"negative", -0.9, 1.0, 1.0},
		{"silent master", 0.7, 1.0, 0.0},
		{"full", 0.999, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(whiteVoices(t, 3, tt.volume), tt.master, testutil.ConstRand(tt.sample))
			require.NoError(t, err)

			want := tt.sample * tt.volume * tt.master
			assert.InDelta(t, want, s.Mix(), testutil.DefaultTolerance)
		})
	}
}

func TestMix_ClampsBoostedVoices(t *testing.T) {
	// Gains above 1 (the brown boost) can push the average past full scale.
	s, err := NewSession(whiteVoices(t, 2, 33), 1, testutil.ConstRand(0.9))
	require.NoError(t, err)
	assert.Equal(t, float32(1), s.Mix())

	s, err = NewSession(whiteVoices(t, 2, 33), 1, testutil.ConstRand(-0.9))
	require.NoError(t, err)
	assert.Equal(t, float32(-1), s.Mix())
}

func TestMix_NoVoicesIsSilence(t *testing.T) {
	for _, master := range []float32{0, 0.05, 1} {
		r := &testutil.CountingRand{Next: testutil.ConstRand(1)}
		s, err := NewSession(nil, master, r)
		require.NoError(t, err)
		assert.Equal(t, float32(0), s.Mix())
		assert.Zero(t, r.N, "no draws without voices")
	}
}

func TestMix_AveragesByVoiceCount(t *testing.T) {
	voices := []Voice{
		{Source: noise.MustNew(noise.White), Volume: 1},
		{Source: noise.MustNew(noise.White), Volume: 0},
	}
	s, err := NewSession(voices, 1, testutil.NewSequenceRand(0.8, 0.8))
	require.NoError(t, err)

	// A muted voice still counts toward the divisor.
	assert.InDelta(t, 0.4, s.Mix(), testutil.DefaultTolerance)
}

func TestMix_SamplesEveryVoiceOncePerFrameInOrder(t *testing.T) {
	voices := []Voice{
		{Source: noise.MustNew(noise.White), Volume: 1},
		{Source: noise.MustNew(noise.White), Volume: 0.5},
		{Source: noise.MustNew(noise.White), Volume: 0.25},
	}
	seq := testutil.NewSequenceRand(0.6, 0.4, 0.8)
	r := &testutil.CountingRand{Next: seq}
	s, err := NewSession(voices, 1, r)
	require.NoError(t, err)

	// (0.6*1 + 0.4*0.5 + 0.8*0.25) / 3
	assert.InDelta(t, 1.0/3.0, s.Mix(), testutil.DefaultTolerance)
	assert.Equal(t, 3, r.N)

	for range 10 {
		s.Mix()
	}
	assert.Equal(t, 33, r.N)
}

func TestMix_MixedKindsStayInRange(t *testing.T) {
	var voices []Voice
	for _, k := range noise.Kinds {
		v, err := NewVoice(k, 1)
		require.NoError(t, err)
		voices = append(voices, v)
	}
	voices[2].Volume = 33 // brown

	s, err := NewSession(voices, 1, noise.NewSeededRand(5, 6))
	require.NoError(t, err)

	out := make([]float32, 44100)
	s.Fill(out)
	testutil.AssertNoNaNOrInf(t, out)
	testutil.AssertAllInRange(t, out, -1.0, 1.0)
}

func TestFill_MatchesRepeatedMix(t *testing.T) {
	build := func() *Session {
		v, err := NewVoice(noise.Pink, 0.7)
		require.NoError(t, err)
		s, err := NewSession([]Voice{v}, 0.5, noise.NewSeededRand(11, 12))
		require.NoError(t, err)
		return s
	}

	a, b := build(), build()
	block := make([]float32, 256)
	a.Fill(block)
	for i := range block {
		assert.Equal(t, b.Mix(), block[i], "frame %d", i)
	}
}

func TestNewSession_Validation(t *testing.T) {
	r := testutil.ConstRand(0)

	_, err := NewSession(nil, 0.5, nil)
	require.ErrorIs(t, err, ErrInvalidVoice)

	_, err = NewSession(nil, 1.5, r)
	require.ErrorIs(t, err, ErrInvalidVoice)

	_, err = NewSession(nil, -0.1, r)
	require.ErrorIs(t, err, ErrInvalidVoice)

	_, err = NewSession(whiteVoices(t, 1, -1), 0.5, r)
	require.ErrorIs(t, err, ErrInvalidVoice)

	_, err = NewSession([]Voice{{Volume: 1}}, 0.5, r)
	require.NoError(t, err, "zero Source is white")

	_, err = NewVoice(noise.Kind(99), 1)
	require.ErrorIs(t, err, noise.ErrUnknownKind)
}

func TestSession_Accessors(t *testing.T) {
	voices := []Voice{
		{Source: noise.MustNew(noise.Brown), Volume: 1},
		{Source: noise.MustNew(noise.Blue), Volume: 1},
	}
	s, err := NewSession(voices, 0.25, testutil.ConstRand(0))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Voices())
	assert.Equal(t, float32(0.25), s.Master())
	assert.Equal(t, []noise.Kind{noise.Brown, noise.Blue}, s.Kinds())
}

func BenchmarkSession_Mix(b *testing.B) {
	var voices []Voice
	for _, k := range noise.Kinds {
		voices = append(voices, Voice{Source: noise.MustNew(k), Volume: 0.5})
	}
	s, err := NewSession(voices, 0.1, noise.NewSeededRand(1, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Mix()
	}
}
