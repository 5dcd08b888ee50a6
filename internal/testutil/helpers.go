// Package testutil provides reusable test helpers for the noise mixer packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for float32 comparisons.
const (
	DefaultTolerance = 1e-6
	LooseTolerance   = 1e-4
)

// Float is the constraint accepted by the slice assertions.
type Float interface {
	float32 | float64
}

// SequenceRand is a deterministic noise.Rand that replays Values in order,
// wrapping around at the end. An empty sequence yields zeros.
type SequenceRand struct {
	Values []float32
	pos    int
}

// NewSequenceRand returns a SequenceRand over values.
func NewSequenceRand(values ...float32) *SequenceRand {
	return &SequenceRand{Values: values}
}

// Uniform returns the next value of the sequence.
func (r *SequenceRand) Uniform() float32 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos]
	r.pos = (r.pos + 1) % len(r.Values)
	return v
}

// ConstRand always returns the same draw.
type ConstRand float32

// Uniform returns the constant.
func (r ConstRand) Uniform() float32 {
	return float32(r)
}

// CountingRand wraps another Rand and counts draws.
type CountingRand struct {
	Next interface{ Uniform() float32 }
	N    int
}

// Uniform forwards to Next and increments N.
func (r *CountingRand) Uniform() float32 {
	r.N++
	return r.Next.Uniform()
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F Float](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F Float](t *testing.T, s []F, minVal, maxVal F) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, float64(v), float64(minVal), float64(maxVal))
		}
	}
	return true
}

// AssertAllEqual verifies that every element equals want.
func AssertAllEqual[T comparable](t *testing.T, s []T, want T) bool {
	t.Helper()
	for i, v := range s {
		if v != want {
			return assert.Fail(t, "values differ", "s[%d]=%v, want %v", i, v, want)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange[F Float](t *testing.T, value, minVal, maxVal F) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", float64(value), float64(minVal), float64(maxVal))
	}
	return true
}
