package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCombine checks the normalized weighted blend.
func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []Pair
		expected float64
		delta    float64
	}{
		{
			name:     "single pair",
			pairs:    []Pair{{Score: 0.5, Weight: 1}},
			expected: 0.5,
			delta:    0.0001,
		},
		{
			name: "normalizes by weight sum",
			pairs: []Pair{
				{Score: 1.0, Weight: 0.4},
				{Score: 0.0, Weight: 0.6},
			},
			expected: 0.4,
			delta:    0.0001,
		},
		{
			name: "weights already normalized",
			pairs: []Pair{
				{Score: 0.8, Weight: 0.4},
				{Score: 0.6, Weight: 0.3},
				{Score: 0.4, Weight: 0.3},
			},
			expected: 0.62,
			delta:    0.0001,
		},
		{
			name: "clamps overflow to one",
			pairs: []Pair{
				{Score: 5.0, Weight: 1.0},
			},
			expected: 1.0,
			delta:    0.0001,
		},
		{
			name: "clamps negative to zero",
			pairs: []Pair{
				{Score: -2.0, Weight: 1.0},
			},
			expected: 0.0,
			delta:    0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Combine(tt.pairs)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, result, tt.delta)
		})
	}
}

// TestCombineInvalidWeights ensures a zero weight sum is an error.
func TestCombineInvalidWeights(t *testing.T) {
	_, err := Combine([]Pair{{Score: 0.5, Weight: 0}})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = Combine(nil)
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

// TestSafeRatio ensures zero denominators never propagate Inf or NaN.
func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.0, SafeRatio(5, 0))
	assert.Equal(t, 2.5, SafeRatio(5, 2))
	assert.Equal(t, 0.0, SafeRatio(0, 0))
}

// TestSaturate checks the saturating count score.
func TestSaturate(t *testing.T) {
	assert.Equal(t, 0.5, Saturate(5, 10))
	assert.Equal(t, 1.0, Saturate(15, 10))
	assert.Equal(t, 0.0, Saturate(3, 0))
}

// TestMean covers the empty-slice guard.
func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 0.0001)
}
