// Package agg has the weighted aggregation primitive shared by every scorer.
package agg

import "errors"

// ErrInvalidWeights is returned when a weighted blend has a zero weight sum.
var ErrInvalidWeights = errors.New("aggregate: total weight must be non-zero")

// Pair is one (score, weight) input to a weighted blend.
type Pair struct {
	Score  float64
	Weight float64
}

// Combine blends an ordered list of (score, weight) pairs into a single
// normalized score: clamp01(sum(score*weight) / sum(weight)). Every
// "combine N factors with importance X" computation in the engine goes
// through here so clamping stays consistent.
func Combine(pairs []Pair) (float64, error) {
	var sum, weightSum float64
	for _, p := range pairs {
		sum += p.Score * p.Weight
		weightSum += p.Weight
	}
	if weightSum == 0 {
		return 0, ErrInvalidWeights
	}
	return Clamp01(sum / weightSum), nil
}

// Clamp01 clamps a value to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafeRatio divides num by denom, substituting 0 when the denominator is
// zero. Zero-denominator terms contribute nothing to a blend instead of
// propagating Inf or NaN.
func SafeRatio(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}

// Saturate maps a count onto [0,1] against a saturating maximum: values at
// or beyond maxCount score 1.
func Saturate(count float64, maxCount float64) float64 {
	if maxCount <= 0 {
		return 0
	}
	return Clamp01(count / maxCount)
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
