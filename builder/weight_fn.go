// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics on NaN/±Inf.
func ConstantWeightFn(value float64) WeightFn {
	mustFinite("ConstantWeightFn", value)

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Negative bounds are
// allowed: costs may be negative. Panics if max < min or a bound is not finite.
func UniformWeightFn(min, max float64) WeightFn {
	mustFinite("UniformWeightFn", min)
	mustFinite("UniformWeightFn", max)
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples integers uniformly in [min, max]. Integer weights keep
// generated documents short and make ties likely, which exercises the
// solver's tie-breaking. Panics if max < min.
func IntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the nearest integer.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	mustFinite("NormalWeightFn", mean)
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return math.Round(rng.NormFloat64()*stddev + mean)
	}
}

func mustFinite(fn string, x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("%s: %g is not finite", fn, x))
	}
}
