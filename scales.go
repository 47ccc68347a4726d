// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

//go:generate core generate

import "cogentcore.org/core/math32"

// PositionScales are the easing functions used to reparameterize the
// [0, 1] interpolation parameter along each spatial axis when sampling
// between two anchor points.
type PositionScales int32 //enums:enum -transform kebab

const (
	// Linear applies no easing: the parameter is used as is.
	Linear PositionScales = iota

	// Exponential eases with the square of the parameter.
	Exponential

	// Cubic eases with the third power of the parameter.
	Cubic

	// Quadratic eases with the fourth power of the parameter.
	Quadratic

	// Quartic eases with the fifth power of the parameter.
	Quartic

	// Sinusoidal eases along a quarter sine wave.
	Sinusoidal

	// Asinusoidal eases along the inverse sine, the inverse
	// curve of [Sinusoidal].
	Asinusoidal

	// Arc eases along a circular arc.
	Arc

	// SmoothStep eases with a smoothstep-like power curve.
	// It has no distinct reverse variant.
	SmoothStep
)

// Position returns the eased interpolation parameter for the given
// t in [0, 1]. The reverse flag selects the mirrored variant of the
// curve, easing out instead of in; [Linear] and [SmoothStep] are the
// same in both directions.
func (ps PositionScales) Position(t float32, reverse bool) float32 {
	switch ps {
	case Exponential:
		if reverse {
			return 1 - math32.Pow(1-t, 2)
		}
		return math32.Pow(t, 2)
	case Cubic:
		if reverse {
			return 1 - math32.Pow(1-t, 3)
		}
		return math32.Pow(t, 3)
	case Quadratic:
		if reverse {
			return 1 - math32.Pow(1-t, 4)
		}
		return math32.Pow(t, 4)
	case Quartic:
		if reverse {
			return 1 - math32.Pow(1-t, 5)
		}
		return math32.Pow(t, 5)
	case Sinusoidal:
		if reverse {
			return 1 - math32.Sin(((1-t)*math32.Pi)/2)
		}
		return math32.Sin((t * math32.Pi) / 2)
	case Asinusoidal:
		if reverse {
			return 1 - math32.Asin(1-t)/(math32.Pi/2)
		}
		return math32.Asin(t) / (math32.Pi / 2)
	case Arc:
		if reverse {
			return math32.Sqrt(1 - math32.Pow(1-t, 2))
		}
		return 1 - math32.Sqrt(1-t)
	case SmoothStep:
		return math32.Pow(t, 2*(3-2*t))
	}
	return t
}

// SamplingModes select how [VectorsOnLine] spaces its interpolation
// parameters along a segment.
type SamplingModes int32 //enums:enum -trim-prefix Sample -transform kebab

const (
	// SampleEven spaces the interpolation parameters evenly in [0, 1].
	SampleEven SamplingModes = iota

	// SampleTruncated truncates the interpolation parameter to integer
	// steps, reproducing the output of the reference implementation,
	// in which all samples but the last collapse onto the segment start
	// for counts greater than 2.
	SampleTruncated
)
