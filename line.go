// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import "cogentcore.org/core/math32"

// PositionFunc is an easing function mapping a normalized interpolation
// parameter t in [0, 1] to an eased parameter, with reverse selecting
// the mirrored variant of the curve. [PositionScales.Position] is the
// standard family of such functions.
type PositionFunc func(t float32, reverse bool) float32

// invertT flips t when invert is set. It is the parameter handling
// used for an axis with no easing function.
func invertT(t float32, invert bool) float32 {
	if invert {
		return 1 - t
	}
	return t
}

// VectorOnLine returns the point at interpolation parameter t in [0, 1]
// on the line from p1 to p2. Each axis is eased independently: if the
// corresponding easing function is non-nil, the axis parameter is
// fn(t, invert); otherwise it is t, flipped when invert is set. The
// axis value is the linear interpolation of p1 and p2 at the eased
// parameter.
func VectorOnLine(t float32, p1, p2 math32.Vector3, invert bool, fx, fy, fz PositionFunc) math32.Vector3 {
	tx, ty, tz := invertT(t, invert), invertT(t, invert), invertT(t, invert)
	if fx != nil {
		tx = fx(t, invert)
	}
	if fy != nil {
		ty = fy(t, invert)
	}
	if fz != nil {
		tz = fz(t, invert)
	}
	return math32.Vec3(
		(1-tx)*p1.X+tx*p2.X,
		(1-ty)*p1.Y+ty*p2.Y,
		(1-tz)*p1.Z+tz*p2.Z,
	)
}

// VectorsOnLine returns count points sampled on the line from p1 to p2
// using [VectorOnLine] with the given easing functions. The sampling
// mode selects how the interpolation parameters are spaced: [SampleEven]
// spaces them evenly from 0 to 1, while [SampleTruncated] reproduces the
// reference implementation's integer-step parameters. count must be at
// least 2; callers are responsible for validating it.
func VectorsOnLine(p1, p2 math32.Vector3, count int, invert bool, fx, fy, fz PositionFunc, mode SamplingModes) []math32.Vector3 {
	points := make([]math32.Vector3, count)
	for i := 0; i < count; i++ {
		var t float32
		if mode == SampleTruncated {
			t = float32(i / (count - 1))
		} else {
			t = float32(i) / float32(count-1)
		}
		points[i] = VectorOnLine(t, p1, p2, invert, fx, fy, fz)
	}
	return points
}
