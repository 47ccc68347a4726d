// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import "cogentcore.org/core/math32"

// center of the unit square in the x and y axes.
const center float32 = 0.5

// PointToHSL converts the given normalized (x, y, z) point to an
// HSL color triple (hue in degrees [0, 360), saturation, lightness).
// The hue is the angle of (x, y) around the center of the unit square,
// the saturation is z, and the lightness is the distance of (x, y)
// from the center, divided by 0.5, so a point on the center has
// lightness 0 and a corner point has lightness sqrt(2). No clamping
// is applied: lightness can exceed 1 near the corners. If
// invertedLightness is set, the lightness is flipped to 1 - lightness.
func PointToHSL(v math32.Vector3, invertedLightness bool) math32.Vector3 {
	rad := math32.Atan2(v.Y-center, v.X-center)
	deg := math32.Mod(360+math32.RadToDeg(rad), 360)

	dist := math32.Sqrt((v.Y-center)*(v.Y-center) + (v.X-center)*(v.X-center))
	l := dist / center
	if invertedLightness {
		l = 1 - l
	}
	return math32.Vec3(deg, v.Z, l)
}

// HSLToPoint converts the given HSL color triple (hue in degrees,
// saturation, lightness) to a normalized (x, y, z) point. The hue
// determines the angle of (x, y) around the center of the unit square
// and the saturation becomes z. When invertedLightness is set, the
// distance from the center is (1 - lightness) * 0.5; otherwise a fixed
// distance of 0.5 is used regardless of the lightness, matching the
// output of the reference implementation, which means the mapping is
// not a true inverse of [PointToHSL] in that branch.
func HSLToPoint(hsl math32.Vector3, invertedLightness bool) math32.Vector3 {
	rad := math32.DegToRad(hsl.X)
	dist := center
	if invertedLightness {
		dist = (1 - hsl.Z) * center
	}
	x := center + dist*math32.Cos(rad)
	y := center + dist*math32.Sin(rad)
	return math32.Vec3(x, y, hsl.Y)
}
