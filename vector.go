// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import "cogentcore.org/core/math32"

// PartialVector3 is a 3D vector in which any component may be absent.
// It is used as a query mask in [Distance] and
// [Poline.ClosestAnchorPoint]: absent axes are excluded from the
// distance computation. The zero value has all components absent.
type PartialVector3 struct {

	// X is the x (or hue) component, valid only if HasX is set.
	X float32

	// Y is the y (or saturation) component, valid only if HasY is set.
	Y float32

	// Z is the z (or lightness) component, valid only if HasZ is set.
	Z float32

	// HasX indicates that the X component is present.
	HasX bool

	// HasY indicates that the Y component is present.
	HasY bool

	// HasZ indicates that the Z component is present.
	HasZ bool
}

// Partial returns a [PartialVector3] with all three components of the
// given vector present.
func Partial(v math32.Vector3) PartialVector3 {
	return PartialVector3{X: v.X, Y: v.Y, Z: v.Z, HasX: true, HasY: true, HasZ: true}
}

// Distance returns the Euclidean distance between the two partial
// vectors. An axis absent on either side contributes 0. When hueMode
// is set, the first axis is treated as a hue angle in degrees: its
// contribution is the circular wraparound distance normalized by 360.
func Distance(p1, p2 PartialVector3, hueMode bool) float32 {
	var a, b, c float32
	if p1.HasX && p2.HasX {
		if hueMode {
			d := math32.Abs(p1.X - p2.X)
			a = math32.Min(d, 360-d) / 360
		} else {
			a = p1.X - p2.X
		}
	}
	if p1.HasY && p2.HasY {
		b = p2.Y - p1.Y
	}
	if p1.HasZ && p2.HasZ {
		c = p2.Z - p1.Z
	}
	return math32.Sqrt(a*a + b*b + c*c)
}
