// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestPointToHSL(t *testing.T) {
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 1, 0), PointToHSL(math32.Vec3(0.5, 0.5, 1), false))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 0), PointToHSL(math32.Vec3(0.5, 0.5, 0), false))

	// corner point: hue 45, lightness sqrt(2), not clamped
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(45, 1, math32.Sqrt2), PointToHSL(math32.Vec3(1, 1, 1), false))
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(45, 1, 1-math32.Sqrt2), PointToHSL(math32.Vec3(1, 1, 1), true))
}

func TestHSLToPoint(t *testing.T) {
	// the non-inverted branch always uses a fixed radius of 0.5,
	// regardless of lightness
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0.5, 1), HSLToPoint(math32.Vec3(0, 1, 0.5), false))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0.5, 1), HSLToPoint(math32.Vec3(0, 1, 0), false))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0.5, 1), HSLToPoint(math32.Vec3(0, 1, 1), false))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0.5, 0), HSLToPoint(math32.Vec3(0, 0, 0.5), false))

	// the inverted branch scales the radius by 1 - lightness
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 1), HSLToPoint(math32.Vec3(0, 1, 1), true))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0.5, 1), HSLToPoint(math32.Vec3(0, 1, 0), true))
}

// hue and saturation round-trip through the conversion; lightness need
// not, given the fixed radius in the non-inverted branch of [HSLToPoint].
func TestHueSaturationRoundTrip(t *testing.T) {
	for h := float32(0); h < 360; h += 30 {
		for _, s := range []float32{0, 0.25, 0.5, 1} {
			hsl := math32.Vec3(h, s, 0.5)
			back := PointToHSL(HSLToPoint(hsl, false), false)
			tolassert.EqualTol(t, h, back.X, 1.0e-2)
			tolassert.EqualTol(t, s, back.Y, standardTol)
		}
	}
}
