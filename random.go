// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// RandomHSLPair returns a random pair of complementary-ish anchor
// colors: a light color at a random hue, and a darker color offset
// 60 to 240 degrees around the hue circle. Optionally can pass a
// single [randx.Rand] source to use for determinism under test;
// otherwise uses the system global rand source.
func RandomHSLPair(randOpt ...randx.Rand) []math32.Vector3 {
	rnd := sourceOrGlobal(randOpt)
	startHue := rnd.Float32() * 360
	sat := math32.Vec2(rnd.Float32(), rnd.Float32())
	light := math32.Vec2(0.75+rnd.Float32()*0.2, 0.3+rnd.Float32()*0.2)
	return []math32.Vector3{
		math32.Vec3(startHue, sat.X, light.X),
		math32.Vec3(math32.Mod(startHue+60+rnd.Float32()*180, 360), sat.Y, light.Y),
	}
}

// RandomHSLTriple returns three random anchor colors: a light color at
// a random hue, and a darker and another light color each offset 60 to
// 240 degrees around the hue circle. Optionally can pass a single
// [randx.Rand] source to use for determinism under test; otherwise
// uses the system global rand source.
func RandomHSLTriple(randOpt ...randx.Rand) []math32.Vector3 {
	rnd := sourceOrGlobal(randOpt)
	startHue := rnd.Float32() * 360
	sat := math32.Vec3(rnd.Float32(), rnd.Float32(), rnd.Float32())
	light := math32.Vec3(0.75+rnd.Float32()*0.2, 0.3+rnd.Float32()*0.2, 0.75+rnd.Float32()*0.2)
	return []math32.Vector3{
		math32.Vec3(startHue, sat.X, light.X),
		math32.Vec3(math32.Mod(startHue+60+rnd.Float32()*180, 360), sat.Y, light.Y),
		math32.Vec3(math32.Mod(startHue+60+rnd.Float32()*180, 360), sat.Z, light.Z),
	}
}

func sourceOrGlobal(randOpt []randx.Rand) randx.Rand {
	if len(randOpt) == 0 || randOpt[0] == nil {
		return randx.NewGlobalRand()
	}
	return randOpt[0]
}
