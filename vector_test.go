// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	p1 := Partial(math32.Vec3(0, 0, 0))
	p2 := Partial(math32.Vec3(1, 1, 1))
	tolassert.EqualTol(t, 1.7320508, Distance(p1, p2, false), standardTol)
	assert.Equal(t, float32(0), Distance(p1, p1, false))
}

func TestDistancePartial(t *testing.T) {
	p1 := Partial(math32.Vec3(0, 0.25, 0.5))

	// absent axes contribute nothing
	assert.Equal(t, float32(0), Distance(p1, PartialVector3{}, false))
	tolassert.EqualTol(t, 0.5, Distance(p1, PartialVector3{Y: 0.75, HasY: true}, false), standardTol)
	tolassert.EqualTol(t, 0.25, Distance(p1, PartialVector3{Z: 0.25, HasZ: true}, false), standardTol)
}

func TestDistanceHueMode(t *testing.T) {
	p1 := PartialVector3{X: 350, HasX: true}
	p2 := PartialVector3{X: 10, HasX: true}

	// circular wraparound, normalized by 360
	tolassert.EqualTol(t, 20.0/360.0, Distance(p1, p2, true), standardTol)
	tolassert.EqualTol(t, 20.0/360.0, Distance(p2, p1, true), standardTol)

	// linear difference without hue mode
	tolassert.EqualTol(t, 340, Distance(p1, p2, false), 1.0e-4)
}
