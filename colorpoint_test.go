// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewColorPoint(t *testing.T) {
	_, err := NewColorPoint(PointInit{}, false)
	assert.ErrorIs(t, err, ErrMissingArgument)

	cp, err := NewColorPoint(InitPosition(math32.Vec3(1, 1, 1)), true)
	assert.NoError(t, err)
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(45, 1, -0.41421354), cp.HSL())

	cp, err = NewColorPoint(InitColor(math32.Vec3(1, 1, 1)), true)
	assert.NoError(t, err)
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 1), cp.Position())
	assert.True(t, cp.InvertedLightness())
}

// when an initializer specifies both a position and a color,
// the position wins and the color is derived from it
func TestNewColorPointPositionWins(t *testing.T) {
	init := InitPosition(math32.Vec3(0.5, 0.5, 1))
	init.Color, init.HasColor = math32.Vec3(200, 0.2, 0.3), true

	cp, err := NewColorPoint(init, false)
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 1), cp.Position())
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 1, 0), cp.HSL())
}

func TestColorPointSetters(t *testing.T) {
	cp, err := NewColorPoint(InitColor(math32.Vec3(120, 1, 0.5)), false)
	assert.NoError(t, err)

	cp.SetPosition(math32.Vec3(0.5, 0.5, 0.25))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0.25, 0), cp.HSL())

	cp.SetHSL(math32.Vec3(90, 0.5, 0.5))
	tolAssertEqualVector(t, standardTol, math32.Vec3(90, 0.5, 0.5), cp.HSL())
	tolassert.EqualTol(t, 0.5, cp.Position().Z, standardTol)
}

func TestShiftHue(t *testing.T) {
	cp, err := NewColorPoint(InitColor(math32.Vec3(120, 1, 0.5)), false)
	assert.NoError(t, err)

	cp.ShiftHue(90)
	tolassert.EqualTol(t, 210, cp.HSL().X, 1.0e-4)

	cp.ShiftHue(-150)
	tolassert.EqualTol(t, 60, cp.HSL().X, 1.0e-4)

	cp.ShiftHue(360)
	tolassert.EqualTol(t, 60, cp.HSL().X, 1.0e-4)
}

func TestHSLCSS(t *testing.T) {
	cp, err := NewColorPoint(InitColor(math32.Vec3(120, 1, 0.5)), false)
	assert.NoError(t, err)
	// the reference output format has no closing parenthesis
	assert.Equal(t, "hsl(120,100%,50%", cp.HSLCSS())
}

func TestColorPointRGBA(t *testing.T) {
	cp, err := NewColorPoint(InitColor(math32.Vec3(0, 1, 0.5)), false)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cp.AsRGBA())
	assert.Equal(t, "#ff0000", cp.Hex())
}
