// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// PointInit specifies the initial value for a [ColorPoint]: a position
// in the unit cube, an HSL color, or both. Use [InitPosition] or
// [InitColor] to construct one. The zero value specifies neither,
// which is not a valid initializer for [NewColorPoint].
type PointInit struct {

	// Position is the position value, valid only if HasPosition is set.
	Position math32.Vector3

	// Color is the HSL color value, valid only if HasColor is set.
	Color math32.Vector3

	// HasPosition indicates that Position is specified.
	HasPosition bool

	// HasColor indicates that Color is specified.
	HasColor bool
}

// InitPosition returns a [PointInit] specifying the given position.
func InitPosition(pos math32.Vector3) PointInit {
	return PointInit{Position: pos, HasPosition: true}
}

// InitColor returns a [PointInit] specifying the given HSL color.
func InitColor(hsl math32.Vector3) PointInit {
	return PointInit{Color: hsl, HasColor: true}
}

// ColorPoint couples a position in the unit cube with its equivalent
// HSL color triple. The two representations are kept mutually
// consistent under the inverted lightness flag captured at
// construction: setting one recomputes the other. ColorPoint is a
// comparable value type; palettes pass and return it by value.
type ColorPoint struct {
	pos               math32.Vector3
	hsl               math32.Vector3
	invertedLightness bool
}

// NewColorPoint returns a new [ColorPoint] from the given initializer,
// interpreting lightness according to invertedLightness. If the
// initializer specifies both a position and a color, the position wins
// and the color is derived from it. If it specifies neither,
// [ErrMissingArgument] is returned.
func NewColorPoint(init PointInit, invertedLightness bool) (ColorPoint, error) {
	cp := ColorPoint{invertedLightness: invertedLightness}
	switch {
	case init.HasPosition:
		cp.pos = init.Position
		cp.hsl = PointToHSL(init.Position, invertedLightness)
	case init.HasColor:
		cp.hsl = init.Color
		cp.pos = HSLToPoint(init.Color, invertedLightness)
	default:
		return ColorPoint{}, ErrMissingArgument
	}
	return cp, nil
}

// colorPointFromPosition returns a ColorPoint for the given position,
// for internal paths where the initializer is always present.
func colorPointFromPosition(pos math32.Vector3, invertedLightness bool) ColorPoint {
	return ColorPoint{pos: pos, hsl: PointToHSL(pos, invertedLightness), invertedLightness: invertedLightness}
}

// Position returns the position of this point in the unit cube.
func (cp ColorPoint) Position() math32.Vector3 {
	return cp.pos
}

// HSL returns the HSL color triple of this point
// (hue in degrees [0, 360), saturation, lightness).
func (cp ColorPoint) HSL() math32.Vector3 {
	return cp.hsl
}

// InvertedLightness returns the lightness interpretation mode captured
// when this point was constructed.
func (cp ColorPoint) InvertedLightness() bool {
	return cp.invertedLightness
}

// SetPosition sets the position of this point and recomputes its color.
func (cp *ColorPoint) SetPosition(pos math32.Vector3) {
	cp.pos = pos
	cp.hsl = PointToHSL(pos, cp.invertedLightness)
}

// SetHSL sets the HSL color of this point and recomputes its position.
func (cp *ColorPoint) SetHSL(hsl math32.Vector3) {
	cp.hsl = hsl
	cp.pos = HSLToPoint(hsl, cp.invertedLightness)
}

// ShiftHue rotates the hue of this point by the given angle in degrees,
// wrapped into [0, 360), and recomputes its position.
func (cp *ColorPoint) ShiftHue(angle float32) {
	cp.hsl.X = math32.Mod(360+(cp.hsl.X+angle), 360)
	cp.pos = HSLToPoint(cp.hsl, cp.invertedLightness)
}

// HSLCSS returns the CSS-style HSL string for this point.
// The string has no closing parenthesis, matching the output of the
// reference implementation byte for byte.
func (cp ColorPoint) HSLCSS() string {
	return fmt.Sprintf("hsl(%v,%v%%,%v%%", cp.hsl.X, cp.hsl.Y*100, cp.hsl.Z*100)
}

// AsRGBA returns this point's color as a standard [color.RGBA],
// clamped into the RGB gamut.
func (cp ColorPoint) AsRGBA() color.RGBA {
	c := colorful.Hsl(float64(cp.hsl.X), float64(cp.hsl.Y), float64(cp.hsl.Z)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns this point's color as a "#rrggbb" hex string,
// clamped into the RGB gamut.
func (cp ColorPoint) Hex() string {
	return colorful.Hsl(float64(cp.hsl.X), float64(cp.hsl.Y), float64(cp.hsl.Z)).Clamped().Hex()
}
