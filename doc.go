// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poline generates smoothly interpolated, perceptually organized
// color palettes from a small set of anchor colors.
//
// A [Poline] palette owns an ordered list of anchor [ColorPoint] values.
// Each anchor couples a position in the unit cube with an equivalent
// HSL color: hue is the angle of (x, y) around the center of the unit
// square, saturation is z, and lightness is the distance of (x, y) from
// the center. Adjacent anchors form segments, and each segment is sampled
// along a line in position space using per-axis easing functions
// ([PositionScales]), so palettes transition through hue, saturation,
// and lightness along configurable curves instead of naive linear blends.
//
// Any structural mutation of a palette (adding, removing, or updating
// anchors, shifting hues, or changing easing functions) eagerly rebuilds
// the anchor pairs and the full sampled grid, so query operations always
// see consistent derived state.
package poline
