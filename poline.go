// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// Options are the configuration options for constructing a [Poline]
// palette with [New]. Use [NewOptions] for defaults.
type Options struct {

	// AnchorColors are the anchor HSL colors that the palette
	// interpolates between. If nil or empty, a random complementary
	// pair from [RandomHSLPair] is used.
	AnchorColors []math32.Vector3

	// NumPoints is the number of points sampled per segment between
	// each pair of anchors, excluding the two anchor endpoints.
	// [NewOptions] sets it to 4.
	NumPoints int

	// PositionFunction is the easing function applied on all three
	// axes when sampling between anchors, unless overridden per axis.
	// [NewOptions] sets it to [Sinusoidal].
	PositionFunction PositionScales

	// PositionFunctionX optionally overrides PositionFunction
	// on the x axis.
	PositionFunctionX *PositionScales

	// PositionFunctionY optionally overrides PositionFunction
	// on the y axis.
	PositionFunctionY *PositionScales

	// PositionFunctionZ optionally overrides PositionFunction
	// on the z axis.
	PositionFunctionZ *PositionScales

	// InvertedLightness flips the position to lightness mapping
	// direction for every point the palette creates.
	InvertedLightness bool

	// ClosedLoop connects the last anchor back to the first,
	// making the palette wrap around.
	ClosedLoop bool

	// Sampling selects how interpolation parameters are spaced when
	// sampling segments. The default [SampleEven] spaces them evenly;
	// [SampleTruncated] reproduces the reference implementation's
	// degenerate integer-step output.
	Sampling SamplingModes

	// Rand is the random source used when AnchorColors is empty.
	// If nil, the system global rand source is used.
	Rand randx.Rand
}

// NewOptions returns a new [Options] with default values:
// 4 points per segment and [Sinusoidal] easing on all axes.
func NewOptions() *Options {
	return &Options{NumPoints: 4, PositionFunction: Sinusoidal}
}

// Poline is a color palette: an ordered sequence of anchor
// [ColorPoint] values, the adjacent anchor pairs derived from them,
// and the grid of points sampled along each pair's segment. All
// derived state is rebuilt eagerly on every structural mutation,
// and all query operations return value copies, so a Poline is safe
// to read after any prior query, under single-writer discipline.
type Poline struct {
	anchorPoints []ColorPoint
	anchorPairs  [][2]ColorPoint
	points       [][]ColorPoint

	// numPoints is the total sample count per segment,
	// including the two anchor endpoints.
	numPoints int

	fx, fy, fz        PositionScales
	closedLoop        bool
	invertedLightness bool
	sampling          SamplingModes
}

// New returns a new [Poline] palette for the given options.
// A nil opts is equivalent to [NewOptions]. It returns an error if
// fewer than two anchor colors are available or NumPoints is negative;
// such a palette cannot be constructed, so callers must validate
// their inputs rather than recover.
func New(opts *Options) (*Poline, error) {
	if opts == nil {
		opts = NewOptions()
	}
	anchorColors := opts.AnchorColors
	if len(anchorColors) == 0 {
		if opts.Rand != nil {
			anchorColors = RandomHSLPair(opts.Rand)
		} else {
			anchorColors = RandomHSLPair()
		}
	}
	if len(anchorColors) < 2 {
		return nil, fmt.Errorf("poline.New: need at least 2 anchor colors, got %d", len(anchorColors))
	}
	if opts.NumPoints < 0 {
		return nil, fmt.Errorf("poline.New: NumPoints must not be negative, got %d", opts.NumPoints)
	}
	scale := func(override *PositionScales) PositionScales {
		if override != nil {
			return *override
		}
		return opts.PositionFunction
	}
	pl := &Poline{
		anchorPoints:      make([]ColorPoint, len(anchorColors)),
		numPoints:         opts.NumPoints + 2,
		fx:                scale(opts.PositionFunctionX),
		fy:                scale(opts.PositionFunctionY),
		fz:                scale(opts.PositionFunctionZ),
		closedLoop:        opts.ClosedLoop,
		invertedLightness: opts.InvertedLightness,
		sampling:          opts.Sampling,
	}
	for i, c := range anchorColors {
		cp, err := NewColorPoint(InitColor(c), opts.InvertedLightness)
		if err != nil {
			return nil, err
		}
		pl.anchorPoints[i] = cp
	}
	pl.update()
	return pl, nil
}

// update rebuilds the derived anchor pairs and sampled point grid
// from the current anchors and configuration. It is called after
// every structural mutation.
func (pl *Poline) update() {
	n := len(pl.anchorPoints)
	npairs := n
	if !pl.closedLoop {
		npairs = max(n-1, 0)
	}
	pl.anchorPairs = make([][2]ColorPoint, npairs)
	for i := 0; i < npairs; i++ {
		pl.anchorPairs[i] = [2]ColorPoint{
			pl.anchorPoints[i],
			pl.anchorPoints[(i+1)%n],
		}
	}
	pl.points = make([][]ColorPoint, npairs)
	for i, pair := range pl.anchorPairs {
		positions := VectorsOnLine(pair[0].Position(), pair[1].Position(),
			pl.numPoints, i%2 == 0, pl.fx.Position, pl.fy.Position, pl.fz.Position, pl.sampling)
		seg := make([]ColorPoint, len(positions))
		for j, pos := range positions {
			seg[j] = colorPointFromPosition(pos, pl.invertedLightness)
		}
		pl.points[i] = seg
	}
}

// NumPoints returns the number of points sampled per segment,
// excluding the two anchor endpoints.
func (pl *Poline) NumPoints() int {
	return pl.numPoints - 2
}

// ClosedLoop returns whether the last anchor connects back to the first.
func (pl *Poline) ClosedLoop() bool {
	return pl.closedLoop
}

// InvertedLightness returns the lightness interpretation mode applied
// to all points the palette creates.
func (pl *Poline) InvertedLightness() bool {
	return pl.invertedLightness
}

// AnchorPoints returns a copy of the palette's anchor points.
func (pl *Poline) AnchorPoints() []ColorPoint {
	return slices.Clone(pl.anchorPoints)
}

// AnchorPairs returns a copy of the derived adjacent anchor pairs.
// There are as many pairs as anchors if the palette is a closed loop,
// and one fewer otherwise.
func (pl *Poline) AnchorPairs() [][2]ColorPoint {
	return slices.Clone(pl.anchorPairs)
}

// Points returns a copy of the sampled point grid: one sequence per
// anchor pair, each with NumPoints + 2 elements including the two
// anchor endpoints.
func (pl *Poline) Points() [][]ColorPoint {
	points := make([][]ColorPoint, len(pl.points))
	for i, seg := range pl.points {
		points[i] = slices.Clone(seg)
	}
	return points
}

// FlattenedPoints returns the sampled point grid concatenated into one
// ordered sequence, with the duplicated points at interior segment
// boundaries removed: each segment's first sample coincides with the
// previous segment's last.
func (pl *Poline) FlattenedPoints() []ColorPoint {
	var flat []ColorPoint
	idx := 0
	for _, seg := range pl.points {
		for _, p := range seg {
			if idx == 0 || idx%pl.numPoints != 0 {
				flat = append(flat, p)
			}
			idx++
		}
	}
	return flat
}

// Colors returns the HSL color triples of the flattened palette.
// For a closed loop, the final color is dropped, as it duplicates
// the first anchor.
func (pl *Poline) Colors() []math32.Vector3 {
	flat := pl.FlattenedPoints()
	colors := make([]math32.Vector3, len(flat))
	for i, p := range flat {
		colors[i] = p.HSL()
	}
	return dropLastIfClosed(pl.closedLoop, colors)
}

// ColorsCSS returns the CSS-style HSL strings of the flattened palette,
// in the format of [ColorPoint.HSLCSS]. For a closed loop, the final
// color is dropped, as it duplicates the first anchor.
func (pl *Poline) ColorsCSS() []string {
	flat := pl.FlattenedPoints()
	css := make([]string, len(flat))
	for i, p := range flat {
		css[i] = p.HSLCSS()
	}
	return dropLastIfClosed(pl.closedLoop, css)
}

// ColorsRGBA returns the colors of the flattened palette as standard
// [color.RGBA] values, clamped into the RGB gamut. For a closed loop,
// the final color is dropped, as it duplicates the first anchor.
func (pl *Poline) ColorsRGBA() []color.RGBA {
	flat := pl.FlattenedPoints()
	colors := make([]color.RGBA, len(flat))
	for i, p := range flat {
		colors[i] = p.AsRGBA()
	}
	return dropLastIfClosed(pl.closedLoop, colors)
}

// ColorsHex returns the colors of the flattened palette as "#rrggbb"
// hex strings, clamped into the RGB gamut. For a closed loop, the
// final color is dropped, as it duplicates the first anchor.
func (pl *Poline) ColorsHex() []string {
	flat := pl.FlattenedPoints()
	hex := make([]string, len(flat))
	for i, p := range flat {
		hex[i] = p.Hex()
	}
	return dropLastIfClosed(pl.closedLoop, hex)
}

// dropLastIfClosed drops the final element for closed loops,
// where it duplicates the first anchor.
func dropLastIfClosed[E any](closed bool, s []E) []E {
	if closed && len(s) > 0 {
		return s[:len(s)-1]
	}
	return s
}

// AddAnchorPoint adds a new anchor point from the given initializer,
// inserting it at the given index, or appending it if at is negative
// or past the end. It returns the new anchor. It returns an error if
// the initializer specifies neither a position nor a color.
func (pl *Poline) AddAnchorPoint(init PointInit, at int) (ColorPoint, error) {
	cp, err := NewColorPoint(init, pl.invertedLightness)
	if err != nil {
		return ColorPoint{}, err
	}
	if at < 0 || at >= len(pl.anchorPoints) {
		pl.anchorPoints = append(pl.anchorPoints, cp)
	} else {
		pl.anchorPoints = slices.Insert(pl.anchorPoints, at, cp)
	}
	pl.update()
	return cp, nil
}

// RemoveAnchorPointAtIndex removes the anchor point at the given index.
// It returns an error if the index is out of range.
func (pl *Poline) RemoveAnchorPointAtIndex(index int) error {
	if index < 0 || index >= len(pl.anchorPoints) {
		return fmt.Errorf("poline: anchor index %d out of range [0, %d)", index, len(pl.anchorPoints))
	}
	pl.anchorPoints = slices.Delete(pl.anchorPoints, index, index+1)
	pl.update()
	return nil
}

// RemoveAnchorPoint removes the anchor point equal in value to the
// given point. It returns [ErrPointNotFound], leaving the palette
// unchanged, if no anchor matches.
func (pl *Poline) RemoveAnchorPoint(point ColorPoint) error {
	index := slices.Index(pl.anchorPoints, point)
	if index < 0 {
		return ErrPointNotFound
	}
	return pl.RemoveAnchorPointAtIndex(index)
}

// UpdateAnchorPointAtIndex updates the anchor point at the given index
// from the given initializer, applying its position first and then its
// color if both are specified, and returns the updated anchor. It
// returns an error if the index is out of range.
func (pl *Poline) UpdateAnchorPointAtIndex(index int, init PointInit) (ColorPoint, error) {
	if index < 0 || index >= len(pl.anchorPoints) {
		return ColorPoint{}, fmt.Errorf("poline: anchor index %d out of range [0, %d)", index, len(pl.anchorPoints))
	}
	point := pl.anchorPoints[index]
	if init.HasPosition {
		point.SetPosition(init.Position)
	}
	if init.HasColor {
		point.SetHSL(init.Color)
	}
	pl.anchorPoints[index] = point
	pl.update()
	return point, nil
}

// UpdateAnchorPoint updates the anchor point equal in value to the
// given point from the given initializer, and returns the updated
// anchor. It returns [ErrPointNotFound], leaving the palette
// unchanged, if no anchor matches.
func (pl *Poline) UpdateAnchorPoint(point ColorPoint, init PointInit) (ColorPoint, error) {
	index := slices.Index(pl.anchorPoints, point)
	if index < 0 {
		return ColorPoint{}, ErrPointNotFound
	}
	return pl.UpdateAnchorPointAtIndex(index, init)
}

// ClosestAnchorPoint returns the anchor point closest to the given
// partial query vector under the partial distance metric of
// [Distance], with absent axes excluded. Ties are broken by
// first-occurrence order. It reports false if the minimum distance
// exceeds maxDistance.
func (pl *Poline) ClosestAnchorPoint(xyz PartialVector3, maxDistance float32) (ColorPoint, bool) {
	best := -1
	var bestDist float32
	for i, anchor := range pl.anchorPoints {
		d := Distance(Partial(anchor.Position()), xyz, false)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 || bestDist > maxDistance {
		return ColorPoint{}, false
	}
	return pl.anchorPoints[best], true
}

// ShiftHue rotates the hue of every anchor by the given angle in
// degrees, wrapped into [0, 360), and rebuilds the palette.
func (pl *Poline) ShiftHue(angle float32) {
	for i := range pl.anchorPoints {
		pl.anchorPoints[i].ShiftHue(angle)
	}
	pl.update()
}

// SetPositionFunction sets the easing function for all three axes
// and rebuilds the palette.
func (pl *Poline) SetPositionFunction(ps PositionScales) {
	pl.fx, pl.fy, pl.fz = ps, ps, ps
	pl.update()
}

// SetPositionFunctionX sets the easing function for the x axis
// and rebuilds the palette.
func (pl *Poline) SetPositionFunctionX(ps PositionScales) {
	pl.fx = ps
	pl.update()
}

// SetPositionFunctionY sets the easing function for the y axis
// and rebuilds the palette.
func (pl *Poline) SetPositionFunctionY(ps PositionScales) {
	pl.fy = ps
	pl.update()
}

// SetPositionFunctionZ sets the easing function for the z axis
// and rebuilds the palette.
func (pl *Poline) SetPositionFunctionZ(ps PositionScales) {
	pl.fz = ps
	pl.update()
}

// SetNumPoints sets the number of points sampled per segment,
// excluding the two anchor endpoints, and rebuilds the palette.
// It returns an error if n is negative.
func (pl *Poline) SetNumPoints(n int) error {
	if n < 0 {
		return fmt.Errorf("poline: NumPoints must not be negative, got %d", n)
	}
	pl.numPoints = n + 2
	pl.update()
	return nil
}

// SetClosedLoop sets whether the last anchor connects back to the
// first, and rebuilds the palette.
func (pl *Poline) SetClosedLoop(closed bool) {
	pl.closedLoop = closed
	pl.update()
}
