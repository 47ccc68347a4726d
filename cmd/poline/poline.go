// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command poline generates smoothly interpolated color palettes
// from a small set of anchor colors.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/poline"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the poline cli.
type Config struct {

	// Colors are the anchor colors, each as a comma-separated h,s,l
	// triple (hue in degrees, saturation and lightness in 0-1), such
	// as "120,1,0.5". If none are given, a random complementary pair
	// is used.
	Colors []string `flag:"c,colors"`

	// NumPoints is the number of points sampled between each pair of
	// anchors, excluding the anchors themselves.
	NumPoints int `flag:"n,num-points" default:"4"`

	// Scale is the easing function applied on all axes when sampling
	// between anchors.
	Scale poline.PositionScales `default:"sinusoidal"`

	// ScaleX overrides Scale on the x axis if set.
	ScaleX string `flag:"x,scale-x"`

	// ScaleY overrides Scale on the y axis if set.
	ScaleY string `flag:"y,scale-y"`

	// ScaleZ overrides Scale on the z axis if set.
	ScaleZ string `flag:"z,scale-z"`

	// InvertedLightness flips the position to lightness mapping
	// direction.
	InvertedLightness bool

	// ClosedLoop connects the last anchor back to the first.
	ClosedLoop bool `flag:"l,loop"`

	// Seed seeds the random source used for default anchors,
	// making the output deterministic. 0 means non-deterministic.
	Seed int64

	// Format is the output format for each palette color:
	// css, hex, or hsl.
	Format string `flag:"f,format" default:"css"`

	// Swatch renders a color block next to each palette color.
	Swatch bool `flag:"s,swatch"`
}

func main() {
	opts := cli.DefaultOptions("poline", "Poline generates smoothly interpolated color palettes from a small set of anchor colors.")
	cli.Run(opts, &Config{}, Gen)
}

// Gen generates a palette from the configured anchor colors and prints
// one palette color per line in the configured format.
func Gen(c *Config) error { //cli:cmd -root
	popts := poline.NewOptions()
	popts.NumPoints = c.NumPoints
	popts.PositionFunction = c.Scale
	popts.InvertedLightness = c.InvertedLightness
	popts.ClosedLoop = c.ClosedLoop
	if c.Seed != 0 {
		popts.Rand = randx.NewSysRand(c.Seed)
	}
	var err error
	if popts.PositionFunctionX, err = scaleOverride(c.ScaleX); err != nil {
		return err
	}
	if popts.PositionFunctionY, err = scaleOverride(c.ScaleY); err != nil {
		return err
	}
	if popts.PositionFunctionZ, err = scaleOverride(c.ScaleZ); err != nil {
		return err
	}
	for _, s := range c.Colors {
		anchor, err := parseAnchor(s)
		if err != nil {
			return err
		}
		popts.AnchorColors = append(popts.AnchorColors, anchor)
	}
	pal, err := poline.New(popts)
	if err != nil {
		return err
	}

	var lines []string
	switch c.Format {
	case "css":
		lines = pal.ColorsCSS()
	case "hex":
		lines = pal.ColorsHex()
	case "hsl":
		for _, hsl := range pal.Colors() {
			lines = append(lines, fmt.Sprintf("%v %v %v", hsl.X, hsl.Y, hsl.Z))
		}
	default:
		return fmt.Errorf("unknown format %q: must be css, hex, or hsl", c.Format)
	}
	logx.PrintfDebug("generated %d palette colors from %d anchors\n", len(lines), len(pal.AnchorPoints()))

	out := termenv.NewOutput(os.Stdout)
	hexes := pal.ColorsHex()
	for i, line := range lines {
		if c.Swatch {
			sw := out.String("  ").Background(out.Color(hexes[i]))
			fmt.Fprintf(out, "%s %s\n", sw, line)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// scaleOverride parses an optional per-axis scale flag,
// returning nil for an empty one.
func scaleOverride(s string) (*poline.PositionScales, error) {
	if s == "" {
		return nil, nil
	}
	ps := poline.Linear
	if err := ps.SetString(s); err != nil {
		return nil, err
	}
	return &ps, nil
}

// parseAnchor parses an anchor color given as a comma-separated
// h,s,l triple.
func parseAnchor(s string) (math32.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math32.Vector3{}, fmt.Errorf("invalid anchor color %q: must be a comma-separated h,s,l triple", s)
	}
	var hsl [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math32.Vector3{}, fmt.Errorf("invalid anchor color %q: %w", s, err)
		}
		hsl[i] = float32(f)
	}
	return math32.Vec3(hsl[0], hsl[1], hsl[2]), nil
}
