// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import "errors"

var (
	// ErrMissingArgument is returned when a [ColorPoint] is constructed
	// from a [PointInit] that specifies neither a position nor a color.
	ErrMissingArgument = errors.New("at least one of position and color is required")

	// ErrPointNotFound is returned when an anchor point lookup by value
	// equality does not match any anchor in the palette.
	ErrPointNotFound = errors.New("point not found")
)
