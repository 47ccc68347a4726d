// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poline

import (
	"testing"

	"cogentcore.org/core/base/randx"
	"github.com/stretchr/testify/assert"
)

func TestRandomHSLPair(t *testing.T) {
	pair := RandomHSLPair(randx.NewSysRand(42))
	assert.Len(t, pair, 2)
	for _, c := range pair {
		assert.GreaterOrEqual(t, c.X, float32(0))
		assert.Less(t, c.X, float32(360))
		assert.GreaterOrEqual(t, c.Y, float32(0))
		assert.Less(t, c.Y, float32(1))
	}
	assert.GreaterOrEqual(t, pair[0].Z, float32(0.75))
	assert.Less(t, pair[0].Z, float32(0.95))
	assert.GreaterOrEqual(t, pair[1].Z, float32(0.3))
	assert.Less(t, pair[1].Z, float32(0.5))

	// same seed, same pair
	assert.Equal(t, pair, RandomHSLPair(randx.NewSysRand(42)))
}

func TestRandomHSLTriple(t *testing.T) {
	triple := RandomHSLTriple(randx.NewSysRand(42))
	assert.Len(t, triple, 3)
	assert.Equal(t, triple, RandomHSLTriple(randx.NewSysRand(42)))
	assert.NotEqual(t, triple, RandomHSLTriple(randx.NewSysRand(43)))
}
