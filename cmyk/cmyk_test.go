// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmyk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toneworks/tonal/base/tolassert"
)

func TestFromRGB(t *testing.T) {
	c, m, y, k := FromRGB(255, 0, 0)
	tolassert.Equal(t, 0, c)
	tolassert.Equal(t, 100, m)
	tolassert.Equal(t, 100, y)
	tolassert.Equal(t, 0, k)

	// black is pure key
	c, m, y, k = FromRGB(0, 0, 0)
	tolassert.Equal(t, 0, c)
	tolassert.Equal(t, 0, m)
	tolassert.Equal(t, 0, y)
	tolassert.Equal(t, 100, k)

	c, m, y, k = FromRGB(255, 255, 255)
	tolassert.Equal(t, 0, c)
	tolassert.Equal(t, 0, m)
	tolassert.Equal(t, 0, y)
	tolassert.Equal(t, 0, k)

	c, m, y, k = FromRGB(51, 102, 153)
	tolassert.EqualTol(t, 66.667, c, 0.01)
	tolassert.EqualTol(t, 33.333, m, 0.01)
	tolassert.Equal(t, 0, y)
	tolassert.Equal(t, 40, k)
}

func TestToRGB(t *testing.T) {
	r, g, b := ToRGB(0, 100, 100, 0)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)

	r, g, b = ToRGB(0, 0, 0, 100)
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
}

func TestRoundTrip(t *testing.T) {
	for _, rgb := range [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {204, 114, 67},
		{59, 130, 246}, {51, 102, 153}, {240, 240, 240},
	} {
		r, g, b := ToRGB(FromRGB(rgb[0], rgb[1], rgb[2]))
		assert.InDelta(t, int(rgb[0]), int(r), 1, "r for %v", rgb)
		assert.InDelta(t, int(rgb[1]), int(g), 1, "g for %v", rgb)
		assert.InDelta(t, int(rgb[2]), int(b), 1, "b for %v", rgb)
	}
}
