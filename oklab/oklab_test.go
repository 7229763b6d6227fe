// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toneworks/tonal/base/tolassert"
)

func TestOklab(t *testing.T) {
	// reference values for sRGB primaries and white
	l, a, b := RGBToOklab(255, 255, 255)
	tolassert.Equal(t, 1, l)
	tolassert.Equal(t, 0, a)
	tolassert.Equal(t, 0, b)

	l, a, b = RGBToOklab(255, 0, 0)
	tolassert.Equal(t, 0.6279554, l)
	tolassert.Equal(t, 0.2248631, a)
	tolassert.Equal(t, 0.1258463, b)

	l, a, b = RGBToOklab(0, 0, 0)
	tolassert.Equal(t, 0, l)
	tolassert.Equal(t, 0, a)
	tolassert.Equal(t, 0, b)

	rl, gl, bl := OklabToLinear(LinearToOklab(0.25, 0.5, 0.75))
	tolassert.Equal(t, 0.25, rl)
	tolassert.Equal(t, 0.5, gl)
	tolassert.Equal(t, 0.75, bl)
}

func TestOKLCH(t *testing.T) {
	l, c, h := RGBToOKLCH(255, 0, 0)
	tolassert.EqualTol(t, 62.7955, l, 0.01)
	tolassert.EqualTol(t, 33.4988, c, 0.01)
	tolassert.EqualTol(t, 29.2339, h, 0.01)

	l, c, h = RGBToOKLCH(0x3B, 0x82, 0xF6)
	tolassert.EqualTol(t, 62.3083, l, 0.01)
	tolassert.EqualTol(t, 24.4419, c, 0.01)
	tolassert.EqualTol(t, 259.8145, h, 0.01)

	ll, a, b := OKLCHToOklab(OklabToOKLCH(0.52, -0.11, 0.07))
	tolassert.Equal(t, 0.52, ll)
	tolassert.Equal(t, -0.11, a)
	tolassert.Equal(t, 0.07, b)
}

// in-gamut colors must survive the full RGB -> OKLCH -> RGB chain within
// 8-bit rounding
func TestOKLCHRoundTrip(t *testing.T) {
	for _, rgb := range [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 200, 99}, {128, 128, 128}, {255, 255, 255}, {0, 0, 0},
		{59, 130, 246}, {240, 17, 91}, {1, 254, 3},
	} {
		r, g, b := OKLCHToRGB(RGBToOKLCH(rgb[0], rgb[1], rgb[2]))
		assert.InDelta(t, int(rgb[0]), int(r), 1, "r for %v", rgb)
		assert.InDelta(t, int(rgb[1]), int(g), 1, "g for %v", rgb)
		assert.InDelta(t, int(rgb[2]), int(b), 1, "b for %v", rgb)
	}
}
