// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut maps cylindrical (LCH / OKLCH) colors into the sRGB gamut.
// Lightness and hue are preserved exactly; only chroma is reduced, by
// binary search over the space's own round trip to linear RGB. The same
// search serves both CIE LCH and OKLCH through [LinearFunc].
package gamut

import (
	"github.com/toneworks/tonal/cie"
	"github.com/toneworks/tonal/oklab"
)

// LinearFunc converts a cylindrical color (lightness, chroma, hue in
// degrees) to unclamped linear RGB. [cie.LCHToLinear] and
// [oklab.OKLCHToLinear] both satisfy it.
type LinearFunc func(l, c, h float32) (rl, gl, bl float32)

// Tolerance on linear RGB channels for the in-gamut test. It absorbs
// floating point noise accumulated through the matrix chains; tightening
// it changes which borderline colors get chroma-reduced.
const Tolerance = 0.001

// Epsilon is the chroma interval width at which the binary search stops.
const Epsilon = 0.01

// InGamut reports whether the given linear RGB channels are displayable
// in sRGB, within [Tolerance].
func InGamut(rl, gl, bl float32) bool {
	return rl >= -Tolerance && rl <= 1+Tolerance &&
		gl >= -Tolerance && gl <= 1+Tolerance &&
		bl >= -Tolerance && bl <= 1+Tolerance
}

// MaxChroma returns the largest chroma in [0, limit] that keeps the color
// at the given lightness and hue displayable, found by binary search down
// to [Epsilon]. The worst case is 0: gray at the target lightness.
func MaxChroma(l, h, limit float32, toLinear LinearFunc) float32 {
	if InGamut(toLinear(l, limit, h)) {
		return limit
	}
	low, high := float32(0), limit
	for high-low > Epsilon {
		mid := (low + high) / 2
		if InGamut(toLinear(l, mid, h)) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}

// Map converts a cylindrical color to linear RGB, reducing chroma to the
// maximal displayable value when the direct conversion falls outside the
// sRGB gamut. Lightness and hue are preserved exactly.
func Map(l, c, h float32, toLinear LinearFunc) (rl, gl, bl float32) {
	rl, gl, bl = toLinear(l, c, h)
	if InGamut(rl, gl, bl) {
		return rl, gl, bl
	}
	return toLinear(l, MaxChroma(l, h, c, toLinear), h)
}

// LCHToRGB converts CIE LCH values to standard 8-bit sRGB channels,
// gamut-mapping the chroma first.
func LCHToRGB(l, c, h float32) (r, g, b uint8) {
	return cie.RGBFromLinear(Map(l, c, h, cie.LCHToLinear))
}

// OKLCHToRGB converts scaled OKLCH values to standard 8-bit sRGB channels,
// gamut-mapping the chroma first.
func OKLCHToRGB(l, c, h float32) (r, g, b uint8) {
	return cie.RGBFromLinear(Map(l, c, h, oklab.OKLCHToLinear))
}
