// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// NormalizeHue wraps a hue angle in degrees into [0, 360).
func NormalizeHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// LABToLCH converts rectangular LAB values to the polar LCH form.
// Hue is in degrees, normalized to [0, 360); chroma is non-negative.
// The conversion is exact: no information is lost in either direction.
func LABToLCH(l, a, b float32) (ll, c, h float32) {
	ll = l
	c = math32.Sqrt(a*a + b*b)
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return
}

// LCHToLAB converts polar LCH values to the rectangular LAB form.
func LCHToLAB(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	ll = l
	a = c * math32.Cos(hr)
	b = c * math32.Sin(hr)
	return
}

// RGBToLCH converts standard 8-bit sRGB channels to LCH.
func RGBToLCH(r, g, b uint8) (l, c, h float32) {
	return LABToLCH(RGBToLAB(r, g, b))
}

// LCHToRGB converts LCH values to standard 8-bit sRGB channels, rounding
// and clamping each channel to [0, 255]. It does not gamut-map: chroma
// beyond the sRGB gamut simply clips at the channel level. Use the gamut
// package for chroma-preserving mapping.
func LCHToRGB(l, c, h float32) (r, g, b uint8) {
	return LABToRGB(LCHToLAB(l, c, h))
}

// LCHToLinear converts LCH values directly to linear RGB. This is the
// round trip used by the gamut mapper to test whether a cylindrical color
// is displayable; the result is unclamped.
func LCHToLinear(l, c, h float32) (rl, gl, bl float32) {
	return XYZToLinear(LABToXYZ(LCHToLAB(l, c, h)))
}
