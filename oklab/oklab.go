// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the Oklab perceptual color space and its polar
// OKLCH form, using the reference matrices from
// https://bottosson.github.io/posts/oklab/
//
// OKLCH values in this package use a scaled convention: lightness is
// multiplied by [LScale] and chroma by [CScale] so that they sit in ranges
// comparable to CIE LCH, letting the two spaces share code paths such as
// the gamut mapper. These are conventions of this engine, not part of the
// Oklab standard.
package oklab

import (
	"github.com/chewxy/math32"

	"github.com/toneworks/tonal/cie"
)

// Scaling of the polar OKLCH form relative to standard Oklab:
// lightness 0-1 becomes 0-100 and chroma (at most ~0.32 within sRGB)
// becomes 0-~42.
const (
	LScale = 100
	CScale = 130
)

// LinearToOklab converts linear RGB values to standard (unscaled) Oklab,
// with L in [0, 1] for in-gamut colors.
func LinearToOklab(rl, gl, bl float32) (l, a, b float32) {
	lm := math32.Cbrt(0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl)
	mm := math32.Cbrt(0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl)
	sm := math32.Cbrt(0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl)

	l = 0.2104542553*lm + 0.7936177850*mm - 0.0040720468*sm
	a = 1.9779984951*lm - 2.4285922050*mm + 0.4505937099*sm
	b = 0.0259040371*lm + 0.7827717662*mm - 0.8086757660*sm
	return
}

// OklabToLinear converts standard (unscaled) Oklab values to linear RGB.
// The result may fall outside [0, 1] for out-of-gamut colors.
func OklabToLinear(l, a, b float32) (rl, gl, bl float32) {
	lm := l + 0.3963377774*a + 0.2158037573*b
	mm := l - 0.1055613458*a - 0.0638541728*b
	sm := l - 0.0894841775*a - 1.2914855480*b

	lm = lm * lm * lm
	mm = mm * mm * mm
	sm = sm * sm * sm

	rl = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	gl = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	bl = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return
}

// RGBToOklab converts standard 8-bit sRGB channels to unscaled Oklab.
func RGBToOklab(r, g, b uint8) (l, a, bb float32) {
	return LinearToOklab(cie.RGBToLinear(r, g, b))
}

// OklabToRGB converts unscaled Oklab values to standard 8-bit sRGB
// channels, rounding and clamping each channel to [0, 255].
func OklabToRGB(l, a, b float32) (r, g, bb uint8) {
	return cie.RGBFromLinear(OklabToLinear(l, a, b))
}

// OklabToOKLCH converts unscaled Oklab values to the scaled polar OKLCH
// form. Hue is in degrees, normalized to [0, 360).
func OklabToOKLCH(l, a, b float32) (ll, c, h float32) {
	ll = l * LScale
	c = math32.Sqrt(a*a+b*b) * CScale
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return
}

// OKLCHToOklab converts scaled polar OKLCH values to unscaled Oklab.
func OKLCHToOklab(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	ll = l / LScale
	a = c / CScale * math32.Cos(hr)
	b = c / CScale * math32.Sin(hr)
	return
}

// RGBToOKLCH converts standard 8-bit sRGB channels to scaled OKLCH.
func RGBToOKLCH(r, g, b uint8) (l, c, h float32) {
	return OklabToOKLCH(RGBToOklab(r, g, b))
}

// OKLCHToRGB converts scaled OKLCH values to standard 8-bit sRGB channels,
// rounding and clamping each channel to [0, 255]. It does not gamut-map;
// use the gamut package for chroma-preserving mapping.
func OKLCHToRGB(l, c, h float32) (r, g, b uint8) {
	return OklabToRGB(OKLCHToOklab(l, c, h))
}

// OKLCHToLinear converts scaled OKLCH values directly to linear RGB. This
// is the round trip used by the gamut mapper; the result is unclamped.
func OKLCHToLinear(l, c, h float32) (rl, gl, bl float32) {
	return OklabToLinear(OKLCHToOklab(l, c, h))
}
