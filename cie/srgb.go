// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the CIE standard color spaces used by the color
// engine: gamma-corrected sRGB, linear RGB, XYZ under the D65 illuminant
// (scaled so that Y = 100 for white), and LAB / LCH.
//
// All functions are pure and total: out-of-domain numeric inputs produce
// numerically well-defined (possibly out-of-gamut) outputs, and validation
// is the caller's responsibility.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts an sRGB rgb component to linear space, i.e.,
// removes the gamma correction. The input and output are in the 0-1
// normalized range.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear rgb component to the gamma-corrected
// sRGB space. The input and output are in the 0-1 normalized range.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinear converts 0-1 normalized gamma-corrected sRGB values to
// linear RGB.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear RGB values to 0-1 normalized
// gamma-corrected sRGB.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// RGBToLinear converts standard 8-bit sRGB channels to linear RGB.
func RGBToLinear(r, g, b uint8) (rl, gl, bl float32) {
	return SRGBToLinear(float32(r)/255, float32(g)/255, float32(b)/255)
}

// RGBFromLinear converts linear RGB values to standard 8-bit sRGB channels,
// rounding and clamping each channel to [0, 255].
func RGBFromLinear(rl, gl, bl float32) (r, g, b uint8) {
	sr, sg, sb := SRGBFromLinear(rl, gl, bl)
	return CompToUint8(sr), CompToUint8(sg), CompToUint8(sb)
}

// CompToUint8 converts a 0-1 normalized sRGB component to an 8-bit channel,
// rounding and clamping to [0, 255].
func CompToUint8(c float32) uint8 {
	v := math32.Round(c * 255)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// sRGB / D65 primaries, linear RGB to XYZ and back.
var (
	rgb2xyz = [3][3]float32{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyz2rgb = [3][3]float32{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// LinearToXYZ converts linear RGB values to XYZ coordinates scaled to the
// 0-100 range (Y = 100 for the D65 reference white).
func LinearToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 100 * (rgb2xyz[0][0]*rl + rgb2xyz[0][1]*gl + rgb2xyz[0][2]*bl)
	y = 100 * (rgb2xyz[1][0]*rl + rgb2xyz[1][1]*gl + rgb2xyz[1][2]*bl)
	z = 100 * (rgb2xyz[2][0]*rl + rgb2xyz[2][1]*gl + rgb2xyz[2][2]*bl)
	return
}

// XYZToLinear converts 0-100 scaled XYZ coordinates to linear RGB values.
// The result may fall outside [0, 1] for out-of-gamut colors.
func XYZToLinear(x, y, z float32) (rl, gl, bl float32) {
	x, y, z = x/100, y/100, z/100
	rl = xyz2rgb[0][0]*x + xyz2rgb[0][1]*y + xyz2rgb[0][2]*z
	gl = xyz2rgb[1][0]*x + xyz2rgb[1][1]*y + xyz2rgb[1][2]*z
	bl = xyz2rgb[2][0]*x + xyz2rgb[2][1]*y + xyz2rgb[2][2]*z
	return
}

// RGBToXYZ converts standard 8-bit sRGB channels to 0-100 scaled XYZ.
func RGBToXYZ(r, g, b uint8) (x, y, z float32) {
	return LinearToXYZ(RGBToLinear(r, g, b))
}

// XYZToRGB converts 0-100 scaled XYZ to standard 8-bit sRGB channels,
// rounding and clamping each channel to [0, 255].
func XYZToRGB(x, y, z float32) (r, g, b uint8) {
	return RGBFromLinear(XYZToLinear(x, y, z))
}
