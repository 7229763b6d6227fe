// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 standard illuminant white point, on the 0-100 XYZ scale.
const (
	WhiteX = 95.047
	WhiteY = 100.0
	WhiteZ = 108.883
)

// labT is the linear-segment threshold (6/29)^3 of the CIE f(t) transform.
const labT = 216.0 / 24389.0

// labK is the slope constant (29/3)^3 of the linear segment.
const labK = 24389.0 / 27.0

// LABCompress applies the CIE f(t) piecewise cube-root transform to a
// white-point-relative XYZ component.
func LABCompress(t float32) float32 {
	if t > labT {
		return math32.Cbrt(t)
	}
	return (labK*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(ft float32) float32 {
	t := ft * ft * ft
	if t > labT {
		return t
	}
	return (116*ft - 16) / labK
}

// XYZToLAB converts 0-100 scaled XYZ coordinates to CIE LAB, referenced to
// the D65 white point. L is in [0, 100] for in-gamut colors.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE LAB values to 0-100 scaled XYZ coordinates,
// referenced to the D65 white point.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// RGBToLAB converts standard 8-bit sRGB channels to CIE LAB.
func RGBToLAB(r, g, b uint8) (l, a, bb float32) {
	return XYZToLAB(RGBToXYZ(r, g, b))
}

// LABToRGB converts CIE LAB values to standard 8-bit sRGB channels,
// rounding and clamping each channel to [0, 255].
func LABToRGB(l, a, b float32) (r, g, bb uint8) {
	return XYZToRGB(LABToXYZ(l, a, b))
}
