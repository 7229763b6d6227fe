// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmyk implements the CMYK device color model, a simple derivative
// of sRGB used for auxiliary display readouts.
package cmyk

import "github.com/chewxy/math32"

// FromRGB converts standard 8-bit sRGB channels to CMYK percentages in
// [0, 100]. Black maps to K = 100 with C = M = Y = 0.
func FromRGB(r, g, b uint8) (c, m, y, k float32) {
	fr := float32(r) / 255
	fg := float32(g) / 255
	fb := float32(b) / 255

	kk := 1 - math32.Max(fr, math32.Max(fg, fb))
	if kk >= 1 {
		return 0, 0, 0, 100
	}
	c = (1 - fr - kk) / (1 - kk) * 100
	m = (1 - fg - kk) / (1 - kk) * 100
	y = (1 - fb - kk) / (1 - kk) * 100
	k = kk * 100
	return
}

// ToRGB converts CMYK percentages to standard 8-bit sRGB channels.
func ToRGB(c, m, y, k float32) (r, g, b uint8) {
	kk := k / 100
	r = comp8((1 - c/100) * (1 - kk))
	g = comp8((1 - m/100) * (1 - kk))
	b = comp8((1 - y/100) * (1 - kk))
	return
}

func comp8(c float32) uint8 {
	v := math32.Round(c * 255)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
