// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the HSL color space, a simple device-color
// derivative of sRGB used for auxiliary display readouts. Palette
// generation does not use HSL; it works in OKLCH.
package hsl

import "github.com/chewxy/math32"

// FromRGB converts standard 8-bit sRGB channels to HSL, with hue in
// degrees [0, 360) and saturation and lightness in percent [0, 100].
func FromRGB(r, g, b uint8) (h, s, l float32) {
	fr := float32(r) / 255
	fg := float32(g) / 255
	fb := float32(b) / 255

	max := math32.Max(fr, math32.Max(fg, fb))
	min := math32.Min(fr, math32.Min(fg, fb))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case fr:
		h = (fg - fb) / d
		if fg < fb {
			h += 6
		}
	case fg:
		h = (fb-fr)/d + 2
	default:
		h = (fr-fg)/d + 4
	}
	h *= 60
	return h, s * 100, l * 100
}

// ToRGB converts HSL values (hue in degrees, saturation and lightness in
// percent) to standard 8-bit sRGB channels.
func ToRGB(h, s, l float32) (r, g, b uint8) {
	s /= 100
	l /= 100
	if s == 0 {
		v := comp8(l)
		return v, v, v
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	return comp8(hueToComp(p, q, hk+1.0/3)),
		comp8(hueToComp(p, q, hk)),
		comp8(hueToComp(p, q, hk-1.0/3))
}

func hueToComp(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
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
