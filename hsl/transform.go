// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "image/color"

// Lighten returns a color that is lighter by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Lighten(c color.RGBA, amount float32) color.RGBA {
	h, s, l := FromRGB(c.R, c.G, c.B)
	r, g, b := ToRGB(h, s, clamp(l+amount, 0, 100))
	return color.RGBA{r, g, b, c.A}
}

// Darken returns a color that is darker by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Darken(c color.RGBA, amount float32) color.RGBA {
	h, s, l := FromRGB(c.R, c.G, c.B)
	r, g, b := ToRGB(h, s, clamp(l-amount, 0, 100))
	return color.RGBA{r, g, b, c.A}
}

// Saturate returns a color that is more saturated by the given absolute
// HSL saturation amount (0-100, ranges enforced).
func Saturate(c color.RGBA, amount float32) color.RGBA {
	h, s, l := FromRGB(c.R, c.G, c.B)
	r, g, b := ToRGB(h, clamp(s+amount, 0, 100), l)
	return color.RGBA{r, g, b, c.A}
}

// Desaturate returns a color that is less saturated by the given absolute
// HSL saturation amount (0-100, ranges enforced).
func Desaturate(c color.RGBA, amount float32) color.RGBA {
	h, s, l := FromRGB(c.R, c.G, c.B)
	r, g, b := ToRGB(h, clamp(s-amount, 0, 100), l)
	return color.RGBA{r, g, b, c.A}
}

// Spin returns a color with its HSL hue rotated by the given amount in
// degrees, wrapping around the color circle.
func Spin(c color.RGBA, amount float32) color.RGBA {
	h, s, l := FromRGB(c.R, c.G, c.B)
	h += amount
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	r, g, b := ToRGB(h, s, l)
	return color.RGBA{r, g, b, c.A}
}

// IsLight returns whether the given color has an HSL lightness of 60% or
// more.
func IsLight(c color.RGBA) bool {
	_, _, l := FromRGB(c.R, c.G, c.B)
	return l >= 60
}

// IsDark returns whether the given color has an HSL lightness below 60%.
func IsDark(c color.RGBA) bool {
	return !IsLight(c)
}

// ContrastColor returns black or white, whichever contrasts better with
// the given color per [IsLight].
func ContrastColor(c color.RGBA) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
