// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor holds the calibration data behind palette generation:
// six reference hues ("anchors"), each with target lightness, chroma, and
// hue-shift tabulated at the 11 tonal shades, plus hue-blended lookup
// between adjacent anchors. All values are in the scaled OKLCH convention
// of the oklab package.
//
// The tables are fixed, compiled-in constants, empirically tuned to
// approximate a well-known commercial tonal-scale system. They are never
// mutated after load and are safe for concurrent use.
package anchor

import "github.com/chewxy/math32"

// Shade is one of the 11 fixed tonal steps of a generated palette,
// from lightest (50) to darkest (950).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
	Shade950

	// NumShades is the number of tonal steps in a palette.
	NumShades = int(Shade950) + 1
)

var shadeValues = [NumShades]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Shades lists all shades in tonal order, lightest first.
var Shades = [NumShades]Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// Value returns the conventional numeric label of the shade (50 .. 950).
func (s Shade) Value() int {
	return shadeValues[s]
}

func (s Shade) String() string {
	switch s {
	case Shade50:
		return "50"
	case Shade100:
		return "100"
	case Shade200:
		return "200"
	case Shade300:
		return "300"
	case Shade400:
		return "400"
	case Shade500:
		return "500"
	case Shade600:
		return "600"
	case Shade700:
		return "700"
	case Shade800:
		return "800"
	case Shade900:
		return "900"
	case Shade950:
		return "950"
	}
	return "invalid"
}

// shadeTable holds one calibrated value per shade, in tonal order.
type shadeTable [NumShades]float32

// Curve is the calibration record for one anchor hue: a center hue in
// OKLCH degrees and per-shade target lightness, chroma (scaled OKLCH
// units), and hue-shift (signed degrees relative to the center hue).
type Curve struct {
	Name      string
	Hue       float32
	Lightness shadeTable
	Chroma    shadeTable
	HueShift  shadeTable
}

// Adjacent returns the two anchors whose center hues bracket the given hue
// on the color circle, and the blend ratio t in [0, 1], where 0 is fully
// lo and 1 fully hi. The anchors are sorted by center hue and treated
// cyclically: the segment from the highest center hue to the lowest wraps
// through 0°/360°.
func Adjacent(hue float32) (lo, hi *Curve, t float32) {
	hue = normalizeHue(hue)
	for i := range Curves {
		a := &Curves[i]
		b := &Curves[(i+1)%len(Curves)]
		span := forward(a.Hue, b.Hue)
		d := forward(a.Hue, hue)
		if d < span {
			return a, b, d / span
		}
	}
	// unreachable: the segments cover the full circle
	return &Curves[0], &Curves[1], 0
}

// Lightness returns the target lightness at the given hue and shade,
// linearly interpolated between the two bracketing anchors.
func Lightness(hue float32, s Shade) float32 {
	lo, hi, t := Adjacent(hue)
	return lerp(lo.Lightness[s], hi.Lightness[s], t)
}

// Chroma returns the target chroma at the given hue and shade, linearly
// interpolated between the two bracketing anchors.
func Chroma(hue float32, s Shade) float32 {
	lo, hi, t := Adjacent(hue)
	return lerp(lo.Chroma[s], hi.Chroma[s], t)
}

// HueShift returns the per-shade hue-shift at the given hue and shade.
// Unlike lightness and chroma it interpolates angularly, taking the
// shortest direction around the circle, so blended values stay continuous
// across the 359°→0° wrap.
func HueShift(hue float32, s Shade) float32 {
	lo, hi, t := Adjacent(hue)
	d := hi.HueShift[s] - lo.HueShift[s]
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return lo.HueShift[s] + d*t
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// forward is the angular distance from a to b going in the positive
// (counterclockwise) direction, in [0, 360).
func forward(a, b float32) float32 {
	d := math32.Mod(b-a, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func normalizeHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
