// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates 11-step tonal scales (shades 50 .. 950) from a
// single seed color. Targets come from the hue-blended anchor curves in
// the anchor package; the seed's own saturation scales the chroma of the
// whole scale, and every generated color is gamut-mapped so the resulting
// hex values are always displayable in sRGB.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"

	"github.com/toneworks/tonal"
	"github.com/toneworks/tonal/anchor"
	"github.com/toneworks/tonal/cie"
	"github.com/toneworks/tonal/gamut"
	"github.com/toneworks/tonal/oklab"
)

// Palette is a complete tonal scale: one uppercase #RRGGBB hex string per
// shade, indexed by [anchor.Shade] in tonal order. Generation is pure:
// the same seed always produces the same palette, with all 11 entries set.
type Palette [anchor.NumShades]string

// At returns the hex value at the given shade.
func (p Palette) At(s anchor.Shade) string {
	return p[s]
}

func (p Palette) String() string {
	var b strings.Builder
	for _, s := range anchor.Shades {
		fmt.Fprintf(&b, "%s %s\n", s, p[s])
	}
	return b.String()
}

// Bounds on the chroma scaling derived from the seed color's saturation:
// the floor keeps near-gray seeds from collapsing the scale to gray, the
// ceiling keeps extreme seeds from blowing chroma out.
const (
	minChromaScale = 0.85
	maxChromaScale = 1.2
)

// maxChromaLimit is the upper bound of the gamut-boundary search, in
// scaled OKLCH chroma units, comfortably above the sRGB maximum (~42).
const maxChromaLimit = 52

// gamutMargin backs final chroma off the gamut boundary by 1% so that the
// Oklab → linear → sRGB chain never silently clips from accumulated
// floating point error.
const gamutMargin = 0.99

// Generate produces the tonal scale for the given seed color, which may
// be a 3- or 6-digit hex string with optional leading "#". It returns an
// error only when the seed fails to parse.
func Generate(hex string) (Palette, error) {
	return GenerateShifted(hex, 0)
}

// GenerateShifted is like [Generate], but rotates the whole scale by the
// given hue shift in degrees before the per-shade anchor lookups.
func GenerateShifted(hex string, hueShift float32) (Palette, error) {
	c, err := tonal.FromHex(hex)
	if err != nil {
		return Palette{}, fmt.Errorf("palette.Generate: %w", err)
	}
	inL, inC, inH := oklab.RGBToOKLCH(c.R, c.G, c.B)

	// the shade whose calibrated lightness is nearest the seed's own
	// lightness supplies the reference chroma for scaling
	closest := anchor.Shade50
	best := math32.Inf(1)
	for _, s := range anchor.Shades {
		if d := math32.Abs(anchor.Lightness(inH, s) - inL); d < best {
			best, closest = d, s
		}
	}
	scale := float32(1)
	if ref := anchor.Chroma(inH, closest); ref > 0 {
		scale = math32.Min(math32.Max(inC/ref, minChromaScale), maxChromaScale)
	}

	baseHue := cie.NormalizeHue(inH + hueShift)

	var p Palette
	for _, s := range anchor.Shades {
		l := anchor.Lightness(baseHue, s)
		h := cie.NormalizeHue(baseHue + anchor.HueShift(baseHue, s))
		ch := anchor.Chroma(baseHue, s) * scale

		maxC := gamut.MaxChroma(l, h, maxChromaLimit, oklab.OKLCHToLinear)
		ch = math32.Min(ch, maxC*gamutMargin)

		r, g, b := gamut.OKLCHToRGB(l, ch, h)
		p[s] = tonal.AsHex(color.RGBA{r, g, b, 255})
	}
	return p, nil
}

// AdjustHue rotates every shade of an existing palette by the given hue
// shift in degrees, preserving each entry's lightness and chroma as-is.
// It does not consult the anchor curves: it is a pure rotation of whatever
// the palette already holds. An error is returned only if an entry fails
// to parse.
//
// Lightness is always preserved, but the sRGB gamut is narrower at some
// hues than others: when a saturated entry rotates into a narrower hue,
// its chroma is gamut-mapped down, and the loss is not recovered by
// rotating back. Across any sequence of rotations chroma can only shrink,
// up to 8-bit rounding.
func AdjustHue(p Palette, shift float32) (Palette, error) {
	var out Palette
	for _, s := range anchor.Shades {
		c, err := tonal.FromHex(p[s])
		if err != nil {
			return Palette{}, fmt.Errorf("palette.AdjustHue: shade %s: %w", s, err)
		}
		l, ch, h := oklab.RGBToOKLCH(c.R, c.G, c.B)
		r, g, b := gamut.OKLCHToRGB(l, ch, cie.NormalizeHue(h+shift))
		out[s] = tonal.AsHex(color.RGBA{r, g, b, 255})
	}
	return out, nil
}
