// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tonal provides parsing and formatting of display colors for the
// perceptual color engine. The canonical display representation is
// [color.RGBA]; the conversion subpackages (cie, oklab, hsl, cmyk) map it
// into and out of the other color spaces, and the palette subpackage
// generates tonal scales from a single seed color.
package tonal

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromHex parses the given hex color string and returns the resulting
// color. It accepts 3, 6, or 8 hex digits, with or without a leading "#",
// in either case. 3-digit colors are expanded by digit duplication
// ("#F80" is "#FF8800"). Any other length, or non-hex characters,
// result in an error; see [MustFromHex] for a version that panics instead.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("tonal.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("tonal.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string and returns the resulting
// color. It panics on any resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("tonal.MustFromHex: " + err.Error())
	}
	return c
}

// cssNames holds the CSS color keywords missing from [colornames.Map],
// which is generated from the SVG 1.1 set. CSS Color 4 added rebeccapurple
// on top of it.
var cssNames = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xFF},
}

// FromName returns the color value specified by the given CSS standard
// color name, as given in [colornames.Map] plus the later CSS additions.
func FromName(name string) (color.RGBA, error) {
	lc := strings.ToLower(name)
	if c, ok := colornames.Map[lc]; ok {
		return c, nil
	}
	if c, ok := cssNames[lc]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.New("tonal.FromName: name not found: " + name)
}

// FromString returns a color value from the given string: either a hex
// value per [FromHex] or a named color per [FromName].
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, errors.New("tonal.FromString: empty string")
	}
	if strings.HasPrefix(s, "#") || isHexDigits(s) {
		return FromHex(s)
	}
	return FromName(s)
}

func isHexDigits(s string) bool {
	if len(s) != 3 && len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// AsHex returns the color as an uppercase 2-hexadecimal-digits-per-component
// string, prefixed with "#". The alpha component is included only when it
// is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A != 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
}

// AsRGBA returns the given color as an 8-bit [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
