// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"regexp"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/toneworks/tonal"
	"github.com/toneworks/tonal/anchor"
	"github.com/toneworks/tonal/base/tolassert"
	"github.com/toneworks/tonal/oklab"
)

var hexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func oklchOf(t *testing.T, hex string) (l, c, h float32) {
	t.Helper()
	rgba, err := tonal.FromHex(hex)
	assert.NoError(t, err)
	return oklab.RGBToOKLCH(rgba.R, rgba.G, rgba.B)
}

func TestGenerateComplete(t *testing.T) {
	for _, seed := range []string{"#3B82F6", "#FF0000", "#663399", "#F80", "1fe07b", "#FAFAFA", "#050505"} {
		p, err := Generate(seed)
		assert.NoError(t, err, seed)
		for _, s := range anchor.Shades {
			assert.Regexp(t, hexRe, p.At(s), "%s shade %s", seed, s)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate("#12345")
	assert.Error(t, err)
	_, err = Generate("zzzzzz")
	assert.Error(t, err)
	_, err = Generate("")
	assert.Error(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate("#3B82F6")
	assert.NoError(t, err)
	b, err := Generate("#3B82F6")
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

// the generator preserves the seed's hue at the reference shade and
// follows the calibrated lightness curve from light to dark
func TestGenerateHuePreserving(t *testing.T) {
	for _, seed := range []string{"#3B82F6", "#FF0000", "#663399"} {
		rgba := tonal.MustFromHex(seed)
		_, _, inH := oklab.RGBToOKLCH(rgba.R, rgba.G, rgba.B)

		p, err := Generate(seed)
		assert.NoError(t, err)

		_, _, h := oklchOf(t, p.At(anchor.Shade500))
		assert.InDelta(t, float64(inH), float64(h), 3, seed)

		l50, _, _ := oklchOf(t, p.At(anchor.Shade50))
		l950, _, _ := oklchOf(t, p.At(anchor.Shade950))
		assert.Greater(t, l50, float32(90), seed)
		assert.Less(t, l950, float32(35), seed)
	}
}

func TestGenerateShifted(t *testing.T) {
	p, err := GenerateShifted("#3B82F6", 180)
	assert.NoError(t, err)
	_, _, h := oklchOf(t, p.At(anchor.Shade500))
	assert.InDelta(t, 79.8, float64(h), 3)

	p, err = GenerateShifted("#FF0000", 45)
	assert.NoError(t, err)
	_, _, h = oklchOf(t, p.At(anchor.Shade500))
	assert.InDelta(t, 74.2, float64(h), 3)
}

// a near-gray seed must still produce a non-degenerate scale: the
// lightness curve is input-independent and the chroma floor prevents
// collapse to gray
func TestGenerateNearGray(t *testing.T) {
	p, err := Generate("#808080")
	assert.NoError(t, err)
	for _, s := range anchor.Shades {
		assert.Regexp(t, hexRe, p.At(s))
	}
	_, c, _ := oklchOf(t, p.At(anchor.Shade500))
	assert.Greater(t, c, float32(5))
}

func TestAdjustHue(t *testing.T) {
	// low-chroma entries stay in gamut under rotation, so two 180°
	// rotations come back to the original within 8-bit rounding
	src := Palette{
		"#8A7F7F", "#7F8A7F", "#7F7F8A", "#908880", "#808890",
		"#8A7F7F", "#7F8A7F", "#7F7F8A", "#908880", "#808890", "#888888",
	}
	once, err := AdjustHue(src, 180)
	assert.NoError(t, err)
	twice, err := AdjustHue(once, 180)
	assert.NoError(t, err)
	for _, s := range anchor.Shades {
		want := tonal.MustFromHex(src.At(s))
		got := tonal.MustFromHex(twice.At(s))
		assert.InDelta(t, int(want.R), int(got.R), 2, "shade %s", s)
		assert.InDelta(t, int(want.G), int(got.G), 2, "shade %s", s)
		assert.InDelta(t, int(want.B), int(got.B), 2, "shade %s", s)
	}

	// rotation preserves lightness and chroma
	l0, c0, _ := oklchOf(t, src.At(anchor.Shade50))
	l1, c1, _ := oklchOf(t, once.At(anchor.Shade50))
	tolassert.EqualTol(t, l0, l1, 0.5)
	tolassert.EqualTol(t, c0, c1, 0.5)

	_, err = AdjustHue(Palette{}, 90)
	assert.Error(t, err)
}

// rotating a saturated palette into a narrower hue region clips chroma,
// and rotating back does not restore it: lightness and hue survive a full
// 360° of rotation, chroma only shrinks
func TestAdjustHueGamutLoss(t *testing.T) {
	src, err := Generate("#FF0000")
	assert.NoError(t, err)
	once, err := AdjustHue(src, 180)
	assert.NoError(t, err)
	twice, err := AdjustHue(once, 180)
	assert.NoError(t, err)

	for _, s := range anchor.Shades {
		l0, c0, h0 := oklchOf(t, src.At(s))
		l2, c2, h2 := oklchOf(t, twice.At(s))

		tolassert.EqualTol(t, l0, l2, 0.5, "lightness shade %s", s)
		assert.LessOrEqual(t, c2, c0+0.5, "chroma shade %s", s)

		if c0 > 5 {
			dh := math32.Abs(h2 - h0)
			if dh > 180 {
				dh = 360 - dh
			}
			assert.Less(t, dh, float32(3), "hue shade %s", s)
		}
	}

	// the saturated mid shades cannot fit the opposite hue's gamut
	_, c0, _ := oklchOf(t, src.At(anchor.Shade600))
	_, c2, _ := oklchOf(t, twice.At(anchor.Shade600))
	assert.Less(t, c2, c0-5)
	assert.NotEqual(t, src.At(anchor.Shade600), twice.At(anchor.Shade600))
}

func TestPaletteString(t *testing.T) {
	p, err := Generate("#3B82F6")
	assert.NoError(t, err)
	out := p.String()
	assert.Contains(t, out, "50 "+p.At(anchor.Shade50))
	assert.Contains(t, out, "950 "+p.At(anchor.Shade950))
}
