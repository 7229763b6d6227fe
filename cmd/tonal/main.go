// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tonal generates tonal palettes and inspects color conversions
// from the terminal.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"

	"github.com/toneworks/tonal"
	"github.com/toneworks/tonal/anchor"
	"github.com/toneworks/tonal/cie"
	"github.com/toneworks/tonal/cmyk"
	"github.com/toneworks/tonal/gamut"
	"github.com/toneworks/tonal/hsl"
	"github.com/toneworks/tonal/oklab"
	"github.com/toneworks/tonal/palette"
)

var cli struct {
	Palette paletteCmd `cmd:"" help:"Generate an 11-step tonal palette from a seed color."`
	Convert convertCmd `cmd:"" help:"Print a color in every supported color space."`
	Rotate  rotateCmd  `cmd:"" help:"Rotate the hue of one or more colors, preserving lightness and chroma."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tonal"),
		kong.Description("Perceptual color tools: tonal palettes and color space conversions."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type paletteCmd struct {
	Color    string  `arg:"" help:"Seed color: hex (#3B82F6, F80) or CSS name (rebeccapurple)."`
	HueShift float32 `help:"Rotate the whole scale by the given degrees." default:"0"`
	Swatch   bool    `help:"Render color swatches next to the hex values."`
}

func (c *paletteCmd) Run() error {
	seed, err := tonal.FromString(c.Color)
	if err != nil {
		return err
	}
	p, err := palette.GenerateShifted(tonal.AsHex(seed), c.HueShift)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(os.Stdout)
	for _, s := range anchor.Shades {
		if c.Swatch {
			sw := out.String("      ").Background(termenv.RGBColor(p.At(s)))
			fmt.Fprintf(out, "%4s  %s  %s\n", s, sw, p.At(s))
		} else {
			fmt.Fprintf(out, "%4s  %s\n", s, p.At(s))
		}
	}
	return nil
}

type convertCmd struct {
	Color string `arg:"" help:"Color to convert: hex or CSS name."`
}

func (c *convertCmd) Run() error {
	rgba, err := tonal.FromString(c.Color)
	if err != nil {
		return err
	}
	r, g, b := rgba.R, rgba.G, rgba.B

	fmt.Printf("hex    %s\n", tonal.AsHex(rgba))
	fmt.Printf("rgb    %d, %d, %d\n", r, g, b)

	hh, hs, hl := hsl.FromRGB(r, g, b)
	fmt.Printf("hsl    %.0f°, %.0f%%, %.0f%%\n", hh, hs, hl)

	cc, cm, cy, ck := cmyk.FromRGB(r, g, b)
	fmt.Printf("cmyk   %.0f%%, %.0f%%, %.0f%%, %.0f%%\n", cc, cm, cy, ck)

	x, y, z := cie.RGBToXYZ(r, g, b)
	fmt.Printf("xyz    %.2f, %.2f, %.2f\n", x, y, z)

	l, la, lb := cie.RGBToLAB(r, g, b)
	fmt.Printf("lab    %.2f, %.2f, %.2f\n", l, la, lb)

	l, ch, h := cie.RGBToLCH(r, g, b)
	fmt.Printf("lch    %.2f, %.2f, %.2f°\n", l, ch, h)

	ol, oa, ob := oklab.RGBToOklab(r, g, b)
	fmt.Printf("oklab  %.4f, %.4f, %.4f\n", ol, oa, ob)

	ol, ch, h = oklab.RGBToOKLCH(r, g, b)
	fmt.Printf("oklch  %.2f, %.2f, %.2f°\n", ol, ch, h)
	return nil
}

type rotateCmd struct {
	Shift  float32  `arg:"" help:"Hue shift in degrees (may be negative)."`
	Colors []string `arg:"" help:"Colors to rotate: hex or CSS names."`
}

func (c *rotateCmd) Run() error {
	for _, in := range c.Colors {
		rgba, err := tonal.FromString(in)
		if err != nil {
			return err
		}
		l, ch, h := oklab.RGBToOKLCH(rgba.R, rgba.G, rgba.B)
		r, g, b := gamut.OKLCHToRGB(l, ch, cie.NormalizeHue(h+c.Shift))
		fmt.Printf("%s -> %s\n", in, tonal.AsHex(color.RGBA{r, g, b, 255}))
	}
	return nil
}
