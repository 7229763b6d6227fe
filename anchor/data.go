// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

// Curves are the six anchor calibration records, sorted by center hue and
// treated cyclically (purple wraps back to red through 0°/360°). The
// tables index by [Shade] in tonal order 50 .. 950. Fixed calibration
// data: do not derive or mutate.
var Curves = [6]Curve{
	{
		Name:      "red",
		Hue:       25.3,
		Lightness: shadeTable{97.1, 93.6, 88.5, 80.8, 70.4, 63.7, 57.7, 50.5, 44.4, 39.6, 25.8},
		Chroma:    shadeTable{1.69, 4.16, 8.06, 14.82, 24.83, 30.81, 31.85, 27.69, 23.01, 18.33, 11.96},
		HueShift:  shadeTable{-7.9, -7.6, -7, -5.7, -3.1, 0, 2, 2.2, 1.6, 0.4, 0.7},
	},
	{
		Name:      "yellow",
		Hue:       86.0,
		Lightness: shadeTable{98.7, 97.3, 94.5, 90.5, 85.2, 79.5, 68.1, 55.4, 47.6, 42.1, 28.6},
		Chroma:    shadeTable{3.38, 9.23, 16.77, 23.66, 25.87, 23.92, 21.06, 17.55, 14.82, 12.35, 8.58},
		HueShift:  shadeTable{16.2, 17.2, 15.5, 12.1, 5.9, 0, -10.2, -19.6, -24.1, -28.3, -32.2},
	},
	{
		Name:      "green",
		Hue:       149.6,
		Lightness: shadeTable{98.2, 96.2, 92.5, 87.1, 79.2, 72.3, 62.7, 52.7, 44.8, 39.3, 26.6},
		Chroma:    shadeTable{2.34, 5.72, 10.92, 19.5, 27.17, 28.47, 25.22, 20.02, 15.47, 12.35, 8.45},
		HueShift:  shadeTable{6.2, 7.1, 6.4, 4.8, 2.1, 0, -0.4, 0.5, 1.7, 2.9, 3.3},
	},
	{
		Name:      "cyan",
		Hue:       215.2,
		Lightness: shadeTable{98.4, 95.6, 91.7, 86.5, 78.9, 71.5, 60.9, 52, 45, 39.8, 30.2},
		Chroma:    shadeTable{2.47, 5.85, 10.4, 16.51, 20.02, 18.59, 16.38, 13.65, 11.05, 9.1, 7.28},
		HueShift:  shadeTable{-14.3, -11.8, -10.2, -8.1, -3.7, 0, 6.5, 7.9, 9.1, 12.2, 14.5},
	},
	{
		Name:      "blue",
		Hue:       259.8,
		Lightness: shadeTable{97, 93.2, 88.2, 80.9, 70.7, 62.3, 54.6, 48.8, 42.4, 37.9, 28.2},
		Chroma:    shadeTable{1.82, 4.16, 7.67, 13.65, 21.45, 27.82, 31.85, 31.59, 25.87, 18.98, 11.83},
		HueShift:  shadeTable{-5.2, -4.2, -5.7, -8, -5.2, 0, 3.1, 4.6, 5.8, 5.7, 8.1},
	},
	{
		Name:      "purple",
		Hue:       303.9,
		Lightness: shadeTable{97.7, 94.6, 90.2, 82.7, 71.4, 62.7, 55.8, 49.6, 43.8, 38.1, 29.1},
		Chroma:    shadeTable{1.82, 4.29, 8.19, 15.47, 26.39, 34.45, 37.44, 34.45, 28.34, 22.88, 19.37},
		HueShift:  shadeTable{4.4, 3.3, 2.8, 2.5, 1.6, 0, -1.6, -2, -0.2, 1.1, -1.2},
	},
}
