// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the cylindrical HSL and HSV transforms of sRGB.
// Hue is in degrees [0, 360), all other values are in [0, 1].
package hsl

import "github.com/danielemaddaluno/colormath/math32"

// SRGBToHSL converts sRGB components in [0, 1] to
// hue (degrees), saturation and lightness.
// Greys have hue and saturation of 0, as do out of gamut
// colors with a lightness of 0 or 1 and beyond.
func SRGBToHSL(r, g, b float32) (h, s, l float32) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	l = (mx + mn) / 2
	d := mx - mn
	if d == 0 {
		return 0, 0, l
	}
	if den := 1 - math32.Abs(2*l-1); den > 0 {
		s = d / den
	}
	h = hue(r, g, b, mx, d)
	return
}

// HSLToSRGB converts hue (degrees, any angle), saturation and lightness
// to sRGB components.
func HSLToSRGB(h, s, l float32) (r, g, b float32) {
	h = math32.SanitizeDegrees(h)
	a := s * min(l, 1-l)
	f := func(n float32) float32 {
		k := math32.Mod(n+h/30, 12)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	return f(0), f(8), f(4)
}

// SRGBToHSV converts sRGB components in [0, 1] to
// hue (degrees), saturation and value.
// Greys have hue and saturation of 0; colors with a
// value of 0 or below have a saturation of 0.
func SRGBToHSV(r, g, b float32) (h, s, v float32) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	v = mx
	d := mx - mn
	if d == 0 {
		return 0, 0, v
	}
	if mx > 0 {
		s = d / mx
	}
	h = hue(r, g, b, mx, d)
	return
}

// HSVToSRGB converts hue (degrees, any angle), saturation and value
// to sRGB components.
func HSVToSRGB(h, s, v float32) (r, g, b float32) {
	h = math32.SanitizeDegrees(h)
	f := func(n float32) float32 {
		k := math32.Mod(n+h/60, 6)
		return v - v*s*max(0, min(k, 4-k, 1))
	}
	return f(5), f(3), f(1)
}

// hue returns the hexagonal hue in degrees shared by HSL and HSV,
// given the maximum component and the chroma (max - min), which must be > 0.
func hue(r, g, b, mx, d float32) float32 {
	var h float32
	switch mx {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return math32.SanitizeDegrees(60 * h)
}
