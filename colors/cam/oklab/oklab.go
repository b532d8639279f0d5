// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the Oklab perceptual color space
// of Björn Ottosson, defined relative to linear sRGB.
// L is in [0, 1], a and b are roughly in [-0.4, 0.4].
package oklab

import (
	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"github.com/danielemaddaluno/colormath/math32"
)

// LinearSRGBToOklab converts linear sRGB components to Oklab.
// Out of gamut (negative) components are handled symmetrically.
func LinearSRGBToOklab(rl, gl, bl float32) (l, a, b float32) {
	lc := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	mc := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	sc := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lc, mc, sc = cbrt(lc), cbrt(mc), cbrt(sc)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return
}

// OklabToLinearSRGB converts Oklab to linear sRGB components,
// which may be out of the [0, 1] range.
func OklabToLinearSRGB(l, a, b float32) (rl, gl, bl float32) {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	rl = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	gl = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return
}

// SRGBToOklab converts gamma-encoded sRGB components to Oklab.
func SRGBToOklab(r, g, b float32) (l, a, bb float32) {
	return LinearSRGBToOklab(cie.SRGBToLinear(r, g, b))
}

// OklabToSRGB converts Oklab to gamma-encoded sRGB components.
func OklabToSRGB(l, a, b float32) (r, g, bb float32) {
	return cie.SRGBFromLinear(OklabToLinearSRGB(l, a, b))
}

func cbrt(x float32) float32 {
	if x < 0 {
		return -math32.Cbrt(-x)
	}
	return math32.Cbrt(x)
}
