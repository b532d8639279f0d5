// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/danielemaddaluno/colormath/math32"

// SRGBToLinearComp converts an sRGB rgb component to linear space
// (removes gamma). Used in converting from sRGB to XYZ colors.
// The transfer function is extended symmetrically to negative values,
// so that out-of-gamut components survive a round trip.
func SRGBToLinearComp(srgb float32) float32 {
	abs := math32.Abs(srgb)
	if abs <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Sign(srgb) * math32.Pow((abs+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB linear rgb component to non-linear
// (gamma corrected) sRGB value. Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float32) float32 {
	abs := math32.Abs(lin)
	if abs <= 0.0031308 {
		return 12.92 * lin
	}
	return math32.Sign(lin) * (1.055*math32.Pow(abs, 1/2.4) - 0.055)
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFloatToUint8 converts the given non-alpha-premultiplied sRGB float32
// values to alpha-premultiplied sRGB uint8 values, clamping the
// components to the [0, 1] range first.
func SRGBFloatToUint8(rf, gf, bf, af float32) (r, g, b, a uint8) {
	rf, gf, bf, af = clamp4(rf, gf, bf, af)
	r = uint8(rf*af*255 + 0.5)
	g = uint8(gf*af*255 + 0.5)
	b = uint8(bf*af*255 + 0.5)
	a = uint8(af*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts the given non-alpha-premultiplied sRGB float32
// values to alpha-premultiplied sRGB uint32 values, as used by
// [image/color.Color], clamping the components to the [0, 1] range first.
func SRGBFloatToUint32(rf, gf, bf, af float32) (r, g, b, a uint32) {
	rf, gf, bf, af = clamp4(rf, gf, bf, af)
	r = uint32(rf*af*65535 + 0.5)
	g = uint32(gf*af*65535 + 0.5)
	b = uint32(bf*af*65535 + 0.5)
	a = uint32(af*65535 + 0.5)
	return
}

// SRGBUint32ToFloat converts the given alpha-premultiplied sRGB uint32
// values, as returned by [image/color.Color.RGBA], to non-alpha-premultiplied
// sRGB float32 values in the [0, 1] range.
func SRGBUint32ToFloat(r, g, b, a uint32) (rf, gf, bf, af float32) {
	af = float32(a) / 65535
	if a == 0 {
		return 0, 0, 0, 0
	}
	rf = float32(r) / float32(a)
	gf = float32(g) / float32(a)
	bf = float32(b) / float32(a)
	return
}

func clamp4(r, g, b, a float32) (float32, float32, float32, float32) {
	return math32.Clamp(r, 0, 1), math32.Clamp(g, 0, 1), math32.Clamp(b, 0, 1), math32.Clamp(a, 0, 1)
}
