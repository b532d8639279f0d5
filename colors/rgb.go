// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"github.com/danielemaddaluno/colormath/colors/cam/hsl"
	"github.com/danielemaddaluno/colormath/colors/cam/oklab"
	"github.com/danielemaddaluno/colormath/math32"
)

// RGB is a color in the gamma-encoded sRGB space, with components
// in [0, 1] for colors in the gamut. Values outside of [0, 1] are kept
// through conversions, and are only clamped when converting to
// 8 or 16 bit integer components.
type RGB struct {
	// R is the red component.
	R float32

	// G is the green component.
	G float32

	// B is the blue component.
	B float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewRGB returns a new opaque [RGB] color from components in [0, 1].
func NewRGB(r, g, b float32) RGB {
	return RGB{R: r, G: g, B: b, Alpha: 1}
}

// RGBModel is the model of the RGB space.
var RGBModel = &Model[RGB]{
	name:       "rgb",
	components: []ComponentInfo{rect("r", 0, 1), rect("g", 0, 1), rect("b", 0, 1), alpha},
	convert:    Color.ToRGB,
	create: func(c []float32) RGB {
		return RGB{c[0], c[1], c[2], c[3]}
	},
}

func (c RGB) Space() Space { return RGBModel }

func (c RGB) ComponentCount() int { return RGBModel.ComponentCount() }

func (c RGB) Components() []float32 {
	return []float32{c.R, c.G, c.B, c.Alpha}
}

func (c RGB) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(RGBModel, i)
}

func (c RGB) Interpolate(other Color, t float32) Color {
	return interpolate(RGBModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c RGB) WithAlpha(alpha float32) RGB {
	c.Alpha = alpha
	return c
}

func (c RGB) String() string {
	return format(RGBModel, c.Components(), -1)
}

func (c RGB) ToRGB() RGB {
	return c
}

func (c RGB) ToHSL() HSL {
	h, s, l := hsl.SRGBToHSL(c.R, c.G, c.B)
	return HSL{h, s, l, c.Alpha}
}

func (c RGB) ToHSV() HSV {
	h, s, v := hsl.SRGBToHSV(c.R, c.G, c.B)
	return HSV{h, s, v, c.Alpha}
}

func (c RGB) ToXYZ() XYZ {
	x, y, z := cie.SRGBToXYZ(c.R, c.G, c.B)
	return XYZ{x, y, z, c.Alpha}
}

func (c RGB) ToLAB() LAB {
	return c.ToXYZ().ToLAB()
}

func (c RGB) ToLCHab() LCHab {
	return c.ToXYZ().ToLCHab()
}

func (c RGB) ToLUV() LUV {
	return c.ToXYZ().ToLUV()
}

func (c RGB) ToLCH() LCH {
	return c.ToXYZ().ToLCH()
}

func (c RGB) ToOklab() Oklab {
	l, a, b := oklab.SRGBToOklab(c.R, c.G, c.B)
	return Oklab{l, a, b, c.Alpha}
}

func (c RGB) ToOklch() Oklch {
	return c.ToOklab().ToOklch()
}

func (c RGB) ToCAM16() CAM16 {
	return c.ToXYZ().ToCAM16()
}

// RGB8 returns a new opaque [RGB] color from 8-bit components.
func RGB8(r, g, b uint8) RGB {
	return RGB{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// RGBA implements the [color.Color] interface,
// returning alpha-premultiplied components clamped to the gamut.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return cie.SRGBFloatToUint32(c.R, c.G, c.B, c.Alpha)
}

// To8 returns the 8-bit components of the color, not alpha-premultiplied,
// clamped to the gamut.
func (c RGB) To8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.Alpha)
}

// Hex returns the color as a hex string in the form #rrggbb,
// or #rrggbbaa if alpha is not 1.
func (c RGB) Hex() string {
	r, g, b, a := c.To8()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Clamp returns the color with all components clamped to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{math32.Clamp(c.R, 0, 1), math32.Clamp(c.G, 0, 1), math32.Clamp(c.B, 0, 1), math32.Clamp(c.Alpha, 0, 1)}
}

// InGamut returns whether all of the color components are in [0, 1],
// within a small tolerance for rounding errors.
func (c RGB) InGamut() bool {
	const tol = 1e-4
	for _, v := range c.Components() {
		if v < -tol || v > 1+tol {
			return false
		}
	}
	return true
}

func to8(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}
