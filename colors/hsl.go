// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/hsl"

// HSL is a color in the HSL cylindrical representation of sRGB.
type HSL struct {
	// H is the hue in degrees [0, 360).
	H float32

	// S is the saturation in [0, 1].
	S float32

	// L is the lightness in [0, 1].
	L float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewHSL returns a new opaque [HSL] color.
func NewHSL(h, s, l float32) HSL {
	return HSL{H: h, S: s, L: l, Alpha: 1}
}

// HSLModel is the model of the HSL space.
var HSLModel = &Model[HSL]{
	name:       "hsl",
	components: []ComponentInfo{hue("h"), rect("s", 0, 1), rect("l", 0, 1), alpha},
	convert:    Color.ToHSL,
	create: func(c []float32) HSL {
		return HSL{c[0], c[1], c[2], c[3]}
	},
}

func (c HSL) Space() Space { return HSLModel }

func (c HSL) ComponentCount() int { return HSLModel.ComponentCount() }

func (c HSL) Components() []float32 {
	return []float32{c.H, c.S, c.L, c.Alpha}
}

func (c HSL) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(HSLModel, i)
}

func (c HSL) Interpolate(other Color, t float32) Color {
	return interpolate(HSLModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c HSL) WithAlpha(alpha float32) HSL {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c HSL) String() string {
	return format(HSLModel, c.Components(), -1)
}

func (c HSL) ToRGB() RGB {
	r, g, b := hsl.HSLToSRGB(c.H, c.S, c.L)
	return RGB{r, g, b, c.Alpha}
}

func (c HSL) ToHSL() HSL {
	return c
}

func (c HSL) ToHSV() HSV {
	return c.ToRGB().ToHSV()
}

func (c HSL) ToXYZ() XYZ {
	return c.ToRGB().ToXYZ()
}

func (c HSL) ToLAB() LAB {
	return c.ToRGB().ToLAB()
}

func (c HSL) ToLCHab() LCHab {
	return c.ToRGB().ToLCHab()
}

func (c HSL) ToLUV() LUV {
	return c.ToRGB().ToLUV()
}

func (c HSL) ToLCH() LCH {
	return c.ToRGB().ToLCH()
}

func (c HSL) ToOklab() Oklab {
	return c.ToRGB().ToOklab()
}

func (c HSL) ToOklch() Oklch {
	return c.ToRGB().ToOklch()
}

func (c HSL) ToCAM16() CAM16 {
	return c.ToRGB().ToCAM16()
}
