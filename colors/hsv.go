// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/hsl"

// HSV is a color in the HSV (also known as HSB) cylindrical
// representation of sRGB.
type HSV struct {
	// H is the hue in degrees [0, 360).
	H float32

	// S is the saturation in [0, 1].
	S float32

	// V is the value in [0, 1].
	V float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewHSV returns a new opaque [HSV] color.
func NewHSV(h, s, v float32) HSV {
	return HSV{H: h, S: s, V: v, Alpha: 1}
}

// HSVModel is the model of the HSV space.
var HSVModel = &Model[HSV]{
	name:       "hsv",
	components: []ComponentInfo{hue("h"), rect("s", 0, 1), rect("v", 0, 1), alpha},
	convert:    Color.ToHSV,
	create: func(c []float32) HSV {
		return HSV{c[0], c[1], c[2], c[3]}
	},
}

func (c HSV) Space() Space { return HSVModel }

func (c HSV) ComponentCount() int { return HSVModel.ComponentCount() }

func (c HSV) Components() []float32 {
	return []float32{c.H, c.S, c.V, c.Alpha}
}

func (c HSV) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(HSVModel, i)
}

func (c HSV) Interpolate(other Color, t float32) Color {
	return interpolate(HSVModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c HSV) WithAlpha(alpha float32) HSV {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c HSV) String() string {
	return format(HSVModel, c.Components(), -1)
}

func (c HSV) ToRGB() RGB {
	r, g, b := hsl.HSVToSRGB(c.H, c.S, c.V)
	return RGB{r, g, b, c.Alpha}
}

func (c HSV) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

func (c HSV) ToHSV() HSV {
	return c
}

func (c HSV) ToXYZ() XYZ {
	return c.ToRGB().ToXYZ()
}

func (c HSV) ToLAB() LAB {
	return c.ToRGB().ToLAB()
}

func (c HSV) ToLCHab() LCHab {
	return c.ToRGB().ToLCHab()
}

func (c HSV) ToLUV() LUV {
	return c.ToRGB().ToLUV()
}

func (c HSV) ToLCH() LCH {
	return c.ToRGB().ToLCH()
}

func (c HSV) ToOklab() Oklab {
	return c.ToRGB().ToOklab()
}

func (c HSV) ToOklch() Oklch {
	return c.ToRGB().ToOklch()
}

func (c HSV) ToCAM16() CAM16 {
	return c.ToRGB().ToCAM16()
}
