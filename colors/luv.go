// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cie"

// LUV is a color in the CIE L*u*v* space, relative to the D65 white point.
// Zero lightness is black, regardless of u and v.
type LUV struct {
	// L is the lightness in [0, 100].
	L float32

	// U is the green-red axis.
	U float32

	// V is the blue-yellow axis.
	V float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewLUV returns a new opaque [LUV] color.
func NewLUV(l, u, v float32) LUV {
	return LUV{L: l, U: u, V: v, Alpha: 1}
}

// LUVModel is the model of the LUV space.
var LUVModel = &Model[LUV]{
	name:       "luv",
	components: []ComponentInfo{rect("l", 0, 100), rect("u", -83.07, 175.01), rect("v", -134.1, 107.42), alpha},
	convert:    Color.ToLUV,
	create: func(c []float32) LUV {
		return LUV{c[0], c[1], c[2], c[3]}
	},
}

func (c LUV) Space() Space { return LUVModel }

func (c LUV) ComponentCount() int { return LUVModel.ComponentCount() }

func (c LUV) Components() []float32 {
	return []float32{c.L, c.U, c.V, c.Alpha}
}

func (c LUV) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(LUVModel, i)
}

func (c LUV) Interpolate(other Color, t float32) Color {
	return interpolate(LUVModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c LUV) WithAlpha(alpha float32) LUV {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c LUV) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c LUV) String() string {
	return format(LUVModel, c.Components(), -1)
}

func (c LUV) ToRGB() RGB {
	return c.ToXYZ().ToRGB()
}

func (c LUV) ToHSL() HSL {
	return c.ToXYZ().ToHSL()
}

func (c LUV) ToHSV() HSV {
	return c.ToXYZ().ToHSV()
}

func (c LUV) ToXYZ() XYZ {
	x, y, z := cie.LUVToXYZ(c.L, c.U, c.V)
	return XYZ{x, y, z, c.Alpha}
}

func (c LUV) ToLAB() LAB {
	return c.ToXYZ().ToLAB()
}

func (c LUV) ToLCHab() LCHab {
	return c.ToXYZ().ToLCHab()
}

func (c LUV) ToLUV() LUV {
	return c
}

func (c LUV) ToLCH() LCH {
	ch, h := cie.RectToPolar(c.U, c.V)
	return LCH{c.L, ch, h, c.Alpha}
}

func (c LUV) ToOklab() Oklab {
	return c.ToXYZ().ToOklab()
}

func (c LUV) ToOklch() Oklch {
	return c.ToXYZ().ToOklch()
}

func (c LUV) ToCAM16() CAM16 {
	return c.ToXYZ().ToCAM16()
}
