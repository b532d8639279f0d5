// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cie"

// LAB is a color in the CIE L*a*b* space, relative to the D65 white point.
// Zero lightness is black, regardless of a and b.
type LAB struct {
	// L is the lightness in [0, 100].
	L float32

	// A is the green-red axis.
	A float32

	// B is the blue-yellow axis.
	B float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewLAB returns a new opaque [LAB] color.
func NewLAB(l, a, b float32) LAB {
	return LAB{L: l, A: a, B: b, Alpha: 1}
}

// LABModel is the model of the LAB space.
var LABModel = &Model[LAB]{
	name:       "lab",
	components: []ComponentInfo{rect("l", 0, 100), rect("a", -86.18, 98.24), rect("b", -107.86, 94.48), alpha},
	convert:    Color.ToLAB,
	create: func(c []float32) LAB {
		return LAB{c[0], c[1], c[2], c[3]}
	},
}

func (c LAB) Space() Space { return LABModel }

func (c LAB) ComponentCount() int { return LABModel.ComponentCount() }

func (c LAB) Components() []float32 {
	return []float32{c.L, c.A, c.B, c.Alpha}
}

func (c LAB) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(LABModel, i)
}

func (c LAB) Interpolate(other Color, t float32) Color {
	return interpolate(LABModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c LAB) WithAlpha(alpha float32) LAB {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c LAB) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c LAB) String() string {
	return format(LABModel, c.Components(), -1)
}

func (c LAB) ToRGB() RGB {
	return c.ToXYZ().ToRGB()
}

func (c LAB) ToHSL() HSL {
	return c.ToXYZ().ToHSL()
}

func (c LAB) ToHSV() HSV {
	return c.ToXYZ().ToHSV()
}

func (c LAB) ToXYZ() XYZ {
	if c.L == 0 {
		return XYZ{0, 0, 0, c.Alpha}
	}
	x, y, z := cie.LABToXYZ(c.L, c.A, c.B)
	return XYZ{x, y, z, c.Alpha}
}

func (c LAB) ToLAB() LAB {
	return c
}

func (c LAB) ToLCHab() LCHab {
	ch, h := cie.RectToPolar(c.A, c.B)
	return LCHab{c.L, ch, h, c.Alpha}
}

func (c LAB) ToLUV() LUV {
	return c.ToXYZ().ToLUV()
}

func (c LAB) ToLCH() LCH {
	return c.ToXYZ().ToLCH()
}

func (c LAB) ToOklab() Oklab {
	return c.ToXYZ().ToOklab()
}

func (c LAB) ToOklch() Oklch {
	return c.ToXYZ().ToOklch()
}

func (c LAB) ToCAM16() CAM16 {
	return c.ToXYZ().ToCAM16()
}
