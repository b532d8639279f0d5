// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cie"

// LCHab is a color in the cylindrical representation of [LAB].
type LCHab struct {
	// L is the lightness in [0, 100].
	L float32

	// C is the chroma.
	C float32

	// H is the hue in degrees [0, 360).
	H float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewLCHab returns a new opaque [LCHab] color.
func NewLCHab(l, c, h float32) LCHab {
	return LCHab{L: l, C: c, H: h, Alpha: 1}
}

// LCHabModel is the model of the LCHab space.
var LCHabModel = &Model[LCHab]{
	name:       "lchab",
	components: []ComponentInfo{rect("l", 0, 100), rect("c", 0, 133.81), hue("h"), alpha},
	convert:    Color.ToLCHab,
	create: func(c []float32) LCHab {
		return LCHab{c[0], c[1], c[2], c[3]}
	},
}

func (c LCHab) Space() Space { return LCHabModel }

func (c LCHab) ComponentCount() int { return LCHabModel.ComponentCount() }

func (c LCHab) Components() []float32 {
	return []float32{c.L, c.C, c.H, c.Alpha}
}

func (c LCHab) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(LCHabModel, i)
}

func (c LCHab) Interpolate(other Color, t float32) Color {
	return interpolate(LCHabModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c LCHab) WithAlpha(alpha float32) LCHab {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c LCHab) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c LCHab) String() string {
	return format(LCHabModel, c.Components(), -1)
}

func (c LCHab) ToRGB() RGB {
	return c.ToLAB().ToRGB()
}

func (c LCHab) ToHSL() HSL {
	return c.ToLAB().ToHSL()
}

func (c LCHab) ToHSV() HSV {
	return c.ToLAB().ToHSV()
}

func (c LCHab) ToXYZ() XYZ {
	return c.ToLAB().ToXYZ()
}

func (c LCHab) ToLAB() LAB {
	a, b := cie.PolarToRect(c.C, c.H)
	return LAB{c.L, a, b, c.Alpha}
}

func (c LCHab) ToLCHab() LCHab {
	return c
}

func (c LCHab) ToLUV() LUV {
	return c.ToLAB().ToLUV()
}

func (c LCHab) ToLCH() LCH {
	return c.ToLAB().ToLCH()
}

func (c LCHab) ToOklab() Oklab {
	return c.ToLAB().ToOklab()
}

func (c LCHab) ToOklch() Oklch {
	return c.ToLAB().ToOklch()
}

func (c LCHab) ToCAM16() CAM16 {
	return c.ToLAB().ToCAM16()
}
