// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cie"

// LCH is a color in CIE LCh(uv), the cylindrical representation of [LUV].
// For the cylindrical representation of [LAB], see [LCHab].
type LCH struct {
	// L is the lightness in [0, 100].
	L float32

	// C is the chroma.
	C float32

	// H is the hue in degrees [0, 360).
	H float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewLCH returns a new opaque [LCH] color.
func NewLCH(l, c, h float32) LCH {
	return LCH{L: l, C: c, H: h, Alpha: 1}
}

// LCHModel is the model of the CIE LCh(uv) space.
var LCHModel = &Model[LCH]{
	name:       "lch",
	components: []ComponentInfo{rect("l", 0, 100), rect("c", 0, 179.04), hue("h"), alpha},
	convert:    Color.ToLCH,
	create: func(c []float32) LCH {
		return LCH{c[0], c[1], c[2], c[3]}
	},
}

func (c LCH) Space() Space { return LCHModel }

func (c LCH) ComponentCount() int { return LCHModel.ComponentCount() }

func (c LCH) Components() []float32 {
	return []float32{c.L, c.C, c.H, c.Alpha}
}

func (c LCH) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(LCHModel, i)
}

func (c LCH) Interpolate(other Color, t float32) Color {
	return interpolate(LCHModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c LCH) WithAlpha(alpha float32) LCH {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c LCH) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c LCH) String() string {
	return format(LCHModel, c.Components(), -1)
}

func (c LCH) ToRGB() RGB {
	if c.L == 0 {
		return RGB{0, 0, 0, c.Alpha}
	}
	return c.ToLUV().ToXYZ().ToRGB()
}

func (c LCH) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

func (c LCH) ToHSV() HSV {
	return c.ToRGB().ToHSV()
}

func (c LCH) ToXYZ() XYZ {
	return c.ToLUV().ToXYZ()
}

func (c LCH) ToLAB() LAB {
	return c.ToLUV().ToLAB()
}

func (c LCH) ToLCHab() LCHab {
	return c.ToLUV().ToLCHab()
}

func (c LCH) ToLUV() LUV {
	u, v := cie.PolarToRect(c.C, c.H)
	return LUV{c.L, u, v, c.Alpha}
}

func (c LCH) ToLCH() LCH {
	return c
}

func (c LCH) ToOklab() Oklab {
	return c.ToRGB().ToOklab()
}

func (c LCH) ToOklch() Oklch {
	return c.ToRGB().ToOklch()
}

func (c LCH) ToCAM16() CAM16 {
	return c.ToLUV().ToCAM16()
}
