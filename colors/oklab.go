// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"github.com/danielemaddaluno/colormath/colors/cam/oklab"
)

// Oklab is a color in the Oklab perceptual space.
type Oklab struct {
	// L is the perceived lightness in [0, 1].
	L float32

	// A is the green-red axis.
	A float32

	// B is the blue-yellow axis.
	B float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewOklab returns a new opaque [Oklab] color.
func NewOklab(l, a, b float32) Oklab {
	return Oklab{L: l, A: a, B: b, Alpha: 1}
}

// OklabModel is the model of the Oklab space.
var OklabModel = &Model[Oklab]{
	name:       "oklab",
	components: []ComponentInfo{rect("l", 0, 1), rect("a", -0.2339, 0.2762), rect("b", -0.3115, 0.1986), alpha},
	convert:    Color.ToOklab,
	create: func(c []float32) Oklab {
		return Oklab{c[0], c[1], c[2], c[3]}
	},
}

func (c Oklab) Space() Space { return OklabModel }

func (c Oklab) ComponentCount() int { return OklabModel.ComponentCount() }

func (c Oklab) Components() []float32 {
	return []float32{c.L, c.A, c.B, c.Alpha}
}

func (c Oklab) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(OklabModel, i)
}

func (c Oklab) Interpolate(other Color, t float32) Color {
	return interpolate(OklabModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Oklab) WithAlpha(alpha float32) Oklab {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c Oklab) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c Oklab) String() string {
	return format(OklabModel, c.Components(), -1)
}

func (c Oklab) ToRGB() RGB {
	r, g, b := oklab.OklabToSRGB(c.L, c.A, c.B)
	return RGB{r, g, b, c.Alpha}
}

func (c Oklab) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

func (c Oklab) ToHSV() HSV {
	return c.ToRGB().ToHSV()
}

func (c Oklab) ToXYZ() XYZ {
	return c.ToRGB().ToXYZ()
}

func (c Oklab) ToLAB() LAB {
	return c.ToRGB().ToLAB()
}

func (c Oklab) ToLCHab() LCHab {
	return c.ToRGB().ToLCHab()
}

func (c Oklab) ToLUV() LUV {
	return c.ToRGB().ToLUV()
}

func (c Oklab) ToLCH() LCH {
	return c.ToRGB().ToLCH()
}

func (c Oklab) ToOklab() Oklab {
	return c
}

func (c Oklab) ToOklch() Oklch {
	ch, h := cie.RectToPolar(c.A, c.B)
	return Oklch{c.L, ch, h, c.Alpha}
}

func (c Oklab) ToCAM16() CAM16 {
	return c.ToRGB().ToCAM16()
}
