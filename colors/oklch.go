// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cie"

// Oklch is a color in the cylindrical representation of [Oklab].
type Oklch struct {
	// L is the perceived lightness in [0, 1].
	L float32

	// C is the chroma.
	C float32

	// H is the hue in degrees [0, 360).
	H float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewOklch returns a new opaque [Oklch] color.
func NewOklch(l, c, h float32) Oklch {
	return Oklch{L: l, C: c, H: h, Alpha: 1}
}

// OklchModel is the model of the Oklch space.
var OklchModel = &Model[Oklch]{
	name:       "oklch",
	components: []ComponentInfo{rect("l", 0, 1), rect("c", 0, 0.3225), hue("h"), alpha},
	convert:    Color.ToOklch,
	create: func(c []float32) Oklch {
		return Oklch{c[0], c[1], c[2], c[3]}
	},
}

func (c Oklch) Space() Space { return OklchModel }

func (c Oklch) ComponentCount() int { return OklchModel.ComponentCount() }

func (c Oklch) Components() []float32 {
	return []float32{c.L, c.C, c.H, c.Alpha}
}

func (c Oklch) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(OklchModel, i)
}

func (c Oklch) Interpolate(other Color, t float32) Color {
	return interpolate(OklchModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Oklch) WithAlpha(alpha float32) Oklch {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c Oklch) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c Oklch) String() string {
	return format(OklchModel, c.Components(), -1)
}

func (c Oklch) ToRGB() RGB {
	return c.ToOklab().ToRGB()
}

func (c Oklch) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

func (c Oklch) ToHSV() HSV {
	return c.ToRGB().ToHSV()
}

func (c Oklch) ToXYZ() XYZ {
	return c.ToRGB().ToXYZ()
}

func (c Oklch) ToLAB() LAB {
	return c.ToRGB().ToLAB()
}

func (c Oklch) ToLCHab() LCHab {
	return c.ToRGB().ToLCHab()
}

func (c Oklch) ToLUV() LUV {
	return c.ToRGB().ToLUV()
}

func (c Oklch) ToLCH() LCH {
	return c.ToRGB().ToLCH()
}

func (c Oklch) ToOklab() Oklab {
	a, b := cie.PolarToRect(c.C, c.H)
	return Oklab{c.L, a, b, c.Alpha}
}

func (c Oklch) ToOklch() Oklch {
	return c
}

func (c Oklch) ToCAM16() CAM16 {
	return c.ToRGB().ToCAM16()
}
