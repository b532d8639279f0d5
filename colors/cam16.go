// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/danielemaddaluno/colormath/colors/cam/cam16"

// CAM16 is a color in the lightness, chroma and hue dimensions (JCh)
// of the CAM16 color appearance model, under the standard viewing
// conditions of [cam16.NewStdView]. Zero lightness is black.
type CAM16 struct {
	// J is the lightness in [0, 100].
	J float32

	// C is the chroma.
	C float32

	// H is the hue in degrees [0, 360).
	H float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewCAM16 returns a new opaque [CAM16] color.
func NewCAM16(j, c, h float32) CAM16 {
	return CAM16{J: j, C: c, H: h, Alpha: 1}
}

// CAM16Model is the model of the CAM16 space.
var CAM16Model = &Model[CAM16]{
	name:       "cam16",
	components: []ComponentInfo{rect("j", 0, 100), rect("c", 0, 113.36), hue("h"), alpha},
	convert:    Color.ToCAM16,
	create: func(c []float32) CAM16 {
		return CAM16{c[0], c[1], c[2], c[3]}
	},
}

func (c CAM16) Space() Space { return CAM16Model }

func (c CAM16) ComponentCount() int { return CAM16Model.ComponentCount() }

func (c CAM16) Components() []float32 {
	return []float32{c.J, c.C, c.H, c.Alpha}
}

func (c CAM16) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(CAM16Model, i)
}

func (c CAM16) Interpolate(other Color, t float32) Color {
	return interpolate(CAM16Model, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c CAM16) WithAlpha(alpha float32) CAM16 {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c CAM16) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c CAM16) String() string {
	return format(CAM16Model, c.Components(), -1)
}

func (c CAM16) ToRGB() RGB {
	return c.ToXYZ().ToRGB()
}

func (c CAM16) ToHSL() HSL {
	return c.ToXYZ().ToHSL()
}

func (c CAM16) ToHSV() HSV {
	return c.ToXYZ().ToHSV()
}

func (c CAM16) ToXYZ() XYZ {
	x, y, z := cam16.FromJCH(c.J, c.C, c.H).XYZ()
	return XYZ{x / 100, y / 100, z / 100, c.Alpha}
}

func (c CAM16) ToLAB() LAB {
	return c.ToXYZ().ToLAB()
}

func (c CAM16) ToLCHab() LCHab {
	return c.ToXYZ().ToLCHab()
}

func (c CAM16) ToLUV() LUV {
	return c.ToXYZ().ToLUV()
}

func (c CAM16) ToLCH() LCH {
	return c.ToXYZ().ToLCH()
}

func (c CAM16) ToOklab() Oklab {
	return c.ToXYZ().ToOklab()
}

func (c CAM16) ToOklch() Oklch {
	return c.ToXYZ().ToOklch()
}

func (c CAM16) ToCAM16() CAM16 {
	return c
}
