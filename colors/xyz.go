// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"github.com/danielemaddaluno/colormath/colors/cam/cam16"
	"github.com/danielemaddaluno/colormath/colors/cam/cie"
)

// XYZ is a color in the CIE 1931 XYZ space, relative to the D65
// white point with a Y of 1 for white.
type XYZ struct {
	// X is the X tristimulus value.
	X float32

	// Y is the luminance.
	Y float32

	// Z is the Z tristimulus value.
	Z float32

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

// NewXYZ returns a new opaque [XYZ] color.
func NewXYZ(x, y, z float32) XYZ {
	return XYZ{X: x, Y: y, Z: z, Alpha: 1}
}

// XYZModel is the model of the XYZ space.
var XYZModel = &Model[XYZ]{
	name:       "xyz",
	components: []ComponentInfo{rect("x", 0, 0.9505), rect("y", 0, 1), rect("z", 0, 1.0891), alpha},
	convert:    Color.ToXYZ,
	create: func(c []float32) XYZ {
		return XYZ{c[0], c[1], c[2], c[3]}
	},
}

func (c XYZ) Space() Space { return XYZModel }

func (c XYZ) ComponentCount() int { return XYZModel.ComponentCount() }

func (c XYZ) Components() []float32 {
	return []float32{c.X, c.Y, c.Z, c.Alpha}
}

func (c XYZ) ComponentIsPolar(i int) (bool, error) {
	return componentIsPolar(XYZModel, i)
}

func (c XYZ) Interpolate(other Color, t float32) Color {
	return interpolate(XYZModel, c, other, t)
}

// WithAlpha returns a copy of the color with the given alpha.
func (c XYZ) WithAlpha(alpha float32) XYZ {
	c.Alpha = alpha
	return c
}

// RGBA implements the [color.Color] interface.
func (c XYZ) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

func (c XYZ) String() string {
	return format(XYZModel, c.Components(), -1)
}

func (c XYZ) ToRGB() RGB {
	r, g, b := cie.XYZToSRGB(c.X, c.Y, c.Z)
	return RGB{r, g, b, c.Alpha}
}

func (c XYZ) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

func (c XYZ) ToHSV() HSV {
	return c.ToRGB().ToHSV()
}

func (c XYZ) ToXYZ() XYZ {
	return c
}

func (c XYZ) ToLAB() LAB {
	l, a, b := cie.XYZToLAB(c.X, c.Y, c.Z)
	return LAB{l, a, b, c.Alpha}
}

func (c XYZ) ToLCHab() LCHab {
	return c.ToLAB().ToLCHab()
}

func (c XYZ) ToLUV() LUV {
	l, u, v := cie.XYZToLUV(c.X, c.Y, c.Z)
	return LUV{l, u, v, c.Alpha}
}

func (c XYZ) ToLCH() LCH {
	return c.ToLUV().ToLCH()
}

func (c XYZ) ToOklab() Oklab {
	return c.ToRGB().ToOklab()
}

func (c XYZ) ToOklch() Oklch {
	return c.ToRGB().ToOklch()
}

func (c XYZ) ToCAM16() CAM16 {
	cam := cam16.FromXYZ(100*c.X, 100*c.Y, 100*c.Z)
	return CAM16{cam.Lightness, cam.Chroma, cam.Hue, c.Alpha}
}
