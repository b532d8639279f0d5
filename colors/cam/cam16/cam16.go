// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cam16 implements the CAM16 color appearance model,
// which predicts perceived lightness, chroma and hue of a color
// under given viewing conditions.
package cam16

import (
	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"github.com/danielemaddaluno/colormath/math32"
)

// CAM represents a point in the CAM16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float32

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float32

	// saturation (s) is the colorfulness relative to brightness
	Saturation float32

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float32

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float32
}

// XYZToLMS converts 100-base XYZ to the LMS cone response space
// using the CAM16 matrix.
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LuminanceAdapt applies the illuminant discounting and the
// post-adaptation nonlinear compression of the view to LMS values.
func LuminanceAdapt(l, m, s float32, vw *View) (la, ma, sa float32) {
	return luminanceAdaptComp(l*vw.RGBD[0], vw.FL),
		luminanceAdaptComp(m*vw.RGBD[1], vw.FL),
		luminanceAdaptComp(s*vw.RGBD[2], vw.FL)
}

func luminanceAdaptComp(v, fl float32) float32 {
	af := math32.Pow(fl*math32.Abs(v)/100, 0.42)
	return math32.Sign(v) * 400 * af / (af + 27.13)
}

// luminanceUnadaptComp inverts [luminanceAdaptComp].
func luminanceUnadaptComp(v, fl float32) float32 {
	base := max(0, (27.13*math32.Abs(v))/(400-math32.Abs(v)))
	return math32.Sign(v) * (100 / fl) * math32.Pow(base, 1/0.42)
}

// LMSToOps converts adapted LMS to the opponent responses:
// red-green, yellow-blue, the achromatic response and the
// normalization used for chroma.
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	rA, gA, bA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*rA - 12*gA + bA) / 11
	yellowVblue = (rA + gA - 2*bA) / 9
	grey = (40*rA + 20*gA + bA) / 20
	greyNorm = (20*rA + 20*gA + 21*bA) / 20
	return
}

// FromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under standard viewing conditions.
func FromJCH(j, c, h float32) *CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions.
func FromJCHView(j, c, h float32, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.C) * math32.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = c * vw.FLRoot
	if j > 0 {
		alpha := c / math32.Sqrt(j/100)
		cam.Saturation = 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	}
	return cam
}

// FromSRGB returns CAM values from given sRGB color coordinates
// in [0, 1] under standard viewing conditions.
func FromSRGB(r, g, b float32) *CAM {
	return FromXYZ(cie.SRGBToXYZ100(r, g, b))
}

// FromXYZ returns CAM values from the given 100-base XYZ coordinates
// under standard viewing conditions.
func FromXYZ(x, y, z float32) *CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView returns CAM values from the given 100-base XYZ coordinates
// under the given viewing conditions.
func FromXYZView(x, y, z float32, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	redVgreen, yellowVblue, grey, greyNorm := LMSToOps(l, m, s, vw)

	hue := math32.SanitizeDegrees(math32.RadToDeg(math32.Atan2(yellowVblue, redVgreen)))
	// achromatic response to color
	ac := grey * vw.NBB

	// CAM16 lightness and brightness
	J := 100 * math32.Pow(ac/vw.AW, vw.C*vw.Z)
	Q := (4 / vw.C) * math32.Sqrt(J/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math32.Cos(math32.DegToRad(huePrime)+2) + 3.8)
	p1 := 50000 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math32.Hypot(redVgreen, yellowVblue) / (greyNorm + 0.305)
	alpha := math32.Pow(t, 0.9) * math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)

	// CAM16 chroma, colorfulness, saturation
	C := alpha * math32.Sqrt(J/100)
	M := C * vw.FLRoot
	s = 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: s, Brightness: Q, Lightness: J}
}

// SRGB returns the CAM color as sRGB coordinates
// under standard viewing conditions.
func (cam *CAM) SRGB() (r, g, b float32) {
	return cie.XYZ100ToSRGB(cam.XYZ())
}

// XYZ returns the CAM color as 100-base XYZ coordinates
// under standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float32) {
	return cam.XYZView(StdView())
}

// XYZView returns the CAM color as 100-base XYZ coordinates
// under the given viewing conditions. Zero lightness is black.
func (cam *CAM) XYZView(vw *View) (x, y, z float32) {
	if cam.Lightness <= 0 {
		return 0, 0, 0
	}
	alpha := cam.Chroma / math32.Sqrt(cam.Lightness/100)
	t := math32.Pow(alpha/math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73), 1/0.9)

	hRad := math32.DegToRad(cam.Hue)
	eHue := 0.25 * (math32.Cos(hRad+2) + 3.8)
	ac := vw.AW * math32.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000 / 13) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math32.Sin(hRad)
	hCos := math32.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := luminanceUnadaptComp(rA, vw.FL) / vw.RGBD[0]
	gF := luminanceUnadaptComp(gA, vw.FL) / vw.RGBD[1]
	bF := luminanceUnadaptComp(bA, vw.FL) / vw.RGBD[2]

	x = 1.86206786*rF - 1.01125463*gF + 0.14918677*bF
	y = 0.38752654*rF + 0.62144744*gF - 0.00897398*bF
	z = -0.01584150*rF - 0.03412294*gF + 1.04996444*bF
	return
}
