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

package cam16

import (
	"sync"

	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"github.com/danielemaddaluno/colormath/math32"
)

// View represents the viewing conditions under which a color is seen.
// The computed fields are derived from the input fields by [View.Update],
// and are read-only afterwards.
type View struct {

	// white point illumination, 100-base XYZ -- typically D65 (the default)
	WhitePoint [3]float32

	// the ambient light strength in lux
	Luminance float32

	// the average luminance of 10 degrees around the color in question, as L*
	BgLuminance float32

	// the brightness of the entire environment: 0 = dark, 1 = dim, 2 = average
	Surround float32

	// whether the person's eyes have adapted to the lighting
	Adapted bool

	// computed from Luminance: the adapting luminance in cd/m^2
	AdaptingLuminance float32

	// computed: Y of background relative to white point (n)
	BgYToWhiteY float32

	// computed: achromatic response of the white point
	AW float32

	// computed: background induction factor (Nbb)
	NBB float32

	// computed: chromatic induction factor (Ncb)
	NCB float32

	// computed: impact of surround (c)
	C float32

	// computed: chromatic induction from the surround (Nc)
	NC float32

	// computed: discounting of the illuminant, per LMS channel
	RGBD [3]float32

	// computed: luminance level adaptation factor (FL)
	FL float32

	// computed: FL^(1/4)
	FLRoot float32

	// computed: base exponential nonlinearity (z)
	Z float32
}

// NewView returns a new view with computed fields set from the given
// 100-base white point and viewing condition parameters.
func NewView(whitePoint [3]float32, lum, bgLum, surround float32, adapted bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapted}
	vw.Update()
	return vw
}

// NewStdView returns the standard viewing conditions: a D65 white point,
// 200 lux ambient light, a 50 L* background, an average surround,
// and eyes not fully adapted.
func NewStdView() *View {
	wp := cie.WhiteD65
	return NewView([3]float32{wp[0] * 100, wp[1] * 100, wp[2] * 100}, 200, 50, 2, false)
}

// StdView returns a shared instance of [NewStdView],
// computed once on first use. It must not be modified.
var StdView = sync.OnceValue(NewStdView)

// Update computes all the derived fields from the input fields.
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math32.Pi) * (cie.LToY(50) / 100)
	bgLum := max(0.1, vw.BgLuminance) // background can't be black

	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	f := 0.8 + vw.Surround/10
	if f >= 0.9 {
		vw.C = math32.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = math32.Lerp(0.525, 0.59, (f-0.8)*10)
	}
	d := float32(1)
	if !vw.Adapted {
		d = f * (1 - (1/3.6)*math32.Exp((-vw.AdaptingLuminance-42)/92))
		d = math32.Clamp(d, 0, 1)
	}
	vw.NC = f
	vw.RGBD = [3]float32{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = k4*vw.AdaptingLuminance + 0.1*k4F*k4F*math32.Cbrt(5*vw.AdaptingLuminance)
	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	vw.BgYToWhiteY = cie.LToY(bgLum) / vw.WhitePoint[1]
	vw.Z = 1.48 + math32.Sqrt(vw.BgYToWhiteY)
	vw.NBB = 0.725 / math32.Pow(vw.BgYToWhiteY, 0.2)
	vw.NCB = vw.NBB

	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}
