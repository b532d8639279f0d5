// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/danielemaddaluno/colormath/math32"

// RectToPolar converts the rectangular opponent coordinates a and b
// (as in L*a*b*, L*u*v* or Oklab) to chroma and hue in degrees [0, 360).
func RectToPolar(a, b float32) (c, h float32) {
	c = math32.Hypot(a, b)
	h = math32.SanitizeDegrees(math32.RadToDeg(math32.Atan2(b, a)))
	return
}

// PolarToRect converts chroma and hue in degrees to the rectangular
// opponent coordinates a and b. The hue may be any angle.
func PolarToRect(c, h float32) (a, b float32) {
	hr := math32.DegToRad(math32.SanitizeDegrees(h))
	a = c * math32.Cos(hr)
	b = c * math32.Sin(hr)
	return
}
