// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/danielemaddaluno/colormath/math32"

// whiteUV returns the u', v' chromaticity coordinates of [WhiteD65].
func whiteUV() (un, vn float32) {
	d := WhiteD65[0] + 15*WhiteD65[1] + 3*WhiteD65[2]
	return 4 * WhiteD65[0] / d, 9 * WhiteD65[1] / d
}

// XYZToLUV converts a color from XYZ to CIE L*u*v* coordinates
// using the standard D65 illuminant. A color with no
// chromaticity (x + 15y + 3z = 0) gets u = v = 0.
func XYZToLUV(x, y, z float32) (l, u, v float32) {
	yr := y / WhiteD65[1]
	if yr > LABEpsilon {
		l = 116*math32.Cbrt(yr) - 16
	} else {
		l = LABKappa * yr
	}
	d := x + 15*y + 3*z
	if d == 0 || l == 0 {
		return l, 0, 0
	}
	un, vn := whiteUV()
	u = 13 * l * (4*x/d - un)
	v = 13 * l * (9*y/d - vn)
	return
}

// LUVToXYZ converts a color from CIE L*u*v* to XYZ coordinates
// using the standard D65 illuminant. Zero lightness is black,
// regardless of u and v.
func LUVToXYZ(l, u, v float32) (x, y, z float32) {
	if l <= 0 {
		return 0, 0, 0
	}
	if l > LABKappa*LABEpsilon {
		fy := (l + 16) / 116
		y = fy * fy * fy
	} else {
		y = l / LABKappa
	}
	y *= WhiteD65[1]
	un, vn := whiteUV()
	up := u/(13*l) + un
	vp := v/(13*l) + vn
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return
}
