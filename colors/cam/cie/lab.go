// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/danielemaddaluno/colormath/math32"

const (
	// LABEpsilon is the CIE standard threshold (6/29)^3 between the
	// linear and cube-root segments of the L* curve.
	LABEpsilon = 216.0 / 24389.0

	// LABKappa is the CIE standard slope (29/3)^3 of the linear
	// segment of the L* curve.
	LABKappa = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float32) float32 {
	if t > LABEpsilon {
		return math32.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > LABEpsilon {
		return ft3
	}
	return (116*ft - 16) / LABKappa
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the standard D65 illuminant
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to a XYZ coordinates
// using the standard D65 illuminant
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0]
	if l > LABKappa*LABEpsilon {
		y = fy * fy * fy
	} else {
		y = l / LABKappa
	}
	y *= WhiteD65[1]
	z = LABUncompress(fz) * WhiteD65[2]
	return
}

// LToY Converts an L* value to a Y value.
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance.
// L* measures perceptual luminance, a linear scale. Y in XYZ
// measures relative luminance, a logarithmic scale.
// The L* value ranges from 0 to 100; the returned Y is 100-base.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL Converts a Y value to an L* value.
// The Y value is 100-base; the returned L* ranges from 0 to 100.
func YToL(y float32) float32 {
	return LABCompress(y/100)*116 - 16
}
