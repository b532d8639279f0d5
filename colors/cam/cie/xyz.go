// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the standard D65 white point in XYZ coordinates,
// normalized so that Y = 1. It is the white of the sRGB matrices below,
// so sRGB white maps exactly onto it.
var WhiteD65 = [3]float32{0.95045593, 1, 1.08905775}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space,
// under D65 illumination, with Y of white = 1.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41239080*rl + 0.35758434*gl + 0.18048079*bl
	y = 0.21263901*rl + 0.71516868*gl + 0.07219232*bl
	z = 0.01933082*rl + 0.11919478*gl + 0.95053215*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear,
// under D65 illumination.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.24096994*x - 1.53738318*y - 0.49861076*z
	gl = -0.96924364*x + 1.87596750*y + 0.04155506*z
	bl = 0.05563008*x - 0.20397696*y + 1.05697151*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values, as used by color appearance models.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	return 100 * x, 100 * y, 100 * z
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100-base,
// into sRGB.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}
