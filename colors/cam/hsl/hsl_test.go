// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"testing"

	"github.com/danielemaddaluno/colormath/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var samples = [][3]float32{
	{0.8, 0.447, 0.263},
	{0.55, 0.79, 0.39},
	{0.16, 0.035, 0.22},
	{0.2, 0.4, 0.9},
	{0.95, 0.9, 0.1},
	{0.5, 0.5, 0.5},
	{0, 0, 0},
	{1, 1, 1},
	{1, 0, 0.2},
}

func TestHSL(t *testing.T) {
	r, g, b := HSLToSRGB(96, 0.48, 0.59)
	tolassert.Equal(t, float32(0.55064), r)
	tolassert.Equal(t, float32(0.7868), g)
	tolassert.Equal(t, float32(0.3932), b)

	h, s, l := SRGBToHSL(1, 1, 1)
	assert.Equal(t, float32(0), h)
	assert.Equal(t, float32(0), s)
	assert.Equal(t, float32(1), l)

	// hue is reduced modulo 360
	r2, g2, b2 := HSLToSRGB(96+720, 0.48, 0.59)
	tolassert.Equal(t, r, r2)
	tolassert.Equal(t, g, g2)
	tolassert.Equal(t, b, b2)

	for _, c := range samples {
		h, s, l := SRGBToHSL(c[0], c[1], c[2])
		ch, cs, cl := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Hsl()
		tolassert.EqualTol(t, float32(ch), h, 1e-3)
		tolassert.EqualTol(t, float32(cs), s, 1e-4)
		tolassert.EqualTol(t, float32(cl), l, 1e-4)

		r, g, b := HSLToSRGB(h, s, l)
		tolassert.EqualTol(t, c[0], r, 1e-5)
		tolassert.EqualTol(t, c[1], g, 1e-5)
		tolassert.EqualTol(t, c[2], b, 1e-5)
	}
}

func TestHSV(t *testing.T) {
	r, g, b := HSVToSRGB(300, 1, 1)
	tolassert.Equal(t, float32(1), r)
	tolassert.Equal(t, float32(0), g)
	tolassert.Equal(t, float32(1), b)

	for _, c := range samples {
		h, s, v := SRGBToHSV(c[0], c[1], c[2])
		ch, cs, cv := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Hsv()
		tolassert.EqualTol(t, float32(ch), h, 1e-3)
		tolassert.EqualTol(t, float32(cs), s, 1e-4)
		tolassert.EqualTol(t, float32(cv), v, 1e-4)

		r, g, b := HSVToSRGB(h, s, v)
		tolassert.EqualTol(t, c[0], r, 1e-5)
		tolassert.EqualTol(t, c[1], g, 1e-5)
		tolassert.EqualTol(t, c[2], b, 1e-5)
	}
}

func TestOutOfGamutSaturation(t *testing.T) {
	h, s, l := SRGBToHSL(1.2, 0.8, 1)
	tolassert.Equal(t, 330, h)
	assert.Equal(t, float32(0), s)
	tolassert.Equal(t, 1, l)

	h, s, l = SRGBToHSL(0, -0.4, -0.2)
	tolassert.Equal(t, 330, h)
	assert.Equal(t, float32(0), s)
	tolassert.Equal(t, -0.2, l)

	h, s, v := SRGBToHSV(0, -0.2, -0.1)
	tolassert.Equal(t, 330, h)
	assert.Equal(t, float32(0), s)
	assert.Equal(t, float32(0), v)
}
