// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/danielemaddaluno/colormath/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "lch(50 30 120)", NewLCH(50, 30, 120).String())
	assert.Equal(t, "lch(50 30 120 / 0.5)", NewLCH(50, 30, 120).WithAlpha(0.5).String())
	assert.Equal(t, "rgb(0.25 0 1)", NewRGB(0.25, 0, 1).String())
	assert.Equal(t, "lab(0 -0.5 0)", LAB{0, -0.5, 0, 1}.String())
}

func TestFormat(t *testing.T) {
	c := NewLCHab(50.12345, 30, 120.6)
	assert.Equal(t, "lchab(50.12 30 120.6)", Format(c, 2))
	assert.Equal(t, "lchab(50 30 121)", Format(c, 0))
	assert.Equal(t, "lchab(50.12345 30 120.6)", Format(c, -1))
	assert.Equal(t, "oklab(0.5 0 -0.1 / 0.25)", Format(NewOklab(0.5, -0.00001, -0.1).WithAlpha(0.25), 3))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#8cc964", RGB8(140, 201, 100).Hex())
	assert.Equal(t, "#8cc96480", RGB8(140, 201, 100).WithAlpha(0.5).Hex())
	assert.Equal(t, "#ff0000", NewRGB(1.5, -0.5, 0).Hex())

	tests := []struct {
		hex        string
		r, g, b, a uint8
	}{
		{"#8cc964", 140, 201, 100, 255},
		{"8CC964", 140, 201, 100, 255},
		{"#abc", 0xaa, 0xbb, 0xcc, 255},
		{"#abcd", 0xaa, 0xbb, 0xcc, 0xdd},
		{"#11223344", 0x11, 0x22, 0x33, 0x44},
	}
	for _, test := range tests {
		c, err := FromHex(test.hex)
		require.NoError(t, err, test.hex)
		r, g, b, a := c.To8()
		assert.Equal(t, []uint8{test.r, test.g, test.b, test.a}, []uint8{r, g, b, a}, test.hex)
	}
	for _, bad := range []string{"", "#", "#12", "#12345", "#zzzzzz", "#+1+1+1"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrParse, bad)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		str  string
		want Color
	}{
		{"hsl(96, 48%, 59%)", NewHSL(96, 0.48, 0.59)},
		{"HSL(96 0.48 0.59)", NewHSL(96, 0.48, 0.59)},
		{"hsla(96, 0.48, 0.59, 0.5)", HSL{96, 0.48, 0.59, 0.5}},
		{" lch(50 30 120deg / 50%) ", LCH{50, 30, 120, 0.5}},
		{"lab(50% 20 -30)", NewLAB(50, 20, -30)},
		{"rgb(1 0 0.5)", NewRGB(1, 0, 0.5)},
		{"rgb(100%, 0%, 50%)", NewRGB(1, 0, 0.5)},
		{"cam16(40 20 300)", NewCAM16(40, 20, 300)},
		{"oklch(0.7 0.1 200 / 0)", Oklch{0.7, 0.1, 200, 0}},
		{"transparent", RGB{}},
	}
	for _, test := range tests {
		c, err := FromString(test.str)
		if assert.NoError(t, err, test.str) {
			assert.Equal(t, test.want, c, test.str)
		}
	}

	c, err := FromString("RebeccaPurple")
	require.NoError(t, err)
	r, g, b, a := c.ToRGB().To8()
	assert.Equal(t, []uint8{102, 51, 153, 255}, []uint8{r, g, b, a})

	c, err = FromString("#8cc964")
	require.NoError(t, err)
	assert.Equal(t, RGB8(140, 201, 100), c)
}

func TestFromStringErrors(t *testing.T) {
	for _, bad := range []string{
		"", "   ", "nope", "#12", "lch", "lch(50 30", "lch(1 2)", "lch(1 2 3 4 5)",
		"lch(1 2 / 0.5)", "lch(50 30 120 /)", "lab(50 -20% 0)", "lch(50 30 50%)",
		"rgb(1 0 x)", "rgb(1 0 nan)", "cmyk(0 0 0 1)",
	} {
		_, err := FromString(bad)
		assert.ErrorIs(t, err, ErrParse, bad)
	}
	_, err := FromString("cmyk(0 0 0 1)")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestStringRoundTrip(t *testing.T) {
	for _, m := range Models() {
		for _, s := range samples {
			c := m.ConvertColor(s)
			p, err := FromString(c.String())
			if assert.NoError(t, err, c.String()) {
				assert.Equal(t, c, p)
			}
			p, err = FromString(Format(c, 6))
			if assert.NoError(t, err) {
				assertColor(t, c, p)
			}
		}
	}
}

func TestMustFromString(t *testing.T) {
	assert.Equal(t, Color(NewLCH(50, 30, 120)), MustFromString("lch(50 30 120)"))
	assert.Panics(t, func() { MustFromString("nope") })
	assert.Equal(t, Color(NewLCH(50, 30, 120)), LogFromString("lch(50 30 120)"))
	assert.Nil(t, LogFromString("nope"))
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{255, 0, 0, 128})
	assert.Equal(t, RGB{1, 0, 0, float32(128) / 255}, c)

	c = FromColor(color.RGBA{128, 0, 0, 128})
	tolassert.Equal(t, 1, c.R)
	tolassert.Equal(t, 0.502, c.Alpha)

	c = FromColor(color.Transparent)
	assert.Equal(t, RGB{}, c)

	lch := NewLCH(50, 30, 120)
	assert.Equal(t, lch.ToRGB(), FromColor(lch))
}
