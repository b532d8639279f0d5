// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/danielemaddaluno/colormath/base/errors"
	"github.com/danielemaddaluno/colormath/colors/cam/cie"
	"golang.org/x/image/colornames"
)

// FromHex parses the given hex color string, with or without
// a leading #, in the form rgb, rgba, rrggbb or rrggbbaa.
func FromHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	v := [4]uint8{3: 255}
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, ErrParse)
			}
			v[i] = uint8(d * 17)
		}
	case 6, 8:
		for i := range len(s) / 2 {
			d, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, ErrParse)
			}
			v[i] = uint8(d)
		}
	default:
		return RGB{}, fmt.Errorf("colors.FromHex: hex color %q must have 3, 4, 6 or 8 digits: %w", hex, ErrParse)
	}
	return RGB{float32(v[0]) / 255, float32(v[1]) / 255, float32(v[2]) / 255, float32(v[3]) / 255}, nil
}

// css4Names are the CSS Color Level 4 names missing from the
// SVG 1.1 set in [colornames.Map].
var css4Names = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff}, // rgb(102, 51, 153)
}

// FromString returns a color value from the given string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts the following types of strings, ignoring case:
//   - hex values, see [FromHex]
//   - standard CSS color names, e.g. "rebeccapurple", as [RGB]
//   - "transparent", as a fully transparent black [RGB]
//   - the name of any space in [Models] followed by its components
//     in parentheses, separated by spaces or commas, with alpha optionally
//     separated by a slash, e.g. "lch(50 30 120 / 0.5)" or "hsl(96, 0.48, 0.59)".
//     Components without min below zero, except hues, may be given as
//     percentages of their max, e.g. "hsl(96 48% 59%)".
//
// This is the inverse of [Format] and of the String method of all colors.
func FromString(str string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	switch {
	case s == "":
		return nil, fmt.Errorf("colors.FromString: empty color string: %w", ErrParse)
	case s[0] == '#':
		c, err := FromHex(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case s == "transparent":
		return RGB{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), nil
	}
	if c, ok := css4Names[s]; ok {
		return FromColor(c), nil
	}
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("colors.FromString: %q is not a hex value, color name or color function: %w", str, ErrParse)
	}
	sp, err := ModelByName(s[:open])
	if err != nil {
		return nil, fmt.Errorf("colors.FromString: %w: %w", ErrParse, err)
	}
	comps, err := parseComponents(sp, s[open+1:len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("colors.FromString: %q: %w", str, err)
	}
	return sp.CreateColor(comps)
}

// MustFromString returns a color value from the given string.
// It panics if the string is not a valid color; see [FromString]
// for a version that returns an error.
func MustFromString(str string) Color {
	return errors.Must1(FromString(str))
}

// LogFromString returns a color value from the given string.
// It logs an error and returns nil if the string is not a valid color;
// see [FromString] for a version that returns an error.
func LogFromString(str string) Color {
	return errors.Log1(FromString(str))
}

// FromColor returns the given standard library color as [RGB],
// undoing the alpha premultiplication of [color.Color.RGBA].
// A [Color] is converted with its ToRGB method.
func FromColor(c color.Color) RGB {
	switch c := c.(type) {
	case Color:
		return c.ToRGB()
	case color.NRGBA:
		return RGB{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
	}
	r, g, b, a := cie.SRGBUint32ToFloat(c.RGBA())
	return RGB{r, g, b, a}
}

// parseComponents parses the arguments of a color function in the given space.
func parseComponents(sp Space, args string) ([]float32, error) {
	body, alphaStr, hasAlpha := strings.Cut(args, "/")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	infos := sp.Components()
	if hasAlpha {
		if len(fields) != len(infos)-1 {
			return nil, fmt.Errorf("%s needs %d components before alpha, got %d: %w", sp.Name(), len(infos)-1, len(fields), ErrParse)
		}
		fields = append(fields, strings.TrimSpace(alphaStr))
	} else if len(fields) != len(infos) && len(fields) != len(infos)-1 {
		return nil, fmt.Errorf("%s needs %d or %d components, got %d: %w", sp.Name(), len(infos)-1, len(infos), len(fields), ErrParse)
	}
	comps := make([]float32, len(fields))
	for i, f := range fields {
		v, err := parseComponent(f, infos[i])
		if err != nil {
			return nil, err
		}
		comps[i] = v
	}
	return comps, nil
}

func parseComponent(f string, ci ComponentInfo) (float32, error) {
	pct := strings.HasSuffix(f, "%")
	if pct {
		if ci.IsPolar || ci.Min < 0 {
			return 0, fmt.Errorf("component %s cannot be a percentage: %w", ci.Name, ErrParse)
		}
		f = f[:len(f)-1]
	} else if ci.IsPolar {
		f = strings.TrimSuffix(f, "deg")
	}
	v, err := strconv.ParseFloat(f, 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s component %q: %w", ci.Name, f, ErrParse)
	}
	if pct {
		return float32(v) / 100 * ci.Max, nil
	}
	return float32(v), nil
}
