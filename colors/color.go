// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"

	"github.com/danielemaddaluno/colormath/base/errors"
)

var (
	// ErrIndexOutOfRange is returned for a component index
	// outside of [0, ComponentCount).
	ErrIndexOutOfRange = errors.New("component index out of range")

	// ErrSizeMismatch is returned when a component slice has
	// the wrong number of elements for a space.
	ErrSizeMismatch = errors.New("component count mismatch")

	// ErrInvalidArgument is returned for invalid mix amounts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownSpace is returned for a color space name that is not registered.
	ErrUnknownSpace = errors.New("unknown color space")

	// ErrParse is returned for a string that is not a valid color.
	ErrParse = errors.New("invalid color string")
)

// Color is a color value in one specific color space.
// Color values are immutable: conversions and interpolation
// always return new values.
type Color interface {
	color.Color
	fmt.Stringer

	// Space returns the model of the space this color is in.
	Space() Space

	// ToRGB converts the color to gamma-encoded sRGB.
	ToRGB() RGB

	// ToHSL converts the color to HSL.
	ToHSL() HSL

	// ToHSV converts the color to HSV.
	ToHSV() HSV

	// ToXYZ converts the color to CIE XYZ (D65).
	ToXYZ() XYZ

	// ToLAB converts the color to CIE L*a*b*.
	ToLAB() LAB

	// ToLCHab converts the color to the cylindrical form of CIE L*a*b*.
	ToLCHab() LCHab

	// ToLUV converts the color to CIE L*u*v*.
	ToLUV() LUV

	// ToLCH converts the color to CIE LCh(uv),
	// the cylindrical form of CIE L*u*v*.
	ToLCH() LCH

	// ToOklab converts the color to Oklab.
	ToOklab() Oklab

	// ToOklch converts the color to the cylindrical form of Oklab.
	ToOklch() Oklch

	// ToCAM16 converts the color to CAM16 JCh
	// under standard viewing conditions.
	ToCAM16() CAM16

	// ComponentCount returns the number of components
	// of the color, including alpha.
	ComponentCount() int

	// Components returns a new slice with the components of the color,
	// in the order given by [Space.Components]. Alpha is always last.
	Components() []float32

	// ComponentIsPolar returns whether the component at the given index
	// is an angle in degrees.
	ComponentIsPolar(i int) (bool, error)

	// Interpolate returns the color between this color (t = 0) and
	// other (t = 1) in the space of this color. Polar components
	// travel along the shorter arc of the hue circle.
	Interpolate(other Color, t float32) Color
}

// ComponentInfo describes one component of a color space.
type ComponentInfo struct {

	// Name is the short lowercase name of the component, e.g. "l" or "h".
	Name string

	// IsPolar is whether the component is an angle in degrees.
	IsPolar bool

	// Min is the lowest value the component takes for colors in the sRGB gamut.
	Min float32

	// Max is the highest value the component takes for colors in the sRGB gamut.
	Max float32
}

// Component returns the component of the given color at the given index.
func Component(c Color, i int) (float32, error) {
	if err := checkIndex(c.Space(), i); err != nil {
		return 0, err
	}
	return c.Components()[i], nil
}

func checkIndex(s Space, i int) error {
	if n := s.ComponentCount(); i < 0 || i >= n {
		return fmt.Errorf("colors: %s component index %d not in [0, %d): %w", s.Name(), i, n, ErrIndexOutOfRange)
	}
	return nil
}

func componentIsPolar(s Space, i int) (bool, error) {
	if err := checkIndex(s, i); err != nil {
		return false, err
	}
	return s.Components()[i].IsPolar, nil
}

// rect returns the info for a rectangular component.
func rect(name string, lo, hi float32) ComponentInfo {
	return ComponentInfo{Name: name, Min: lo, Max: hi}
}

// hue returns the info for a polar hue component.
func hue(name string) ComponentInfo {
	return ComponentInfo{Name: name, IsPolar: true, Min: 0, Max: 360}
}

// alpha is the info for the alpha component shared by all spaces.
var alpha = rect("alpha", 0, 1)
