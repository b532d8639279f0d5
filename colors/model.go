// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"slices"
)

// Space is the non-generic view of a [Model], for code that handles
// colors in any space, such as the registry returned by [Models].
type Space interface {

	// Name returns the lowercase name of the space, e.g. "lch".
	Name() string

	// Components returns the info for each component of the space,
	// in order, with alpha last. It must not be modified.
	Components() []ComponentInfo

	// ComponentCount returns the number of components, including alpha.
	ComponentCount() int

	// ConvertColor converts the given color to this space.
	ConvertColor(c Color) Color

	// CreateColor returns a color in this space from the given components,
	// which may omit alpha.
	CreateColor(components []float32) (Color, error)

	// MixColors mixes the given colors in this space; see [Model.Mix].
	MixColors(c1 Color, amount1 float32, c2 Color, amount2 float32) (Color, error)
}

// Model describes a color space with values of type T:
// the name and components of the space, and how to create
// and convert colors in it. There is one Model per space,
// e.g. [LCHModel]; models are immutable.
type Model[T Color] struct {
	name       string
	components []ComponentInfo

	// convert converts any color to T, using the matching To method.
	convert func(c Color) T

	// create builds a T from a full component slice, including alpha.
	create func(c []float32) T
}

// Name returns the lowercase name of the space, e.g. "lch".
func (m *Model[T]) Name() string {
	return m.name
}

// Components returns the info for each component of the space,
// in order, with alpha last. It must not be modified.
func (m *Model[T]) Components() []ComponentInfo {
	return m.components
}

// ComponentCount returns the number of components, including alpha.
func (m *Model[T]) ComponentCount() int {
	return len(m.components)
}

// Convert converts the given color to this space.
// A color already in this space is returned unchanged.
func (m *Model[T]) Convert(c Color) T {
	return m.convert(c)
}

// Create returns a color in this space from the given components.
// The slice must contain either all of the components, or all but
// alpha, in which case alpha is 1. It returns an error wrapping
// [ErrSizeMismatch] for any other length.
func (m *Model[T]) Create(components []float32) (T, error) {
	n := len(m.components)
	switch len(components) {
	case n:
		return m.create(components), nil
	case n - 1:
		return m.create(append(slices.Clip(components), 1)), nil
	}
	var zero T
	return zero, fmt.Errorf("colors.Create: %s needs %d or %d components, got %d: %w", m.name, n-1, n, len(components), ErrSizeMismatch)
}

// ConvertColor converts the given color to this space.
func (m *Model[T]) ConvertColor(c Color) Color {
	return m.convert(c)
}

// CreateColor returns a color in this space from the given components.
// See [Model.Create].
func (m *Model[T]) CreateColor(components []float32) (Color, error) {
	c, err := m.Create(components)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// MixColors mixes the given colors in this space. See [Model.Mix].
func (m *Model[T]) MixColors(c1 Color, amount1 float32, c2 Color, amount2 float32) (Color, error) {
	c, err := m.Mix(c1, amount1, c2, amount2)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// String returns the name of the space.
func (m *Model[T]) String() string {
	return m.name
}

// withAlpha returns c with its alpha component replaced.
func (m *Model[T]) withAlpha(c T, alpha float32) T {
	comps := c.Components()
	comps[len(comps)-1] = alpha
	return m.create(comps)
}
