// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"github.com/danielemaddaluno/colormath/base/errors"
	"github.com/danielemaddaluno/colormath/math32"
)

// Mix mixes amount1 of c1 with amount2 of c2 in this space.
// The amounts are weights that do not need to sum to 1: the
// colors are interpolated at amount2 / (amount1 + amount2).
// If the amounts sum to less than 1, the alpha of the result
// is multiplied by the sum. It returns an error wrapping
// [ErrInvalidArgument] if the amounts sum to exactly 0.
func (m *Model[T]) Mix(c1 Color, amount1 float32, c2 Color, amount2 float32) (T, error) {
	sum := amount1 + amount2
	if sum == 0 {
		var zero T
		return zero, fmt.Errorf("colors.Mix: mix amounts cannot sum to 0: %w", ErrInvalidArgument)
	}
	res := interpolate(m, m.convert(c1), c2, amount2/sum)
	if sum < 1 {
		comps := res.Components()
		res = m.withAlpha(res, comps[len(comps)-1]*sum)
	}
	return res, nil
}

// MixEven mixes equal amounts of c1 and c2 in this space.
func (m *Model[T]) MixEven(c1, c2 Color) T {
	return errors.Must1(m.Mix(c1, 0.5, c2, 0.5))
}

// MixFirst mixes amount1 of c1 with 1 - amount1 of c2 in this space.
// amount1 is clamped to [0, 1].
func (m *Model[T]) MixFirst(c1 Color, amount1 float32, c2 Color) T {
	amount1 = math32.Clamp(amount1, 0, 1)
	return errors.Must1(m.Mix(c1, amount1, c2, 1-amount1))
}

// MixSecond mixes 1 - amount2 of c1 with amount2 of c2 in this space.
// amount2 is clamped to [0, 1].
func (m *Model[T]) MixSecond(c1, c2 Color, amount2 float32) T {
	amount2 = math32.Clamp(amount2, 0, 1)
	return errors.Must1(m.Mix(c1, 1-amount2, c2, amount2))
}

// interpolate returns the per-component interpolation between
// c (t = 0) and other converted to the space of m (t = 1).
func interpolate[T Color](m *Model[T], c T, other Color, t float32) T {
	a := c.Components()
	b := m.convert(other).Components()
	for i, ci := range m.components {
		if ci.IsPolar {
			a[i] = math32.LerpHue(a[i], b[i], t)
		} else {
			a[i] = math32.Lerp(a[i], b[i], t)
		}
	}
	return m.create(a)
}
