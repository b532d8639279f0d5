// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/danielemaddaluno/colormath/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples are sRGB colors inside of the gamut covering
// low, mid and high lightness and all hue quadrants.
var samples = []RGB{
	NewRGB(0.8, 0.447, 0.263),
	NewRGB(0.55, 0.79, 0.39),
	NewRGB(0.16, 0.035, 0.22),
	NewRGB(0.2, 0.4, 0.9),
	NewRGB(0.95, 0.9, 0.1),
	NewRGB(0.9, 0.2, 0.5),
	NewRGB(0.1, 0.6, 0.6).WithAlpha(0.5),
}

// assertColor checks that got has the components of want,
// within a relative tolerance, comparing hues on the circle.
func assertColor(t *testing.T, want, got Color, msgAndArgs ...any) {
	t.Helper()
	require.Same(t, want.Space(), got.Space(), msgAndArgs...)
	w, g := want.Components(), got.Components()
	for i, ci := range want.Space().Components() {
		if ci.IsPolar {
			g[i] = w[i] + math32.HueDelta(w[i], g[i])
		}
	}
	if diff := cmp.Diff(w, g, cmpopts.EquateApprox(1e-3, 1e-3)); diff != "" {
		assert.Fail(t, "components differ (-want +got):\n"+diff, msgAndArgs...)
	}
}

func TestComponentContract(t *testing.T) {
	for _, m := range Models() {
		infos := m.Components()
		assert.Equal(t, len(infos), m.ComponentCount())
		assert.Equal(t, "alpha", infos[len(infos)-1].Name)
		for _, s := range samples {
			c := m.ConvertColor(s)
			assert.Same(t, m, c.Space())
			comps := c.Components()
			assert.Len(t, comps, c.ComponentCount(), m.Name())
			assert.Equal(t, m.ComponentCount(), c.ComponentCount(), m.Name())
			assert.Equal(t, s.Alpha, comps[len(comps)-1], m.Name())
			for i, ci := range infos {
				polar, err := c.ComponentIsPolar(i)
				assert.NoError(t, err)
				assert.Equal(t, ci.IsPolar, polar, "%s %s", m.Name(), ci.Name)

				v, err := Component(c, i)
				assert.NoError(t, err)
				assert.Equal(t, comps[i], v)
			}
			for _, i := range []int{-1, c.ComponentCount()} {
				_, err := c.ComponentIsPolar(i)
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
				_, err = Component(c, i)
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			}
		}
	}
}

func TestComponentIsPolarError(t *testing.T) {
	_, err := NewLCH(50, 30, 120).ComponentIsPolar(4)
	assert.EqualError(t, err, "colors: lch component index 4 not in [0, 4): component index out of range")
}

func TestComponentsSnapshot(t *testing.T) {
	c := NewLAB(50, 10, 20)
	comps := c.Components()
	comps[0] = 0
	assert.Equal(t, []float32{50, 10, 20, 1}, c.Components())
}

func TestWithAlpha(t *testing.T) {
	c := NewOklch(0.7, 0.1, 200)
	h := c.WithAlpha(0.25)
	assert.Equal(t, float32(1), c.Alpha)
	assert.Equal(t, Oklch{0.7, 0.1, 200, 0.25}, h)
}
