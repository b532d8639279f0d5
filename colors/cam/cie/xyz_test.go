// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/danielemaddaluno/colormath/base/tolassert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.54708256), x)
	tolassert.Equal(t, float32(0.58595534), y)
	tolassert.Equal(t, float32(0.74655478), z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, rl, 1e-5)
	tolassert.EqualTol(t, 0.6, gl, 1e-5)
	tolassert.EqualTol(t, 0.7, bl, 1e-5)

	x, y, z = SRGBToXYZ(1, 1, 1)
	tolassert.EqualTol(t, WhiteD65[0], x, 1e-5)
	tolassert.EqualTol(t, WhiteD65[1], y, 1e-5)
	tolassert.EqualTol(t, WhiteD65[2], z, 1e-5)

	x, y, z = SRGBToXYZ100(1, 1, 1)
	tolassert.Equal(t, float32(95.045593), x)
	tolassert.Equal(t, float32(100), y)

	r, g, b := XYZ100ToSRGB(x, y, z)
	tolassert.Equal(t, float32(1), r)
	tolassert.Equal(t, float32(1), g)
	tolassert.Equal(t, float32(1), b)
}
