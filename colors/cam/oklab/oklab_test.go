// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"github.com/danielemaddaluno/colormath/base/tolassert"
)

func TestOklab(t *testing.T) {
	tests := []struct {
		r, g, b float32
		l, a, bb float32
	}{
		{1, 0, 0, 0.62795536, 0.22486306, 0.12584630},
		{1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0.2, 0.4, 0.9, 0.55180260, -0.02014339, -0.20047486},
		{0.8, 0.447, 0.263, 0.64403067, 0.08823321, 0.09423584},
	}
	for _, test := range tests {
		l, a, b := SRGBToOklab(test.r, test.g, test.b)
		tolassert.EqualTol(t, test.l, l, 1e-4)
		tolassert.EqualTol(t, test.a, a, 1e-4)
		tolassert.EqualTol(t, test.bb, b, 1e-4)

		r, g, bb := OklabToSRGB(l, a, b)
		tolassert.EqualTol(t, test.r, r, 1e-4)
		tolassert.EqualTol(t, test.g, g, 1e-4)
		tolassert.EqualTol(t, test.b, bb, 1e-4)
	}
}

func TestOklabNegative(t *testing.T) {
	l, a, b := LinearSRGBToOklab(-0.1, 0.5, 0.2)
	rl, gl, bl := OklabToLinearSRGB(l, a, b)
	tolassert.EqualTol(t, -0.1, rl, 1e-4)
	tolassert.EqualTol(t, 0.5, gl, 1e-4)
	tolassert.EqualTol(t, 0.2, bl, 1e-4)
}
