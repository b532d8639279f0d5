// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the reference numeric primitives of the CIE color
// spaces: the sRGB transfer function, sRGB <-> XYZ under D65, and the
// L*a*b* and L*u*v* transforms. XYZ values are normalized so that Y = 1
// for white unless a function name says 100.
package cie
