// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color values in a set of color spaces,
// conversions between them, and perceptual interpolation and mixing
// that works uniformly across all of them.
//
// Every space has an immutable value type implementing [Color]
// (for example [RGB], [LAB], [LCH]) and a [Model] singleton describing
// its components (for example [LCHModel]). Components are float32,
// ordered as in the space name, with alpha always last. Polar
// components are hues in degrees in [0, 360).
//
// Conversions only use direct formulas along the edges of this graph;
// every other pair is a composition of edges:
//
//	 HSL ─┐                       ┌─ LAB ── LCHab
//	 HSV ─┼── RGB ════ XYZ ───────┼─ LUV ── LCH
//	Oklab ┘   (linear sRGB)       └─ CAM16
//	  │
//	Oklch
//
// HSL, HSV, Oklab and Oklch reach the CIE side through [RGB], and
// LAB, LCHab, LUV, LCH and CAM16 reach the device side through [XYZ].
// For example, LCH to RGB is computed as LCH to LUV to XYZ to RGB.
package colors
