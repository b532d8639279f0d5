// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
)

// Format returns the color in the functional notation of its space,
// e.g. "lch(50 30 120)", with alpha separated by a slash if it is not 1,
// e.g. "lch(50 30 120 / 0.5)". Components are rounded to the given
// number of decimal places, with trailing zeros removed; a negative
// precision uses the fewest digits that represent each value exactly.
// The result can be parsed with [FromString].
func Format(c Color, prec int) string {
	return format(c.Space(), c.Components(), prec)
}

func format(s Space, comps []float32, prec int) string {
	var b strings.Builder
	b.WriteString(s.Name())
	b.WriteByte('(')
	n := len(comps) - 1
	for i, v := range comps[:n] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(v, prec))
	}
	if comps[n] != 1 {
		b.WriteString(" / ")
		b.WriteString(formatFloat(comps[n], prec))
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(v float32, prec int) string {
	s := strconv.FormatFloat(float64(v), 'f', prec, 32)
	if prec > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
