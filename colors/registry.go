// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var models = []Space{
	RGBModel, HSLModel, HSVModel, XYZModel,
	LABModel, LCHabModel, LUVModel, LCHModel,
	OklabModel, OklchModel, CAM16Model,
}

// aliases are alternative normalized names of spaces.
var aliases = map[string]string{
	"srgb":     "rgb",
	"rgba":     "rgb",
	"hsla":     "hsl",
	"hsb":      "hsv",
	"cielab":   "lab",
	"cieluv":   "luv",
	"lchuv":    "lch",
	"cam16jch": "cam16",
}

// Models returns the models of all supported color spaces.
func Models() []Space {
	return slices.Clone(models)
}

// ModelByName returns the model of the space with the given name.
// Case, dashes, underscores and spaces are ignored, so "LCh-ab" is
// [LCHabModel]. A few common aliases are also accepted, such as
// "srgb" and "hsb". It returns an error wrapping [ErrUnknownSpace]
// if there is no such space.
func ModelByName(name string) (Space, error) {
	n := normalizeName(name)
	if a, ok := aliases[n]; ok {
		n = a
	}
	for _, m := range models {
		if m.Name() == n {
			return m, nil
		}
	}
	return nil, fmt.Errorf("colors.ModelByName: %q: %w", name, ErrUnknownSpace)
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
