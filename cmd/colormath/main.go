// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colormath converts and mixes colors between color spaces.
//
// Usage:
//
//	colormath convert '#8cc964' -s lch
//	colormath mix red blue -s oklch --amount2 0.25
//	colormath info lch
//	colormath batch commands.txt
//	colormath config colormath.toml
package main

import (
	"os"

	"github.com/danielemaddaluno/colormath/base/errors"
	"github.com/danielemaddaluno/colormath/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newApp().rootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
