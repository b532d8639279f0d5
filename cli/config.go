// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the configuration of the colormath command:
// a config struct with defaults from struct tags, which can be
// loaded from and saved to TOML and YAML files.
package cli

// Config is the configuration for the colormath command.
// Values are set from the `default:` tags by [SetFromDefaults],
// then from a config file with [Open], then from command line flags.
type Config struct {

	// the color space to convert colors to and to mix them in
	Space string `default:"lch" toml:"space" yaml:"space"`

	// the number of decimal places of printed components;
	// a negative value prints the fewest digits that represent the exact value
	Precision int `default:"4" toml:"precision" yaml:"precision"`

	// whether to print a terminal color swatch next to each color,
	// when the terminal supports colors
	Swatch bool `default:"true" toml:"swatch" yaml:"swatch"`

	// whether to also print the sRGB hex value of each color
	Hex bool `default:"false" toml:"hex" yaml:"hex"`

	// default settings for the mix command
	Mix MixConfig `toml:"mix" yaml:"mix"`

	// whether to show debug messages
	Debug bool `toml:"debug" yaml:"debug"`

	// whether to show informational messages
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// whether to only show errors
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// MixConfig contains the default amounts of the mix command.
type MixConfig struct {

	// the amount of the first color
	Amount1 float32 `default:"0.5" toml:"amount1" yaml:"amount1"`

	// the amount of the second color
	Amount2 float32 `default:"0.5" toml:"amount2" yaml:"amount2"`
}

// NewConfig returns a new config with all defaults set.
func NewConfig() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}
