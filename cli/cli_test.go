// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFromDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "lch", cfg.Space)
	assert.Equal(t, 4, cfg.Precision)
	assert.True(t, cfg.Swatch)
	assert.False(t, cfg.Hex)
	assert.Equal(t, float32(0.5), cfg.Mix.Amount1)
	assert.Equal(t, float32(0.5), cfg.Mix.Amount2)
	assert.Equal(t, cfg, NewConfig())
}

func TestSetFromDefaultsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaults(Config{}))
	assert.Error(t, SetFromDefaults((*Config)(nil)))

	type bad struct {
		N     int       `default:"many"`
		S     []string  `default:"a"`
		Inner MixConfig // still set
	}
	b := &bad{}
	err := SetFromDefaults(b)
	assert.ErrorContains(t, err, "field bad.N")
	assert.ErrorContains(t, err, "field bad.S: unsupported kind slice")
	assert.Equal(t, float32(0.5), b.Inner.Amount1)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tomlFile := filepath.Join(dir, "colormath.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte("space = \"oklch\"\nprecision = 2\n\n[mix]\namount1 = 0.25\n"), 0666))
	cfg := NewConfig()
	require.NoError(t, Open(cfg, tomlFile))
	assert.Equal(t, "oklch", cfg.Space)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, float32(0.25), cfg.Mix.Amount1)
	assert.Equal(t, float32(0.5), cfg.Mix.Amount2)
	assert.True(t, cfg.Swatch)

	yamlFile := filepath.Join(dir, "colormath.yml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("space: lab\nswatch: false\nmix:\n  amount2: 0.75\n"), 0666))
	cfg = NewConfig()
	require.NoError(t, Open(cfg, yamlFile))
	assert.Equal(t, "lab", cfg.Space)
	assert.False(t, cfg.Swatch)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, float32(0.75), cfg.Mix.Amount2)

	assert.Error(t, Open(cfg, filepath.Join(dir, "missing.toml")))
	jsonFile := filepath.Join(dir, "colormath.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte("{}"), 0666))
	assert.ErrorContains(t, Open(cfg, jsonFile), "unsupported config file extension")

	badFile := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badFile, []byte("space = "), 0666))
	assert.Error(t, Open(cfg, badFile))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Space = "cam16"
	cfg.Mix.Amount1 = 0.125
	for _, name := range []string{"out.toml", "out.yaml"} {
		file := filepath.Join(dir, name)
		require.NoError(t, Save(cfg, file))
		got := &Config{}
		require.NoError(t, Open(got, file))
		assert.Equal(t, cfg, got, name)
	}
	_, err := Marshal(cfg, ".ini")
	assert.Error(t, err)
}
