// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielemaddaluno/colormath/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the command with the given arguments and standard input,
// returning its standard output and error output.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newApp().rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "", "convert", "#ff0000", "--space", "lab", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "lab(53.24 80.09 67.2)\n", out)

	out, _, err = run(t, "", "convert", "hsl(96 48% 59%)", "red", "-s", "rgb", "--hex", "-p", "3")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0.551 0.787 0.393) #8cc964\nrgb(1 0 0) #ff0000\n", out)

	_, _, err = run(t, "", "convert", "nope")
	assert.ErrorIs(t, err, colors.ErrParse)

	_, _, err = run(t, "", "convert", "red", "-s", "cmyk")
	assert.ErrorIs(t, err, colors.ErrUnknownSpace)

	_, _, err = run(t, "", "convert")
	assert.Error(t, err)
}

func TestMix(t *testing.T) {
	out, _, err := run(t, "", "mix", "#ff0000", "#0000ff", "-s", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0.5 0 0.5)\n", out)

	out, _, err = run(t, "", "mix", "red", "blue", "-s", "rgb", "--amount1", "0.3", "--amount2", "0.3")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0.5 0 0.5 / 0.6)\n", out)

	out, _, err = run(t, "", "mix", "hsl(350 1 0.5)", "hsl(10 1 0.5)", "-s", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "hsl(0 1 0.5)\n", out)

	_, _, err = run(t, "", "mix", "red", "blue", "--amount1=0.5", "--amount2=-0.5")
	assert.ErrorIs(t, err, colors.ErrInvalidArgument)

	_, _, err = run(t, "", "mix", "red")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info", "LCh")
	require.NoError(t, err)
	assert.Equal(t, "lch\n  L      0 .. 100\n  C      0 .. 179.04\n  H      0 .. 360 (polar)\n  Alpha  0 .. 1\n", out)

	out, _, err = run(t, "", "info")
	require.NoError(t, err)
	for _, m := range colors.Models() {
		assert.Contains(t, out, m.Name()+"\n")
	}

	_, _, err = run(t, "", "info", "cmyk")
	assert.ErrorIs(t, err, colors.ErrUnknownSpace)
}

func TestBatch(t *testing.T) {
	script := `# two commands
convert '#ff0000' -s lab -p 1

mix red blue -s rgb
`
	out, _, err := run(t, script, "batch")
	require.NoError(t, err)
	assert.Equal(t, "lab(53.2 80.1 67.2)\nrgb(0.5 0 0.5)\n", out)

	file := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(file, []byte("convert nope\nconvert blue -s rgb\nbatch\n-s lch batch\n"), 0666))
	out, errOut, err := run(t, "", "batch", file, "--hex")
	assert.EqualError(t, err, "batch: 3 of 4 commands failed")
	assert.Equal(t, "rgb(0 0 1) #0000ff\n", out)
	assert.Contains(t, errOut, "line=1")
	assert.Contains(t, errOut, "batch cannot be nested")
	assert.Contains(t, errOut, "line=4")

	_, _, err = run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "colormath.toml")
	require.NoError(t, os.WriteFile(file, []byte("space = 'oklab'\nprecision = 3\n"), 0666))

	out, _, err := run(t, "", "convert", "#ff0000", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, "oklab(0.628 0.225 0.126)\n", out)

	// flags override the config file
	out, _, err = run(t, "", "convert", "#ff0000", "--config", file, "-s", "lab", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "lab(53.24 80.09 67.2)\n", out)

	yamlFile := filepath.Join(dir, "colormath.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("space: rgb\nmix:\n  amount1: 0.75\n  amount2: 0.25\n"), 0666))
	out, _, err = run(t, "", "mix", "red", "blue", "--config", yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "rgb(0.75 0 0.25)\n", out)

	_, _, err = run(t, "", "convert", "red", "--config", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, _, err := run(t, "", "config", "-s", "oklch")
	require.NoError(t, err)
	assert.Contains(t, out, "space = 'oklch'")
	assert.Contains(t, out, "precision = 4")
	assert.Contains(t, out, "[mix]")

	file := filepath.Join(t.TempDir(), "saved.yaml")
	_, _, err = run(t, "", "config", file, "-p", "6")
	require.NoError(t, err)
	out, _, err = run(t, "", "convert", "red", "--config", file, "-s", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "rgb(1 0 0)\n", out)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "precision: 6")
}

func TestDebugLog(t *testing.T) {
	_, errOut, err := run(t, "", "convert", "red", "--debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=DEBUG msg=converting")
	assert.Contains(t, errOut, "space=lch")

	_, errOut, err = run(t, "", "convert", "red", "-q")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
