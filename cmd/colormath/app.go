// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/danielemaddaluno/colormath/base/errors"
	"github.com/danielemaddaluno/colormath/cli"
	"github.com/danielemaddaluno/colormath/colors"
	"github.com/danielemaddaluno/colormath/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the state of one invocation of the command.
type app struct {
	cfg cli.Config

	// the config file given with --config
	configFile string

	// the space selected by cfg.Space, set in setup
	space colors.Space

	// set for the command lines run by batch
	inBatch bool
}

func newApp() *app {
	a := &app{}
	cli.SetFromDefaults(&a.cfg)
	return a
}

// rootCmd returns the root command, with its flags bound to the config.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "colormath",
		Short:             "Convert and mix colors between color spaces",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file to load (.toml, .yaml or .yml)")
	pf.StringVarP(&a.cfg.Space, "space", "s", a.cfg.Space, "color space to convert to and mix in")
	pf.IntVarP(&a.cfg.Precision, "precision", "p", a.cfg.Precision, "decimal places of printed components (-1 for exact)")
	pf.BoolVar(&a.cfg.Swatch, "swatch", a.cfg.Swatch, "print a color swatch when the terminal supports it")
	pf.BoolVar(&a.cfg.Hex, "hex", a.cfg.Hex, "also print the sRGB hex value")
	pf.BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "show debug messages")
	pf.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "show informational messages")
	pf.BoolVarP(&a.cfg.Quiet, "quiet", "q", a.cfg.Quiet, "only show errors")

	root.AddCommand(a.convertCmd(), a.mixCmd(), a.infoCmd(), a.batchCmd(), a.configCmd())
	return root
}

// setup loads the config file, keeping any values set by flags,
// and configures logging and the selected space.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configFile != "" {
		changed := map[string]string{}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
		if err := cli.Open(&a.cfg, a.configFile); err != nil {
			return err
		}
		for name, v := range changed {
			errors.Log(cmd.Flags().Set(name, v))
		}
	}
	logx.UserLevel = logx.LevelFromFlags(a.cfg.Debug, a.cfg.Verbose, a.cfg.Quiet)
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))

	sp, err := colors.ModelByName(a.cfg.Space)
	if err != nil {
		return err
	}
	a.space = sp
	slog.Debug("config", "space", sp.Name(), "precision", a.cfg.Precision, "file", a.configFile)
	return nil
}

// printColor prints the given color on its own line,
// formatted according to the config.
func (a *app) printColor(w io.Writer, c colors.Color) {
	var sb strings.Builder
	if a.cfg.Swatch {
		if s := swatch(termenv.NewOutput(w), c); s != "" {
			sb.WriteString(s)
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(colors.Format(c, a.cfg.Precision))
	if a.cfg.Hex {
		sb.WriteByte(' ')
		sb.WriteString(c.ToRGB().Hex())
	}
	fmt.Fprintln(w, sb.String())
}

// swatch returns a small block in the given color, or ""
// if the output does not support colors.
func swatch(out *termenv.Output, c colors.Color) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	hex := c.ToRGB().Clamp().WithAlpha(1).Hex()
	return out.String("    ").Background(out.Color(hex)).String()
}

// parseColors parses all of the given color strings.
func parseColors(args []string) ([]colors.Color, error) {
	cs := make([]colors.Color, len(args))
	for i, arg := range args {
		c, err := colors.FromString(arg)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
