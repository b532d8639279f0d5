// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/danielemaddaluno/colormath/base/errors"
	"github.com/danielemaddaluno/colormath/cli"
	"github.com/danielemaddaluno/colormath/colors"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Convert colors to the selected space",
		Long: `Convert colors to the selected space.

Colors are given as hex values (#8cc964), CSS color names (rebeccapurple),
or in the functional notation of any space (hsl(96 48% 59%), lch(50 30 120 / 0.5)).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			for _, c := range cs {
				slog.Debug("converting", "color", c, "space", a.space.Name())
				a.printColor(cmd.OutOrStdout(), a.space.ConvertColor(c))
			}
			return nil
		},
	}
}

func (a *app) mixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mix <color1> <color2>",
		Short: "Mix two colors in the selected space",
		Long: `Mix two colors in the selected space.

The amounts are weights that do not need to sum to 1. If they sum to
less than 1, the result is made transparent by the same proportion.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			slog.Debug("mixing", "color1", cs[0], "amount1", a.cfg.Mix.Amount1, "color2", cs[1], "amount2", a.cfg.Mix.Amount2, "space", a.space.Name())
			c, err := a.space.MixColors(cs[0], a.cfg.Mix.Amount1, cs[1], a.cfg.Mix.Amount2)
			if err != nil {
				return err
			}
			a.printColor(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().Float32Var(&a.cfg.Mix.Amount1, "amount1", a.cfg.Mix.Amount1, "amount of the first color")
	cmd.Flags().Float32Var(&a.cfg.Mix.Amount2, "amount2", a.cfg.Mix.Amount2, "amount of the second color")
	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [space]...",
		Short: "Show the components of color spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			spaces := colors.Models()
			if len(args) > 0 {
				spaces = spaces[:0]
				for _, arg := range args {
					sp, err := colors.ModelByName(arg)
					if err != nil {
						return err
					}
					spaces = append(spaces, sp)
				}
			}
			w := cmd.OutOrStdout()
			title := cases.Title(language.English)
			for _, sp := range spaces {
				fmt.Fprintln(w, sp.Name())
				for _, ci := range sp.Components() {
					line := fmt.Sprintf("  %-6s %s .. %s", title.String(ci.Name), formatLimit(ci.Min), formatLimit(ci.Max))
					if ci.IsPolar {
						line += " (polar)"
					}
					fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}

func formatLimit(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Run commands from a file, one per line",
		Long: `Run commands from a file, or standard input if no file is given, one per line.

Lines are split into arguments like a shell would. Empty lines and
lines starting with # are skipped. Flags given to batch apply to every line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.inBatch {
				return errors.New("batch cannot be nested")
			}
			r := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return a.runBatch(cmd, r)
		},
	}
}

// runBatch runs each command line read from r, logging the errors
// of failed lines and continuing with the next one.
func (a *app) runBatch(cmd *cobra.Command, r io.Reader) error {
	sc := bufio.NewScanner(r)
	n, failed := 0, 0
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n++
		args, err := shellwords.Parse(line)
		if err == nil {
			err = a.runLine(cmd, args)
		}
		if err != nil {
			failed++
			slog.Error("batch", "line", ln, "err", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d commands failed", failed, n)
	}
	return nil
}

// runLine runs the given arguments as a new command line,
// starting from a copy of the current config.
func (a *app) runLine(cmd *cobra.Command, args []string) error {
	line := &app{cfg: a.cfg, inBatch: true}
	root := line.rootCmd()
	root.SetArgs(args)
	root.SetIn(cmd.InOrStdin())
	root.SetOut(cmd.OutOrStdout())
	root.SetErr(cmd.ErrOrStderr())
	return root.Execute()
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Print the current config as TOML, or save it to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return cli.Save(&a.cfg, args[0])
			}
			b, err := cli.Marshal(&a.cfg, ".toml")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
