// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to color level labels in log output.
// Color is only ever emitted when the output supports it.
var UseColor = true

// NewHandler returns a new text [slog.Handler] that writes to w,
// filters messages by [UserLevel], omits timestamps, and colors level
// labels with terminal colors when [UseColor] is on and w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if lv, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelColor(out, lv, lv.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelColor applies the color associated with the given level to the
// given string using the given terminal output, if [UseColor] is on.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	var clr termenv.Color
	switch {
	case level >= slog.LevelError:
		clr = out.Color("1") // red
	case level >= slog.LevelWarn:
		clr = out.Color("3") // yellow
	case level >= slog.LevelInfo:
		clr = out.Color("6") // cyan
	default:
		clr = out.Color("5") // magenta
	}
	return out.String(str).Foreground(clr).String()
}
