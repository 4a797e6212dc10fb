// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger setup used by
// the line mark tools, with a user-selected verbosity level and
// colored level names on terminals.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to one writing to
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel))
}

// NewLogger returns a text logger writing to w at the given level.
// Level names are colored when w is a color capable terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lv))
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelString returns the name of the given level, colored
// according to the color profile of the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
