// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/base/logx"
	"cogentcore.org/lines/colors"
	"cogentcore.org/lines/config"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	vv, v, q bool

	// configFile is the optional TOML file of presentation constants.
	configFile string

	width, height float64

	// date treats x values as milliseconds since the Unix epoch.
	date bool

	// scheme is the color map used for curve color values.
	scheme string

	cfg *config.Config
}

// setup configures logging and loads the configuration from the flags.
func (o *options) setup() error {
	logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
	logx.SetDefaultLogger()
	o.cfg = config.New()
	if o.configFile != "" {
		cfg, err := config.Open(o.configFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	colors.SchemeIsDark = o.cfg.DarkPalette
	slog.Debug("linemark: config", "file", o.configFile, "dim", o.cfg.DimOpacity)
	return nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "linemark <command>",
		Short: "Render and query multi-curve line marks",
		Long: heredoc.Doc(`
			linemark renders line mark models, read from .toml or .yaml files,
			to SVG, and runs selections on them as an interactive chart would.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&o.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&o.v, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&o.q, "quiet", "q", false, "only log errors")
	pf.StringVarP(&o.configFile, "config", "c", "", "TOML file of presentation constants")
	errors.Must(cmd.MarkPersistentFlagFilename("config", "toml"))
	pf.Float64Var(&o.width, "width", 640, "width of the plotting area in pixels")
	pf.Float64Var(&o.height, "height", 400, "height of the plotting area in pixels")
	pf.BoolVar(&o.date, "date", false, "x values are milliseconds since the Unix epoch")
	pf.StringVar(&o.scheme, "scheme", "", "color map for curve color values")

	cmd.AddCommand(newRenderCmd(o), newWatchCmd(o), newSelectCmd(o), newLegendCmd(o))
	return cmd
}
