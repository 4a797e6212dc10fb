// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/model"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// svgName returns the default output file for a model file.
func svgName(modelFile string) string {
	return strings.TrimSuffix(modelFile, filepath.Ext(modelFile)) + ".svg"
}

func newRenderCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <model>",
		Short: "Render a model to SVG",
		Example: heredoc.Doc(`
			# Render to prices.svg
			$ linemark render prices.yaml

			# Render a date axis to standard output
			$ linemark render --date -o - prices.toml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Open(args[0])
			if err != nil {
				return err
			}
			ch, err := o.newChart(m)
			if err != nil {
				return err
			}
			if out == "" {
				out = svgName(args[0])
			}
			slog.Info("linemark: rendering", "model", args[0], "curves", len(m.Curves), "out", out)
			return ch.save(out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG file, - for standard output")
	errors.Must(cmd.MarkFlagFilename("out", "svg"))
	return cmd
}
