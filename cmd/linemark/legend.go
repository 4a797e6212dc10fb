// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/lines/model"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newLegendCmd(o *options) *cobra.Command {
	var toggle []int
	cmd := &cobra.Command{
		Use:   "legend <model>",
		Short: "Print the legend of a model in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Open(args[0])
			if err != nil {
				return err
			}
			ch, err := o.newChart(m)
			if err != nil {
				return err
			}
			for _, i := range toggle {
				ch.mark.ToggleCurve(i)
			}
			return ch.printLegend(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntSliceVarP(&toggle, "toggle", "t", nil, "indices of curves to toggle off")
	return cmd
}

// printLegend writes one line per legend row: a swatch in the curve
// color, the display name, and the dash style. Dimmed curves are faint.
func (ch *chart) printLegend(w io.Writer) error {
	out := termenv.NewOutput(w)
	for i := range ch.m.Curves {
		row := ch.legend.FindID(fmt.Sprintf("legend%d", i+1))
		if row == nil {
			continue
		}
		sw := row.SelectTag("line")
		txt := row.Select("legendtext")
		swatch := out.String("━━━").Foreground(out.Color(sw.Style("stroke")))
		name := out.String(txt.Text)
		if ch.mark.CurveFactor(i) < 1 {
			swatch = swatch.Faint()
			name = name.Faint()
		}
		if row.Hidden() {
			name = name.CrossOut()
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s\n", swatch, name, sw.Style("stroke-dasharray")); err != nil {
			return err
		}
	}
	return nil
}
