// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/lines/geom"
	"cogentcore.org/lines/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// selectResult is what the select commands print.
type selectResult struct {
	Indices  []int           `yaml:"indices,flow,omitempty"`
	Inside   *bool           `yaml:"inside,omitempty"`
	Selected model.Selection `yaml:"selected"`
	Bounds   []model.Bound   `yaml:"bounds,omitempty"`
}

func printResult(w io.Writer, res *selectResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

func parseFloats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}

// parseVertex parses an x,y pixel position.
func parseVertex(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid vertex %q: want x,y", s)
	}
	vs, err := parseFloats([]string{xs, ys})
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(vs[0], vs[1]), nil
}

// selectCmd returns a subcommand that opens the model, runs fun on
// a chart of it and prints the result.
func (o *options) selectCmd(use, short string, args cobra.PositionalArgs, fun func(ch *chart, args []string) (*selectResult, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Open(args[0])
			if err != nil {
				return err
			}
			ch, err := o.newChart(m)
			if err != nil {
				return err
			}
			res, err := fun(ch, args[1:])
			if err != nil {
				return err
			}
			res.Selected = m.Selected
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	// pixel positions left of or above the plot are negative
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newSelectCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <command>",
		Short: "Select points of a model as a chart interaction would",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	point := o.selectCmd("point <model> <px>", "Select the point at a pixel x position", cobra.ExactArgs(2),
		func(ch *chart, args []string) (*selectResult, error) {
			vs, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			return &selectResult{Indices: []int{ch.mark.InvertPoint(vs[0])}}, nil
		})
	rng := o.selectCmd("range <model> <px0> <px1>", "Select the points between two pixel x positions", cobra.ExactArgs(3),
		func(ch *chart, args []string) (*selectResult, error) {
			vs, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			i, j := ch.mark.InvertRange(vs[0], vs[1])
			return &selectResult{Indices: []int{i, j}}, nil
		})
	brush := o.selectCmd("brush <model> <x0> <x1>", "Set brush selector bounds from a data x extent", cobra.ExactArgs(3),
		func(ch *chart, args []string) (*selectResult, error) {
			vs, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			sl := &model.Selector{}
			ch.m.Selector = sl
			i, j := ch.mark.InvertMultiRange([2]float64{vs[0], vs[1]})
			b := sl.Bounds()
			return &selectResult{Indices: []int{i, j}, Bounds: b[:]}, nil
		})
	lasso := o.selectCmd("lasso <model> <id> <x,y>...", "Select the points inside a lasso polygon, or clear it when no vertices are given", cobra.MinimumNArgs(2),
		func(ch *chart, args []string) (*selectResult, error) {
			var vertices []geom.Point
			for _, a := range args[1:] {
				p, err := parseVertex(a)
				if err != nil {
					return nil, err
				}
				vertices = append(vertices, p)
			}
			inside := ch.mark.UpdateLassoSelection(args[0], vertices, geom.PointInPolygon)
			return &selectResult{Inside: &inside}, nil
		})
	cmd.AddCommand(point, rng, brush, lasso)
	return cmd
}
