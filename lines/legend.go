// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/lines/base/plan"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scene"
)

// LegendLayout is the legend placement computed by the chart
// containing the mark.
type LegendLayout struct {
	// YDisp is the vertical offset of the first row.
	YDisp float64

	// InterY is the height of each row.
	InterY float64
}

// legendRow is the legend entry of one curve.
type legendRow struct {
	name  string
	index int

	g, swatch, text *scene.Node
}

func (r *legendRow) PlanName() string { return r.name }

// legend is the legend state of a mark.
type legend struct {
	container *scene.Node
	layout    LegendLayout
	rows      []*legendRow
}

// RenderLegend renders one legend row per curve into container: a
// swatch line styled like the curve and its display name. Rows are
// matched to curves by name, and rows of removed curves are detached.
// It returns the number of rows and the length of the longest
// display name, for sizing the legend box.
func (mk *Mark) RenderLegend(container *scene.Node, layout LegendLayout) (count, maxLen int) {
	m := mk.Model
	cfg := mk.Config
	if mk.legend.container != nil && mk.legend.container != container {
		for _, r := range mk.legend.rows {
			r.g.Remove()
		}
		mk.legend.rows = nil
	}
	mk.legend.container = container
	mk.legend.layout = layout

	class := "legend legend" + mk.ID
	key := func(i int) string { return model.CurveKey(m.Curves, i) }
	mk.legend.rows, _ = plan.Update(mk.legend.rows, len(m.Curves), key, func(name string, i int) *legendRow {
		g := scene.New("g", class)
		g.Key = name
		return &legendRow{name: name, g: g, swatch: g.Append("line", ""), text: g.Append("text", "legendtext")}
	}, func(r *legendRow) {
		r.g.Remove()
	})

	rectDim := layout.InterY * cfg.SwatchFactor
	dash, dashOK := mk.dashArray()
	idx := keyIndex(len(m.Curves), key)
	for _, r := range mk.legend.rows {
		container.AppendChild(r.g)
		r.index = idx[r.name]
		st := m.CurveStyle(r.index)
		clr := mk.elementColor(&m.Curves[r.index], r.index)

		r.g.SetAttr("id", fmt.Sprintf("legend%d", r.index+1))
		r.g.SetAttr("transform", fmt.Sprintf("translate(0, %s)", num(float64(r.index)*layout.InterY+layout.YDisp)))
		r.g.SetDisplay(m.LabelsVisibility.ShowLegend())
		if f, ok := mk.toggles[r.name]; ok {
			r.g.SetStyle("opacity", num(f+cfg.LegendBoost))
		}

		r.swatch.SetAttr("x1", "0").SetAttr("x2", num(rectDim))
		r.swatch.SetAttr("y1", num(rectDim/2)).SetAttr("y2", num(rectDim/2))
		r.swatch.SetStyle("stroke", clr)
		r.swatch.SetStyle("fill", st.Fill)
		r.swatch.SetStyle("fill-opacity", num(st.Opacity))
		r.swatch.SetStyle("stroke-width", num(m.StrokeWidth))
		if dashOK {
			r.swatch.SetStyle("stroke-dasharray", dash)
		}

		r.text.SetAttr("x", num(rectDim*cfg.TextFactor))
		r.text.SetAttr("y", num(rectDim/2))
		r.text.SetAttr("dy", cfg.LabelDy)
		r.text.SetStyle("fill", clr)
		r.text.Text = m.DisplayName(r.index)
		maxLen = max(maxLen, utf8.RuneCountInString(r.text.Text))
	}
	slog.Debug("lines: legend rendered", "mark", mk.ID, "rows", len(mk.legend.rows))
	return len(mk.legend.rows), maxLen
}
