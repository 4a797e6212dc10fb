// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "fmt"

// RenderLabels recreates the end of line label of each curve, at its
// last defined point. Labels are displayed only in label mode, and
// only for curves in the visible subset.
func (mk *Mark) RenderLabels() {
	m := mk.Model
	for _, c := range mk.curves {
		if c.label != nil {
			c.label.Remove()
		}
		lb := c.group.Append("text", "curve_label")
		lb.Key = c.name
		if p, ok := c.data.LastDefined(); ok {
			lb.SetAttr("transform", fmt.Sprintf("translate(%s,%s)", num(mk.line.X(p, 0)), num(mk.line.Y(p, 0))))
		}
		lb.SetAttr("x", num(mk.Config.LabelX))
		lb.SetAttr("dy", mk.Config.LabelDy)
		lb.SetDisplay(m.LabelsVisibility.ShowLabels() && m.CurveShown(c.index))
		lb.Text = m.DisplayName(c.index)
		c.label = lb
	}
}

// UpdateLegendLabels applies the labels visibility mode: legend rows
// are shown in legend mode, end of line labels in label mode, and
// neither in none mode.
func (mk *Mark) UpdateLegendLabels() {
	m := mk.Model
	lv := m.LabelsVisibility
	for _, r := range mk.legend.rows {
		r.g.SetDisplay(lv.ShowLegend())
	}
	for _, c := range mk.curves {
		if c.label != nil {
			c.label.SetDisplay(lv.ShowLabels() && m.CurveShown(c.index))
		}
	}
}

// updateLabelText refreshes the display names after a change of labels.
func (mk *Mark) updateLabelText() {
	mk.RenderLabels()
	for _, r := range mk.legend.rows {
		r.text.Text = mk.Model.DisplayName(r.index)
	}
}
