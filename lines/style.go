// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/model"
)

// elementColor returns the stroke color of curve i: the color scale
// value of the curve when a color scale is bound and the curve has a
// color value, else the positional default.
func (mk *Mark) elementColor(c *model.Curve, i int) string {
	if mk.Scales.Color != nil && c != nil {
		if v, ok := c.ColorValue(); ok {
			return mk.Scales.Color.Color(v)
		}
	}
	return mk.Model.CurveStyle(i).Stroke
}

// opacity returns the path opacity of curve i, including its
// legend toggle factor.
func (mk *Mark) opacity(name string, i int) float64 {
	return mk.Model.CurveStyle(i).Opacity * mk.toggleFactor(name)
}

// dashArray returns the dash array of the model line style.
// An invalid line style is logged and reported as not ok,
// so that the previous dash array is kept.
func (mk *Mark) dashArray() (string, bool) {
	d, err := mk.Model.LineStyle.DashArray()
	if errors.Log(err) != nil {
		return "", false
	}
	return d, true
}

// styleCurve sets all presentation attributes of c.
func (mk *Mark) styleCurve(c *curve) {
	st := mk.Model.CurveStyle(c.index)
	c.path.SetStyle("stroke", mk.elementColor(c.data, c.index))
	c.path.SetStyle("fill", st.Fill)
	c.path.SetStyle("opacity", num(mk.opacity(c.name, c.index)))
	c.path.SetStyle("stroke-width", num(mk.Model.StrokeWidth))
	if d, ok := mk.dashArray(); ok {
		c.path.SetStyle("stroke-dasharray", d)
	}
}

// ApplyColors updates the stroke, fill and opacity of the curves and
// the colors of the legend rows, leaving geometry unchanged.
func (mk *Mark) ApplyColors() {
	for _, c := range mk.curves {
		st := mk.Model.CurveStyle(c.index)
		c.path.SetStyle("stroke", mk.elementColor(c.data, c.index))
		c.path.SetStyle("fill", st.Fill)
		c.path.SetStyle("opacity", num(mk.opacity(c.name, c.index)))
	}
	for _, r := range mk.legend.rows {
		st := mk.Model.CurveStyle(r.index)
		clr := mk.elementColor(mk.modelCurve(r.index), r.index)
		r.swatch.SetStyle("stroke", clr)
		r.swatch.SetStyle("fill", st.Fill)
		r.text.SetStyle("fill", clr)
		r.text.SetStyle("opacity", num(st.Opacity))
	}
}

// ApplyLineStyle updates the dash array of the curves and legend swatches.
func (mk *Mark) ApplyLineStyle() {
	d, ok := mk.dashArray()
	if !ok {
		return
	}
	for _, c := range mk.curves {
		c.path.SetStyle("stroke-dasharray", d)
	}
	for _, r := range mk.legend.rows {
		r.swatch.SetStyle("stroke-dasharray", d)
	}
}

// ApplyStrokeWidth updates the stroke width of the curves and legend swatches.
func (mk *Mark) ApplyStrokeWidth() {
	w := num(mk.Model.StrokeWidth)
	for _, c := range mk.curves {
		c.path.SetStyle("stroke-width", w)
	}
	for _, r := range mk.legend.rows {
		r.swatch.SetStyle("stroke-width", w)
	}
}

// modelCurve returns model curve i, or nil if out of range.
func (mk *Mark) modelCurve(i int) *model.Curve {
	if i < 0 || i >= len(mk.Model.Curves) {
		return nil
	}
	return &mk.Model.Curves[i]
}
