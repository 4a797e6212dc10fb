// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "log/slog"

// toggleFactor returns the opacity factor of the named curve.
func (mk *Mark) toggleFactor(name string) float64 {
	if f, ok := mk.toggles[name]; ok {
		return f
	}
	return 1
}

// ToggleCurve flips curve index between full opacity and the dimmed
// opacity of [config.Config.DimOpacity]. Its legend row gets the
// factor plus [config.Config.LegendBoost], so that it stays more
// visible than the curve. This is view state of the mark, not
// part of the model; it is kept across redraws, by curve name.
func (mk *Mark) ToggleCurve(index int) {
	if index < 0 || index >= len(mk.Model.Curves) {
		slog.Warn("lines: toggle of missing curve", "mark", mk.ID, "index", index, "curves", len(mk.Model.Curves))
		return
	}
	name := mk.Model.CurveKey(index)
	f := mk.Config.DimOpacity
	if mk.toggleFactor(name) != 1 {
		f = 1
	}
	mk.toggles[name] = f
	for _, c := range mk.curves {
		if c.name == name {
			c.path.SetStyle("opacity", num(mk.opacity(c.name, c.index)))
		}
	}
	for _, r := range mk.legend.rows {
		if r.name == name {
			r.g.SetStyle("opacity", num(f+mk.Config.LegendBoost))
		}
	}
}

// CurveFactor returns the legend toggle opacity factor of curve index:
// 1 unless it has been dimmed.
func (mk *Mark) CurveFactor(index int) float64 {
	if index < 0 || index >= len(mk.Model.Curves) {
		return 1
	}
	return mk.toggleFactor(mk.Model.CurveKey(index))
}

// ResetToggles restores all toggled curves and legend rows.
func (mk *Mark) ResetToggles() {
	clear(mk.toggles)
	for _, c := range mk.curves {
		c.path.SetStyle("opacity", num(mk.opacity(c.name, c.index)))
	}
	for _, r := range mk.legend.rows {
		r.g.SetStyle("opacity", "1")
	}
}
