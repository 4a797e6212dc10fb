// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"log/slog"

	"cogentcore.org/lines/base/plan"
	"cogentcore.org/lines/linegen"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scene"
)

// curve is the rendered form of one model curve.
type curve struct {
	name string

	// index is the position of the curve in the current collection.
	index int

	data *model.Curve

	group, path, label *scene.Node
}

func (c *curve) PlanName() string { return c.name }

// keyIndex returns the index of the first curve with each key.
func keyIndex(n int, key func(i int) string) map[string]int {
	idx := make(map[string]int, n)
	for i := range n {
		nm := key(i)
		if _, ok := idx[nm]; !ok {
			idx[nm] = i
		}
	}
	return idx
}

// Draw binds the scale ranges and renders the model curves.
func (mk *Mark) Draw() {
	mk.BindRanges()
	mk.RenderCurves(mk.Model.Curves, mk.Scales)
	if mk.legend.container != nil {
		mk.RenderLegend(mk.legend.container, mk.legend.layout)
	}
}

// setLine builds the line generator for the given scales and the
// current interpolation.
func (mk *Mark) setLine(sc Scales) {
	mk.line = linegen.Line[model.Point]{
		Interpolation: mk.Model.Interpolation,
		X: func(p model.Point, i int) float64 {
			return sc.X.Map(p.X) + sc.X.Offset()
		},
		Y: func(p model.Point, i int) float64 {
			return sc.Y.Map(p.Y) + sc.Y.Offset()
		},
		Defined: func(p model.Point, i int) bool {
			return p.Defined()
		},
	}
}

// pathData returns the path data of c, closed if the model says so.
// A curve without defined points has empty path data.
func (mk *Mark) pathData(c *model.Curve) string {
	d := mk.line.Path(c.Points)
	if d != "" && mk.Model.ClosePath {
		d += "Z"
	}
	return d
}

// RenderCurves synchronizes the rendered curves with the given ones,
// matching them by name: new curves are added, missing ones are
// removed after the transition duration, and all are restyled and
// given new path data. It then applies the visible subset and
// recreates the end of line labels.
func (mk *Mark) RenderCurves(curves []model.Curve, sc Scales) {
	if mk.el == nil {
		return
	}
	mk.setLine(sc)
	dur := mk.Model.AnimateDuration
	key := func(i int) string { return model.CurveKey(curves, i) }
	var ed plan.Edits
	mk.curves, ed = plan.Update(mk.curves, len(curves), key, func(name string, i int) *curve {
		g := scene.New("g", "curve")
		g.Key = name
		path := g.Append("path", "line")
		path.SetAttr("fill", "none")
		return &curve{name: name, group: g, path: path}
	}, func(c *curve) {
		mk.Anim.Cancel(c.path)
		mk.Anim.Remove(c.group, dur)
	})
	if ed.Changed() {
		slog.Debug("lines: curves changed", "mark", mk.ID, "added", ed.Added, "removed", ed.Removed, "moved", ed.Moved)
	}

	idx := keyIndex(len(curves), key)
	for _, c := range mk.curves {
		// exiting groups stay below, in their old order
		mk.el.AppendChild(c.group)
		c.index = idx[c.name]
		c.data = &curves[c.index]
		c.path.SetAttr("id", fmt.Sprintf("curve%d", c.index+1))
		mk.styleCurve(c)
		mk.Anim.Animate(c.path, "d", mk.pathData(c.data), dur)
	}
	mk.ApplySubset()
	mk.RenderLabels()
}

// Relayout rebinds the scale ranges after a change of the host size,
// moving the curves to their new positions and recreating the labels.
func (mk *Mark) Relayout() {
	if mk.el == nil {
		return
	}
	mk.BindRanges()
	mk.setLine(mk.Scales)
	for _, c := range mk.curves {
		mk.Anim.Animate(c.path, "d", mk.pathData(c.data), mk.Model.AnimateDuration)
	}
	mk.RenderLabels()
}

// UpdatePathStyle recomputes the path data of all curves, without
// transition, after a change of interpolation or path closing.
func (mk *Mark) UpdatePathStyle() {
	mk.setLine(mk.Scales)
	for _, c := range mk.curves {
		mk.Anim.Animate(c.path, "d", mk.pathData(c.data), 0)
	}
}

// ApplySubset shows only the curves of the model subset, or all
// curves when the subset does not restrict them.
func (mk *Mark) ApplySubset() {
	m := mk.Model
	for _, c := range mk.curves {
		shown := m.CurveShown(c.index)
		c.path.SetDisplay(shown)
		if c.label != nil {
			c.label.SetDisplay(shown && m.LabelsVisibility.ShowLabels())
		}
	}
}
