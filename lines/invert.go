// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"sort"

	"cogentcore.org/lines/geom"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scale"
)

// xData returns the x values used for point and range inversion:
// those of the first curve.
func (mk *Mark) xData() []float64 {
	if len(mk.Model.Curves) == 0 {
		return nil
	}
	return mk.Model.Curves[0].XValues()
}

// bisect returns the index of the first x value not less than v,
// clamped to the last index. xs must be sorted and non-empty.
func bisect(xs []float64, v float64) int {
	return min(sort.SearchFloat64s(xs, v), len(xs)-1)
}

// InvertPoint selects the point at the x value of pixel px: the first
// point at or after it, clamped to the last point. It returns the
// index, or -1 without changing the selection when there are no points.
func (mk *Mark) InvertPoint(px float64) int {
	xs := mk.xData()
	if len(xs) == 0 {
		return -1
	}
	i := bisect(xs, mk.Scales.X.Invert(px))
	mk.Model.SetSelected(model.IndexSelection(i))
	mk.Model.Touch()
	return i
}

// InvertRange selects the points between pixels start and end,
// inverting each end as [Mark.InvertPoint] does. It returns -1, -1
// without changing the selection when there are no points.
func (mk *Mark) InvertRange(start, end float64) (int, int) {
	xs := mk.xData()
	if len(xs) == 0 {
		return -1, -1
	}
	i := bisect(xs, mk.Scales.X.Invert(start))
	j := bisect(xs, mk.Scales.X.Invert(end))
	mk.Model.SetSelected(model.IndexSelection(i, j))
	mk.Model.Touch()
	return i, j
}

// InvertMultiRange sets the bounds of the linked brush selector from
// the given data space extent, formatting them as dates when the x
// scale is a date scale, and touches the selector. It returns the
// clamped indices of the extent, or -1, -1 when there are no points.
func (mk *Mark) InvertMultiRange(extent [2]float64) (int, int) {
	xs := mk.xData()
	if len(xs) == 0 {
		return -1, -1
	}
	i := bisect(xs, extent[0])
	j := bisect(xs, extent[1])
	bounds := [2]model.Bound{{Value: extent[0]}, {Value: extent[1]}}
	if df, ok := mk.Scales.X.(scale.DateFormatter); ok && mk.Scales.X.Type() == scale.Date {
		for k := range bounds {
			bounds[k].Text = df.FormatDate(bounds[k].Value)
		}
	}
	if sl := mk.Model.Selector; sl != nil {
		sl.SetBounds(bounds)
		sl.Touch()
	}
	return i, j
}

// UpdateLassoSelection selects, for lasso id, the points of every
// curve whose pixel position is inside the polygon of vertices
// according to inside, which defaults to [geom.PointInPolygon].
// The entries of other lassos are kept. Empty vertices remove the
// entries of the lasso. It returns whether any point is inside.
func (mk *Mark) UpdateLassoSelection(id string, vertices []geom.Point, inside geom.InsideFunc) bool {
	m := mk.Model
	if len(vertices) == 0 {
		m.SetSelected(m.Selected.WithoutLasso(id))
		m.Touch()
		return false
	}
	if len(m.Curves) == 0 {
		return false
	}
	if inside == nil {
		inside = geom.PointInPolygon
	}
	var entries []model.LassoSelection
	for i, c := range m.Curves {
		var idx []int
		for j, p := range c.Points {
			if !p.Defined() {
				continue
			}
			if inside(geom.Pt(mk.Scales.X.Map(p.X), mk.Scales.Y.Map(p.Y)), vertices) {
				idx = append(idx, j)
			}
		}
		if len(idx) > 0 {
			entries = append(entries, model.LassoSelection{Curve: m.CurveKey(i), Indices: idx})
		}
	}
	m.SetSelected(m.Selected.WithLasso(id, entries))
	m.Touch()
	return len(entries) > 0
}
