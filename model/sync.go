// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"slices"

	"cogentcore.org/lines/events"
)

func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func samePoints(a, b []Point) bool {
	return slices.EqualFunc(a, b, func(p, q Point) bool {
		return sameValue(p.X, q.X) && sameValue(p.Y, q.Y) && sameValue(p.Color, q.Color)
	})
}

func sameCurves(a, b []Curve) bool {
	return slices.EqualFunc(a, b, func(c, d Curve) bool {
		return c.Name == d.Name && sameValue(c.Color, d.Color) && samePoints(c.Points, d.Points)
	})
}

// Assign sets the values of ln to those of src, a validated model,
// announcing exactly the properties that differ. Curves are assigned
// last, so that a redraw sees all other new values. It returns the
// changes that were sent. Selection state is not assigned.
func (ln *Lines) Assign(src *Lines) []events.Changes {
	var sent []events.Changes
	record := func(ch events.Changes) func(ev *events.Event) {
		return func(ev *events.Event) { sent = append(sent, ch) }
	}
	var removes []func()
	for _, ch := range events.ChangesValues() {
		removes = append(removes, ln.listeners.Add(ch, record(ch)))
	}
	defer func() {
		for _, rm := range removes {
			rm()
		}
	}()

	if !slices.Equal(ln.Labels, src.Labels) {
		ln.SetLabels(src.Labels)
	}
	if !slices.Equal(ln.Colors, src.Colors) {
		ln.Colors = src.Colors
		ln.Send(events.Colors)
	}
	if !slices.Equal(ln.Fill, src.Fill) {
		ln.Fill = src.Fill
		ln.Send(events.Fill)
	}
	if !slices.Equal(ln.Opacity, src.Opacity) {
		ln.Opacity = src.Opacity
		ln.Send(events.Opacity)
	}
	if ln.StrokeWidth != src.StrokeWidth {
		ln.StrokeWidth = src.StrokeWidth
		ln.Send(events.StrokeWidth)
	}
	ln.SetAnimateDuration(src.AnimateDuration)
	if ln.ClosePath != src.ClosePath {
		ln.SetClosePath(src.ClosePath)
	}
	if ln.Interpolation != src.Interpolation {
		ln.Interpolation = src.Interpolation
		ln.Send(events.Interpolation)
	}
	if ln.LineStyle != src.LineStyle {
		ln.LineStyle = src.LineStyle
		ln.Send(events.LineStyle)
	}
	if ln.LabelsVisibility != src.LabelsVisibility {
		ln.LabelsVisibility = src.LabelsVisibility
		ln.Send(events.LabelsVisibility)
	}
	if !sameCurves(ln.Curves, src.Curves) {
		ln.SetCurves(src.Curves)
	}
	if !slices.Equal(ln.CurvesSubset, src.CurvesSubset) {
		ln.SetCurvesSubset(src.CurvesSubset)
	}
	return sent
}
