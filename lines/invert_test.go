// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"
	"time"

	"cogentcore.org/lines/geom"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scale"
	"github.com/stretchr/testify/assert"
)

func TestInvertPoint(t *testing.T) {
	mk, m, _ := newTestMark(t, model.NewCurve("a", xs, []float64{0, 1, 2, 3, 4}))
	assert.Equal(t, 2, mk.InvertPoint(50))
	assert.Equal(t, []int{2}, m.Selected.Indices)
	assert.Equal(t, 1, m.Touches())

	// the first point at or after the inverted value
	assert.Equal(t, 2, mk.InvertPoint(30))
	assert.Equal(t, 1, mk.InvertPoint(25))

	for px := -50.0; px <= 150; px += 5 {
		i := mk.InvertPoint(px)
		assert.GreaterOrEqual(t, i, 0)
		assert.LessOrEqual(t, i, len(xs)-1)
		v := mk.Scales.X.Invert(px)
		if v <= xs[len(xs)-1] {
			assert.GreaterOrEqual(t, xs[i], v, "px %g", px)
			if i > 0 {
				assert.Less(t, xs[i-1], v, "px %g", px)
			}
		}
	}
}

func TestInvertRange(t *testing.T) {
	mk, m, _ := newTestMark(t, model.NewCurve("a", xs, []float64{0, 1, 2, 3, 4}))
	tests := []struct {
		a, b float64
		i, j int
	}{
		{30, 80, 2, 4},
		{0, 0, 0, 0},
		{50, 50, 2, 2},
		{-100, 500, 0, 4},
		{60, 61, 3, 3},
	}
	for _, tc := range tests {
		i, j := mk.InvertRange(tc.a, tc.b)
		assert.Equal(t, tc.i, i, "%v", tc)
		assert.Equal(t, tc.j, j, "%v", tc)
		assert.LessOrEqual(t, i, j)
		assert.Equal(t, []int{i, j}, m.Selected.Indices)
	}
}

func TestInvertEmpty(t *testing.T) {
	mk, m, _ := newTestMark(t)
	m.Selected = model.IndexSelection(1)
	assert.Equal(t, -1, mk.InvertPoint(10))
	i, j := mk.InvertRange(0, 10)
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	i, j = mk.InvertMultiRange([2]float64{0, 1})
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	assert.False(t, mk.UpdateLassoSelection("l", []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, nil))
	assert.Equal(t, model.IndexSelection(1), m.Selected)
	assert.Equal(t, 0, m.Touches())
}

func TestInvertMultiRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	var dx []float64
	for d := 1; d <= 5; d++ {
		dx = append(dx, scale.Millis(day(d)))
	}
	m := model.New()
	m.Curves = []model.Curve{model.NewCurve("a", dx, []float64{0, 1, 2, 3, 4})}
	m.Selector = &model.Selector{}
	touched := 0
	m.Selector.OnTouch(func() { touched++ })
	mk := New(NewSurface(100, 100), m, Scales{X: scale.NewDate(day(1), day(5)), Y: scale.NewLinear(0, 4)})
	mk.Render()

	i, j := mk.InvertMultiRange([2]float64{scale.Millis(day(2)) - 1, scale.Millis(day(9))})
	assert.Equal(t, 1, i)
	assert.Equal(t, 4, j)
	b := m.Selector.Bounds()
	assert.Equal(t, "2025-03-01", b[0].Text)
	assert.Equal(t, "2025-03-09", b[1].Text)
	assert.Equal(t, scale.Millis(day(9)), b[1].Value)
	assert.Equal(t, 1, touched)
	assert.Equal(t, 0, m.Touches())

	// numeric axes store raw bounds
	mk.Scales.X = scale.NewLinear(0, 1)
	mk.InvertMultiRange([2]float64{0, 1})
	assert.Equal(t, "", m.Selector.Bounds()[0].Text)
}

var square = []geom.Point{{X: 20, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 20, Y: 60}}

func TestLassoSelection(t *testing.T) {
	mk, m, _ := newTestMark(t,
		model.NewCurve("a", xs, []float64{2, 2, 2, 2, 2}),
		model.NewCurve("b", xs, []float64{2, model.Null, 2, 0, 0}),
		model.NewCurve("c", xs, []float64{0, 0, 0, 0, 0}))

	assert.True(t, mk.UpdateLassoSelection("l1", square, nil))
	assert.Equal(t, []model.LassoSelection{
		{Curve: "a", Lasso: "l1", Indices: []int{1, 2}},
		{Curve: "b", Lasso: "l1", Indices: []int{2}},
	}, m.Selected.Lassos)
	assert.Nil(t, m.Selected.Indices)

	// moving the lasso replaces its entries
	all := func(p geom.Point, poly []geom.Point) bool { return true }
	assert.True(t, mk.UpdateLassoSelection("l1", square, all))
	assert.Len(t, m.Selected.Lassos, 3)
	assert.Equal(t, []int{0, 2, 3, 4}, m.Selected.Lasso("l1")[1].Indices)

	none := func(p geom.Point, poly []geom.Point) bool { return false }
	assert.False(t, mk.UpdateLassoSelection("l1", square, none))
	assert.True(t, m.Selected.IsEmpty())
}

func TestLassoRoundTrip(t *testing.T) {
	mk, m, _ := newTestMark(t,
		model.NewCurve("a", xs, []float64{2, 2, 2, 2, 2}),
		model.NewCurve("b", xs, []float64{2, model.Null, 2, 0, 0}))
	m.Selected = model.Selection{Lassos: []model.LassoSelection{{Curve: "b", Lasso: "other", Indices: []int{4}}}}
	before := m.Selected.Clone()

	assert.True(t, mk.UpdateLassoSelection("l1", square, nil))
	assert.Len(t, m.Selected.Lassos, 3)
	assert.False(t, mk.UpdateLassoSelection("l1", nil, nil))
	assert.Equal(t, before, m.Selected)
	assert.Equal(t, 2, m.Touches())
}
