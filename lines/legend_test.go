// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc(t *testing.T) (*Mark, *model.Lines, *scene.Node) {
	mk, m, _ := newTestMark(t,
		model.NewCurve("a", xs, []float64{1, 1, 1, 1, 1}),
		model.NewCurve("b", xs, []float64{2, 2, 2, 2, model.Null}),
		model.NewCurve("c", xs, []float64{3, 3, 3, 3, 3}))
	require.NoError(t, m.SetFill([]string{"red", "green", "blue"}))
	require.NoError(t, m.SetOpacity([]float64{1, 1, 1}))
	legend := scene.New("g", "legend_box")
	return mk, m, legend
}

func TestRenderLegend(t *testing.T) {
	mk, m, legend := abc(t)
	m.Labels = []string{"alpha", "b", "gamma ray"}
	count, maxLen := mk.RenderLegend(legend, LegendLayout{YDisp: 5, InterY: 20})
	assert.Equal(t, 3, count)
	assert.Equal(t, 9, maxLen)

	require.Len(t, legend.Children, 3)
	row := legend.Children[1]
	assert.True(t, row.HasClass("legendt"))
	assert.Equal(t, "translate(0, 25)", row.Attr("transform"))
	sw := row.SelectTag("line")
	assert.Equal(t, "0", sw.Attr("x1"))
	assert.Equal(t, "16", sw.Attr("x2"))
	assert.Equal(t, "8", sw.Attr("y1"))
	assert.Equal(t, "8", sw.Attr("y2"))
	assert.Equal(t, "green", sw.Style("fill"))
	assert.Equal(t, mk.Node().Children[1].Select("line").Style("stroke"), sw.Style("stroke"))
	assert.Equal(t, "2", sw.Style("stroke-width"))
	assert.Equal(t, "none", sw.Style("stroke-dasharray"))
	txt := row.Select("legendtext")
	assert.Equal(t, "b", txt.Text)
	assert.Equal(t, "19.2", txt.Attr("x"))
	assert.Equal(t, "8", txt.Attr("y"))

	// rows follow the curves by name
	m.SetCurves(m.Curves[1:])
	require.Len(t, legend.Children, 2)
	assert.Same(t, row, legend.Children[0])
	assert.Equal(t, "translate(0, 5)", row.Attr("transform"))

	m.SetLabels([]string{"beta"})
	assert.Equal(t, "beta", txt.Text)
	require.NoError(t, m.SetLineStyle(model.Dashed))
	assert.Equal(t, "10,10", sw.Style("stroke-dasharray"))
	require.NoError(t, m.SetStrokeWidth(3))
	assert.Equal(t, "3", sw.Style("stroke-width"))
}

func TestRenderLegendSharedName(t *testing.T) {
	mk, _, sf := newTestMark(t, model.NewCurve("a", xs, xs), model.NewCurve("a", xs, xs))
	legend := sf.Root().Append("g", "legend_box")
	count, _ := mk.RenderLegend(legend, LegendLayout{InterY: 20})
	assert.Equal(t, 1, count)
	assert.Len(t, legend.Children, count)
}

func TestToggleCurve(t *testing.T) {
	mk, _, legend := abc(t)
	mk.RenderLegend(legend, LegendLayout{InterY: 20})
	path := mk.Node().FindID("curve2")
	row := legend.FindID("legend2")
	require.NotNil(t, path)
	require.NotNil(t, row)

	mk.ToggleCurve(1)
	assert.Equal(t, "0.1", path.Style("opacity"))
	assert.Equal(t, "0.5", row.Style("opacity"))
	assert.Equal(t, 0.1, mk.CurveFactor(1))

	// kept across redraws
	mk.Draw()
	assert.Equal(t, "0.1", path.Style("opacity"))
	assert.Equal(t, "0.5", row.Style("opacity"))

	mk.ToggleCurve(1)
	assert.Equal(t, "1", path.Style("opacity"))
	assert.Equal(t, "1.4", row.Style("opacity"))
	assert.Equal(t, 1.0, mk.CurveFactor(1))

	mk.ToggleCurve(7)
	mk.ToggleCurve(-1)
	assert.Equal(t, "1", mk.Node().FindID("curve1").Style("opacity"))

	mk.ToggleCurve(0)
	mk.ResetToggles()
	assert.Equal(t, "1", mk.Node().FindID("curve1").Style("opacity"))
	assert.Equal(t, 1.0, mk.CurveFactor(0))
}

func TestLabelsVisibility(t *testing.T) {
	mk, m, legend := abc(t)
	mk.RenderLegend(legend, LegendLayout{InterY: 20})
	labels := mk.Node().SelectAll("curve_label")
	require.Len(t, labels, 3)

	check := func(lv model.LabelsVisibilities, legendShown, labelsShown bool) {
		t.Helper()
		require.NoError(t, m.SetLabelsVisibility(lv))
		for _, r := range legend.Children {
			assert.Equal(t, !legendShown, r.Hidden(), "legend %v", lv)
		}
		for _, lb := range mk.Node().SelectAll("curve_label") {
			assert.Equal(t, !labelsShown, lb.Hidden(), "labels %v", lv)
		}
	}
	check(model.LabelsNone, false, false)
	check(model.LabelsLabel, false, true)
	check(model.LabelsLegend, true, false)

	// labels sit at the last defined point
	assert.Equal(t, "translate(75,50)", labels[1].Attr("transform"))
	assert.Equal(t, "3", labels[1].Attr("x"))
	assert.Equal(t, ".35em", labels[1].Attr("dy"))
	assert.Equal(t, "b", labels[1].Text)
}
