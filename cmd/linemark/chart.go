// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"cogentcore.org/lines/anim"
	"cogentcore.org/lines/lines"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scale"
	"cogentcore.org/lines/scene"
)

// axisScale is a positional scale whose domain the chart sets.
type axisScale interface {
	scale.Positional
	SetDomain(lo, hi float64)
}

// chart is a surface with one line mark, its scales and its legend.
type chart struct {
	m       *model.Lines
	surface *lines.Surface
	mark    *lines.Mark
	legend  *scene.Node
	sched   *anim.Scheduler

	x, y  axisScale
	color *scale.ColorMapScale
}

// extent is a data interval grown from values.
type extent struct {
	lo, hi float64
}

func newExtent() extent {
	return extent{lo: math.Inf(1), hi: math.Inf(-1)}
}

func (e *extent) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.lo = min(e.lo, v)
	e.hi = max(e.hi, v)
}

func (e extent) empty() bool {
	return e.lo > e.hi
}

// domain returns the extent as a scale domain: [0, 1] when empty,
// widened around a single value.
func (e extent) domain() (float64, float64) {
	switch {
	case e.empty():
		return 0, 1
	case e.lo == e.hi:
		return e.lo - 0.5, e.hi + 0.5
	}
	return e.lo, e.hi
}

func extents(curves []model.Curve) (x, y, c extent) {
	x, y, c = newExtent(), newExtent(), newExtent()
	for _, cv := range curves {
		c.add(cv.Color)
		for _, p := range cv.Points {
			x.add(p.X)
			if p.Defined() {
				y.add(p.Y)
			}
			c.add(p.Color)
		}
	}
	return
}

// newChart returns a rendered chart of m.
func (o *options) newChart(m *model.Lines) (*chart, error) {
	ch := &chart{m: m, sched: anim.NewScheduler()}
	ch.surface = lines.NewSurface(o.width, o.height)
	xe, ye, ce := extents(m.Curves)
	if o.date {
		lo, hi := xe.domain()
		ch.x = scale.NewDate(time.UnixMilli(int64(lo)), time.UnixMilli(int64(hi)))
	} else {
		ch.x = scale.NewLinear(xe.domain())
	}
	ch.y = scale.NewLinear(ye.domain())
	sc := lines.Scales{X: ch.x, Y: ch.y}
	if !ce.empty() || o.scheme != "" {
		ch.color = scale.NewColorMap(ce.domain())
		if o.scheme != "" {
			if err := ch.color.SetScheme(o.scheme); err != nil {
				return nil, err
			}
		}
		sc.Color = ch.color
	}
	ch.mark = lines.New(ch.surface, m, sc, lines.WithConfig(o.cfg), lines.WithAnimator(ch.sched))
	ch.surface.Fit(ch.mark)
	ch.mark.Render()
	ch.legend = ch.surface.Root().Append("g", "legend_box")
	ch.layoutLegend()
	return ch, nil
}

// layoutLegend renders the legend in the top right corner.
func (ch *chart) layoutLegend() {
	const rowHeight, charWidth = 16.0, 7.0
	rows, maxLen := ch.mark.RenderLegend(ch.legend, lines.LegendLayout{YDisp: rowHeight / 2, InterY: rowHeight})
	cfg := ch.mark.Config
	w := rowHeight*cfg.SwatchFactor*cfg.TextFactor + float64(maxLen)*charWidth
	ch.legend.SetAttr("transform", fmt.Sprintf("translate(%g, 0)", ch.surface.Width-w))
	slog.Debug("linemark: legend", "rows", rows, "width", w, "height", float64(rows)*rowHeight)
}

// update assigns src to the chart model, refitting the scale domains
// without intermediate redraws.
func (ch *chart) update(src *model.Lines) {
	xe, ye, ce := extents(src.Curves)
	ch.m.Dirty = true
	ch.x.SetDomain(xe.domain())
	ch.y.SetDomain(ye.domain())
	ch.m.Dirty = false
	if ch.color != nil {
		ch.color.SetDomain(ce.domain())
	}
	changed := ch.m.Assign(src)
	slog.Info("linemark: model updated", "changes", changed)
	ch.surface.Fit(ch.mark)
	ch.mark.Relayout()
	ch.layoutLegend()
	ch.sched.Finish()
}

// write finishes all transitions and writes the chart as SVG.
func (ch *chart) write(w io.Writer) error {
	ch.sched.Finish()
	return ch.surface.Root().WriteSVG(w)
}

// save writes the chart to the given file, or to stdout for "-".
func (ch *chart) save(filename string, stdout io.Writer) error {
	if filename == "-" {
		return ch.write(stdout)
	}
	ch.sched.Finish()
	return ch.surface.Root().SaveSVG(filename)
}
