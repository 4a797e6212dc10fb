// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linegen generates SVG path data for lines through a sequence
// of data values, with pluggable coordinate accessors, gaps for
// undefined values and several interpolation modes.
package linegen

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/lines/geom"
)

// DefaultTension is the cardinal spline tension used when none is set.
const DefaultTension = 0.7

// Line generates path data for a sequence of values of type T.
type Line[T any] struct {
	// Interpolation is how consecutive points are connected.
	Interpolation Interpolations

	// Tension is the cardinal spline tension in [0, 1].
	// Zero means [DefaultTension].
	Tension float64

	// X returns the pixel x coordinate of a value.
	X func(d T, i int) float64

	// Y returns the pixel y coordinate of a value.
	Y func(d T, i int) float64

	// Defined reports whether a value is part of the line.
	// Undefined values split the line into separate segments.
	// All values are defined if nil.
	Defined func(d T, i int) bool
}

// Segments returns the runs of consecutive defined points,
// in pixel coordinates.
func (ln *Line[T]) Segments(data []T) [][]geom.Point {
	var segs [][]geom.Point
	var cur []geom.Point
	for i, d := range data {
		if ln.Defined != nil && !ln.Defined(d, i) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, geom.Pt(ln.X(d, i), ln.Y(d, i)))
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// Path returns the SVG path data for the given values: one
// subpath starting with M per run of defined values.
// It returns "" when no value is defined.
func (ln *Line[T]) Path(data []T) string {
	var b strings.Builder
	for _, seg := range ln.Segments(data) {
		b.WriteByte('M')
		ln.interpolate(&b, seg)
	}
	return b.String()
}

func (ln *Line[T]) interpolate(b *strings.Builder, pts []geom.Point) {
	switch ln.Interpolation {
	case Step:
		stepMid(b, pts)
	case StepBefore:
		stepBefore(b, pts)
	case StepAfter:
		stepAfter(b, pts)
	case Basis:
		basis(b, pts)
	case Cardinal:
		tension := ln.Tension
		if tension == 0 {
			tension = DefaultTension
		}
		if len(pts) < 3 {
			linear(b, pts)
			return
		}
		writePoint(b, pts[0])
		hermite(b, pts, cardinalTangents(pts, tension))
	case Monotone:
		if len(pts) < 3 {
			linear(b, pts)
			return
		}
		writePoint(b, pts[0])
		hermite(b, pts, monotoneTangents(pts))
	default:
		linear(b, pts)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePoint(b *strings.Builder, p geom.Point) {
	b.WriteString(num(p.X))
	b.WriteByte(',')
	b.WriteString(num(p.Y))
}

// writeCmd writes a command letter followed by comma separated coordinates.
func writeCmd(b *strings.Builder, cmd byte, vs ...float64) {
	b.WriteByte(cmd)
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(num(v))
	}
}

func linear(b *strings.Builder, pts []geom.Point) {
	for i, p := range pts {
		if i > 0 {
			b.WriteByte('L')
		}
		writePoint(b, p)
	}
}

func stepMid(b *strings.Builder, pts []geom.Point) {
	p := pts[0]
	writePoint(b, p)
	for _, q := range pts[1:] {
		writeCmd(b, 'H', (p.X+q.X)/2)
		writeCmd(b, 'V', q.Y)
		p = q
	}
	if len(pts) > 1 {
		writeCmd(b, 'H', p.X)
	}
}

func stepBefore(b *strings.Builder, pts []geom.Point) {
	writePoint(b, pts[0])
	for _, q := range pts[1:] {
		writeCmd(b, 'V', q.Y)
		writeCmd(b, 'H', q.X)
	}
}

func stepAfter(b *strings.Builder, pts []geom.Point) {
	writePoint(b, pts[0])
	for _, q := range pts[1:] {
		writeCmd(b, 'H', q.X)
		writeCmd(b, 'V', q.Y)
	}
}

// B-spline basis weights
var (
	basis1 = [4]float64{0, 2.0 / 3, 1.0 / 3, 0}
	basis2 = [4]float64{0, 1.0 / 3, 2.0 / 3, 0}
	basis3 = [4]float64{0, 1.0 / 6, 2.0 / 3, 1.0 / 6}
)

func dot4(a, b [4]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func basis(b *strings.Builder, pts []geom.Point) {
	n := len(pts)
	if n < 3 {
		linear(b, pts)
		return
	}
	x0, y0 := pts[0].X, pts[0].Y
	px := [4]float64{x0, x0, x0, pts[1].X}
	py := [4]float64{y0, y0, y0, pts[1].Y}
	writePoint(b, pts[0])
	writeCmd(b, 'L', dot4(basis3, px), dot4(basis3, py))
	shift := func(p geom.Point) {
		px = [4]float64{px[1], px[2], px[3], p.X}
		py = [4]float64{py[1], py[2], py[3], p.Y}
		writeCmd(b, 'C', dot4(basis1, px), dot4(basis1, py), dot4(basis2, px), dot4(basis2, py), dot4(basis3, px), dot4(basis3, py))
	}
	for i := 2; i < n; i++ {
		shift(pts[i])
	}
	// the last point is repeated to pull the curve onto it
	shift(pts[n-1])
	writeCmd(b, 'L', pts[n-1].X, pts[n-1].Y)
}

func cardinalTangents(pts []geom.Point, tension float64) []geom.Point {
	a := (1 - tension) / 2
	tangents := make([]geom.Point, 0, len(pts)-2)
	for i := 1; i < len(pts)-1; i++ {
		p0, p2 := pts[i-1], pts[i+1]
		tangents = append(tangents, geom.Pt(a*(p2.X-p0.X), a*(p2.Y-p0.Y)))
	}
	return tangents
}

func slope(p0, p1 geom.Point) float64 {
	return (p1.Y - p0.Y) / (p1.X - p0.X)
}

func monotoneTangents(pts []geom.Point) []geom.Point {
	j := len(pts) - 1
	m := make([]float64, len(pts))
	d := slope(pts[0], pts[1])
	m[0] = d
	for i := 1; i < j; i++ {
		prev := d
		d = slope(pts[i], pts[i+1])
		m[i] = (prev + d) / 2
	}
	m[j] = d

	for i := 0; i < j; i++ {
		d := slope(pts[i], pts[i+1])
		if math.Abs(d) < 1e-6 {
			m[i], m[i+1] = 0, 0
			continue
		}
		a, b := m[i]/d, m[i+1]/d
		if s := a*a + b*b; s > 9 {
			s = d * 3 / math.Sqrt(s)
			m[i], m[i+1] = s*a, s*b
		}
	}

	tangents := make([]geom.Point, len(pts))
	for i := range pts {
		s := (pts[min(j, i+1)].X - pts[max(0, i-1)].X) / (6 * (1 + m[i]*m[i]))
		tangents[i] = geom.Pt(finite(s), finite(m[i]*s))
	}
	return tangents
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// hermite writes a piecewise cubic hermite spline through pts with the
// given tangents: one per point, or one per interior point, in which
// case the end intervals are drawn as quadratics.
func hermite(b *strings.Builder, pts, tangents []geom.Point) {
	if len(tangents) < 1 || (len(pts) != len(tangents) && len(pts) != len(tangents)+2) {
		b.WriteByte('L')
		linear(b, pts[1:])
		return
	}
	quad := len(pts) != len(tangents)
	p0, p := pts[0], pts[1]
	t0 := tangents[0]
	t := t0
	pi := 1
	if quad {
		writeCmd(b, 'Q', p.X-t0.X*2/3, p.Y-t0.Y*2/3, p.X, p.Y)
		p0 = pts[1]
		pi = 2
	}
	if len(tangents) > 1 {
		t = tangents[1]
		p = pts[pi]
		pi++
		writeCmd(b, 'C', p0.X+t0.X, p0.Y+t0.Y, p.X-t.X, p.Y-t.Y, p.X, p.Y)
		for i := 2; i < len(tangents); i++ {
			p = pts[pi]
			t = tangents[i]
			writeCmd(b, 'S', p.X-t.X, p.Y-t.Y, p.X, p.Y)
			pi++
		}
	}
	if quad {
		lp := pts[pi]
		writeCmd(b, 'Q', p.X+t.X*2/3, p.Y+t.Y*2/3, lp.X, lp.Y)
	}
}
