// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "math"

// Null is the value used for missing y and color values.
var Null = math.NaN()

// Point is one data point of a curve. NaN stands for a null value.
type Point struct {
	X float64

	// Y is NaN for an undefined point, which leaves a gap in the curve.
	Y float64

	// Color is the value mapped through a color scale, NaN if absent.
	Color float64
}

// Pt returns a point without a color value.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Color: Null}
}

// Defined returns whether the point has a y value.
func (p Point) Defined() bool {
	return !math.IsNaN(p.Y)
}

// HasColor returns whether the point has a color value.
func (p Point) HasColor() bool {
	return !math.IsNaN(p.Color)
}

// Curve is one named line of a mark.
type Curve struct {
	// Name identifies the curve across data updates.
	Name string

	// Points are the data points in x order.
	Points []Point

	// Color is the color scale value of the whole curve, NaN if absent.
	Color float64
}

// NewCurve returns a curve with the given name and x and y values.
// Missing y values are null.
func NewCurve(name string, x, y []float64) Curve {
	c := Curve{Name: name, Color: Null, Points: make([]Point, len(x))}
	for i, xv := range x {
		yv := Null
		if i < len(y) {
			yv = y[i]
		}
		c.Points[i] = Pt(xv, yv)
	}
	return c
}

// ColorValue returns the color scale value representing the curve:
// the curve color if set, otherwise that of its first point with one.
func (c *Curve) ColorValue() (float64, bool) {
	if !math.IsNaN(c.Color) {
		return c.Color, true
	}
	for _, p := range c.Points {
		if p.HasColor() {
			return p.Color, true
		}
	}
	return 0, false
}

// XValues returns the x coordinates of the points.
func (c *Curve) XValues() []float64 {
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.X
	}
	return xs
}

// LastDefined returns the last point with a y value.
func (c *Curve) LastDefined() (Point, bool) {
	for i := len(c.Points) - 1; i >= 0; i-- {
		if c.Points[i].Defined() {
			return c.Points[i], true
		}
	}
	return Point{}, false
}

// CurveStyle is the presentation record of one curve, resolved from
// the positional style arrays of the model.
type CurveStyle struct {
	// Stroke is the positional default stroke color, used when no
	// color scale value applies.
	Stroke string

	// Fill is the area fill color, "none" for no fill.
	Fill string

	// Opacity is the curve opacity.
	Opacity float64
}
