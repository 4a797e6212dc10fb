// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the small amount of 2D geometry needed
// for pixel space selection: points, boxes and polygon membership.
package geom

import "math"

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Pt returns a new [Point].
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsNaN returns true if either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Box is an axis aligned bounding box.
type Box struct {
	Min, Max Point
}

// Bounds returns the bounding box of the given points.
// The box of no points is empty (Min > Max).
func Bounds(pts []Point) Box {
	b := Box{Min: Pt(math.Inf(1), math.Inf(1)), Max: Pt(math.Inf(-1), math.Inf(-1))}
	for _, p := range pts {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Contains returns whether p is within the box, inclusive of its edges.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// InsideFunc reports whether a point lies inside a polygon.
// It is the collaborator used for lasso selection, so that
// callers can substitute their own membership test.
type InsideFunc func(p Point, polygon []Point) bool

// PointInPolygon tests if a point is inside a polygon using ray casting.
// Polygons with fewer than 3 vertices contain nothing.
// The polygon is implicitly closed.
func PointInPolygon(p Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 || p.IsNaN() {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]
		// does a ray from p going right cross edge pi-pj
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

var _ InsideFunc = PointInPolygon
