// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(1, 9), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
		{Pt(math.NaN(), 5), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PointInPolygon(tt.p, square), "point %v", tt.p)
	}
	assert.False(t, PointInPolygon(Pt(0, 0), square[:2]))
}

func TestPointInConcavePolygon(t *testing.T) {
	// U shape opening upwards
	u := []Point{{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30}}
	assert.True(t, PointInPolygon(Pt(5, 20), u))
	assert.True(t, PointInPolygon(Pt(25, 20), u))
	assert.False(t, PointInPolygon(Pt(15, 20), u))
	assert.True(t, PointInPolygon(Pt(15, 5), u))
}

func TestBounds(t *testing.T) {
	b := Bounds([]Point{{3, 4}, {-1, 8}, {2, 0}})
	assert.Equal(t, Box{Min: Pt(-1, 0), Max: Pt(3, 8)}, b)
	assert.True(t, b.Contains(Pt(0, 0)))
	assert.False(t, b.Contains(Pt(4, 1)))
	assert.False(t, Bounds(nil).Contains(Pt(0, 0)))
}
