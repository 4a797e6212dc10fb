// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"cogentcore.org/lines/scale"
	"cogentcore.org/lines/scene"
)

// Surface is a [Host] drawing into a fixed size svg element.
// The y axis points down, so y ranges run from bottom to top.
type Surface struct {
	// Width and Height are the size of the plotting area.
	Width, Height float64

	// Padding is reserved at both ends of each axis.
	Padding Padding

	root *scene.Node
}

// NewSurface returns a new surface of the given size.
func NewSurface(width, height float64) *Surface {
	sf := &Surface{Width: width, Height: height}
	sf.root = scene.New("svg", "")
	sf.SetSize(width, height)
	return sf
}

// SetSize sets the size of the surface. Marks need a
// [Mark.Relayout] afterwards.
func (sf *Surface) SetSize(width, height float64) {
	sf.Width, sf.Height = width, height
	sf.root.SetAttr("width", num(width)).SetAttr("height", num(height))
}

// Fit sets the padding to the largest view padding of the marks.
func (sf *Surface) Fit(marks ...*Mark) {
	for _, mk := range marks {
		p := mk.ViewPadding()
		sf.Padding.X = max(sf.Padding.X, p.X)
		sf.Padding.Y = max(sf.Padding.Y, p.Y)
	}
}

func (sf *Surface) PaddedRange(axis string, sc scale.Positional) (lo, hi float64) {
	if axis == "y" {
		return sf.Height - sf.Padding.Y, sf.Padding.Y
	}
	return sf.Padding.X, sf.Width - sf.Padding.X
}

func (sf *Surface) Root() *scene.Node {
	return sf.root
}
