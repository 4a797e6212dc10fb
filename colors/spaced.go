// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// SchemeIsDark selects the dark mode variant of [Spaced].
var SchemeIsDark = false

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// This is useful, for example, for assigning colors in graphs.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	toffs := []float64{0, -10, 0, 5, 0, 0, 5, 0}
	tones := []float64{65, 80, 45, 65, 80}
	chromas := []float64{90, 90, 90, 20, 20}
	if SchemeIsDark {
		toffs[3] = 10
	}
	ncats := len(hues)
	hi := idx % ncats
	tci := (idx / ncats) % len(tones)
	tone := toffs[hi] + tones[tci]
	c := colorful.Hcl(hues[hi], chromas[tci]/150, tone/100).Clamped()
	return AsRGBA(c)
}

// SpacedHex returns [Spaced] as a hex string.
func SpacedHex(idx int) string {
	return AsHex(Spaced(idx))
}
