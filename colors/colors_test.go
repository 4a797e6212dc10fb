// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{" Blue ", color.RGBA{0, 0, 255, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"none", color.RGBA{}},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
	_, err := Parse("notacolor")
	assert.Error(t, err)
	_, err = Parse("#12")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#1f77b4", AsHex(color.RGBA{0x1f, 0x77, 0xb4, 0xff}))
	for _, h := range []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"} {
		c, err := Parse(h)
		require.NoError(t, err)
		assert.Equal(t, h, AsHex(c))
	}
}

func TestSpaced(t *testing.T) {
	seen := map[string]bool{}
	for i := range 16 {
		h := SpacedHex(i)
		assert.False(t, seen[h], "duplicate spaced color %d: %s", i, h)
		seen[h] = true
		assert.Equal(t, uint8(255), Spaced(i).A)
	}
	assert.Equal(t, Spaced(3), Spaced(3))
}
