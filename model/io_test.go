// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/lines/linegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlModel = `
curves:
  - name: a
    x: [0, 1, 2, 3]
    y: [1, 2, null, 4]
  - name: b
    x: [0, 1, 2, 3]
    y: [4, 3, 2, 1]
    color: [0.5, null, null, null]
labels: [Alpha]
fill: [red]
stroke_width: 3
animate_duration: 250ms
interpolation: monotone
line_style: dashed
labels_visibility: label
curves_subset: [0, 1]
`

const tomlModel = `
labels = ["Alpha"]
close_path = true
interpolation = "step"

[[curves]]
name = "a"
x = [0.0, 1.0, 2.0]
y = [1.0, nan, 3.0]
`

func TestReadYAML(t *testing.T) {
	ln, err := Read(strings.NewReader(yamlModel), ".yaml")
	require.NoError(t, err)
	require.Len(t, ln.Curves, 2)
	assert.False(t, ln.Curves[0].Points[2].Defined())
	assert.Equal(t, 4.0, ln.Curves[0].Points[3].Y)
	v, ok := ln.Curves[1].ColorValue()
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 3.0, ln.StrokeWidth)
	assert.Equal(t, 250*time.Millisecond, ln.AnimateDuration)
	assert.Equal(t, linegen.Monotone, ln.Interpolation)
	assert.Equal(t, Dashed, ln.LineStyle)
	assert.Equal(t, LabelsLabel, ln.LabelsVisibility)
	assert.Equal(t, []int{0, 1}, ln.CurvesSubset)
	assert.Equal(t, "Alpha", ln.DisplayName(0))
	assert.Equal(t, "b", ln.DisplayName(1))
}

func TestReadTOML(t *testing.T) {
	ln, err := Read(strings.NewReader(tomlModel), ".toml")
	require.NoError(t, err)
	require.Len(t, ln.Curves, 1)
	assert.True(t, math.IsNaN(ln.Curves[0].Points[1].Y))
	assert.True(t, ln.ClosePath)
	assert.Equal(t, linegen.Step, ln.Interpolation)
	assert.Equal(t, float64(DefaultStrokeWidth), ln.StrokeWidth)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("line_style: wavy\n"), ".yaml")
	assert.ErrorIs(t, err, ErrUnknownLineStyle)
	_, err = Read(strings.NewReader("labels_visibility: all\n"), ".yml")
	assert.ErrorIs(t, err, ErrUnknownLabelsVisibility)
	_, err = Read(strings.NewReader("interpolation: spline\n"), ".yaml")
	assert.ErrorIs(t, err, linegen.ErrUnknownInterpolation)
	_, err = Read(strings.NewReader(""), ".json")
	assert.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			ln, err := Read(strings.NewReader(yamlModel), ".yaml")
			require.NoError(t, err)
			ln.Curves[0].Color = 0.25
			var b bytes.Buffer
			require.NoError(t, Write(&b, ln, ext))

			fn := filepath.Join(t.TempDir(), "model"+ext)
			require.NoError(t, os.WriteFile(fn, b.Bytes(), 0o666))
			got, err := Open(fn)
			require.NoError(t, err)

			require.Len(t, got.Curves, 2)
			assert.False(t, got.Curves[0].Points[2].Defined())
			assert.Equal(t, ln.Curves[1].Points[0], got.Curves[1].Points[0])
			assert.Equal(t, ln.Labels, got.Labels)
			assert.Equal(t, ln.Interpolation, got.Interpolation)
			assert.Equal(t, ln.LineStyle, got.LineStyle)
			assert.Equal(t, ln.AnimateDuration, got.AnimateDuration)

			v, ok := got.Curves[0].ColorValue()
			assert.True(t, ok)
			assert.Equal(t, 0.25, v)
			assert.True(t, math.IsNaN(got.Curves[1].Color))
			v, ok = got.Curves[1].ColorValue()
			assert.True(t, ok)
			assert.Equal(t, 0.5, v)
		})
	}
}
