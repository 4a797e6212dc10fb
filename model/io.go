// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CurveFile is the file form of a curve. Y and color values may be
// null in YAML and nan in TOML.
type CurveFile struct {
	Name  string     `yaml:"name" toml:"name"`
	X     []float64  `yaml:"x" toml:"x"`
	Y     []*float64 `yaml:"y" toml:"y"`
	Color []*float64 `yaml:"color,omitempty" toml:"color,omitempty"`

	// CurveColor is the color value of the whole curve.
	CurveColor *float64 `yaml:"curve_color,omitempty" toml:"curve_color,omitempty"`
}

// File is the file form of a [Lines] model.
type File struct {
	Curves           []CurveFile `yaml:"curves" toml:"curves"`
	Labels           []string    `yaml:"labels,omitempty" toml:"labels,omitempty"`
	Colors           []string    `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Fill             []string    `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Opacity          []float64   `yaml:"opacity,omitempty" toml:"opacity,omitempty"`
	StrokeWidth      *float64    `yaml:"stroke_width,omitempty" toml:"stroke_width,omitempty"`
	AnimateDuration  string      `yaml:"animate_duration,omitempty" toml:"animate_duration,omitempty"`
	ClosePath        bool        `yaml:"close_path,omitempty" toml:"close_path,omitempty"`
	Interpolation    string      `yaml:"interpolation,omitempty" toml:"interpolation,omitempty"`
	LineStyle        string      `yaml:"line_style,omitempty" toml:"line_style,omitempty"`
	LabelsVisibility string      `yaml:"labels_visibility,omitempty" toml:"labels_visibility,omitempty"`
	CurvesSubset     []int       `yaml:"curves_subset,omitempty" toml:"curves_subset,omitempty"`
	Selected         Selection   `yaml:"selected,omitempty" toml:"selected,omitempty"`
}

func value(v *float64) float64 {
	if v == nil {
		return Null
	}
	return *v
}

// Curve returns the model curve of cf.
func (cf *CurveFile) Curve() Curve {
	c := Curve{Name: cf.Name, Color: value(cf.CurveColor), Points: make([]Point, len(cf.X))}
	for i, x := range cf.X {
		p := Pt(x, Null)
		if i < len(cf.Y) {
			p.Y = value(cf.Y[i])
		}
		if i < len(cf.Color) {
			p.Color = value(cf.Color[i])
		}
		c.Points[i] = p
	}
	return c
}

// Model returns a new model holding the values of f, validating them
// as the Set methods do.
func (f *File) Model() (*Lines, error) {
	ln := New()
	curves := make([]Curve, len(f.Curves))
	for i := range f.Curves {
		curves[i] = f.Curves[i].Curve()
	}
	ln.Curves = curves
	ln.Labels = f.Labels
	ln.CurvesSubset = f.CurvesSubset
	ln.ClosePath = f.ClosePath
	ln.Selected = f.Selected
	if err := ln.SetColors(f.Colors); err != nil {
		return nil, err
	}
	if err := ln.SetFill(f.Fill); err != nil {
		return nil, err
	}
	if err := ln.SetOpacity(f.Opacity); err != nil {
		return nil, err
	}
	if f.StrokeWidth != nil {
		if err := ln.SetStrokeWidth(*f.StrokeWidth); err != nil {
			return nil, err
		}
	}
	if f.AnimateDuration != "" {
		d, err := time.ParseDuration(f.AnimateDuration)
		if err != nil {
			return nil, fmt.Errorf("model: animate_duration: %w", err)
		}
		ln.SetAnimateDuration(d)
	}
	for _, kv := range [][2]string{
		{"interpolation", f.Interpolation},
		{"line_style", f.LineStyle},
		{"labels_visibility", f.LabelsVisibility},
	} {
		if kv[1] == "" {
			continue
		}
		if err := ln.Set(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return ln, nil
}

func ptr(v float64) *float64 {
	return &v
}

// FileOf returns the file form of ln. Null values are kept as NaN.
func FileOf(ln *Lines) *File {
	f := &File{
		Labels:           ln.Labels,
		Colors:           ln.Colors,
		Fill:             ln.Fill,
		Opacity:          ln.Opacity,
		StrokeWidth:      &ln.StrokeWidth,
		ClosePath:        ln.ClosePath,
		Interpolation:    ln.Interpolation.String(),
		LineStyle:        ln.LineStyle.String(),
		LabelsVisibility: ln.LabelsVisibility.String(),
		CurvesSubset:     ln.CurvesSubset,
		Selected:         ln.Selected.Clone(),
	}
	if ln.AnimateDuration > 0 {
		f.AnimateDuration = ln.AnimateDuration.String()
	}
	for _, c := range ln.Curves {
		cf := CurveFile{Name: c.Name}
		if !math.IsNaN(c.Color) {
			cf.CurveColor = ptr(c.Color)
		}
		hasColor := false
		for _, p := range c.Points {
			hasColor = hasColor || p.HasColor()
		}
		for _, p := range c.Points {
			cf.X = append(cf.X, p.X)
			cf.Y = append(cf.Y, ptr(p.Y))
			if hasColor {
				cf.Color = append(cf.Color, ptr(p.Color))
			}
		}
		f.Curves = append(f.Curves, cf)
	}
	return f
}

// Read reads a model in the format given by the file extension
// ext, which is one of .toml, .yaml or .yml.
func Read(r io.Reader, ext string) (*Lines, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("model: unsupported file format %q", ext)
	}
	return f.Model()
}

// Open reads a model from the given .toml or .yaml file.
func Open(filename string) (*Lines, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ln, err := Read(bytes.NewReader(b), filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ln, nil
}

// Write writes ln in the format given by ext. Undefined values are
// written as nan in TOML and .nan in YAML.
func Write(w io.Writer, ln *Lines, ext string) error {
	f := FileOf(ln)
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.NewEncoder(w).Encode(f)
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("model: unsupported file format %q", ext)
}
