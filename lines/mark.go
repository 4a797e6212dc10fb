// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides a multi-curve line mark: it keeps a set of
// rendered curves in a [scene] tree synchronized with a [model.Lines],
// reacting to each model change with the smallest visual update,
// and inverts pixel positions, ranges and lasso polygons back into
// selected data indices.
package lines

import (
	"log/slog"
	"strconv"

	"cogentcore.org/lines/anim"
	"cogentcore.org/lines/config"
	"cogentcore.org/lines/linegen"
	"cogentcore.org/lines/model"
	"cogentcore.org/lines/scale"
	"cogentcore.org/lines/scene"
	"github.com/google/uuid"
)

// Host is the drawing surface a mark renders into.
type Host interface {
	// PaddedRange returns the pixel range of the given axis, "x" or "y",
	// for the given scale, after padding.
	PaddedRange(axis string, sc scale.Positional) (lo, hi float64)

	// Root returns the node under which marks add their elements.
	Root() *scene.Node
}

// Scales are the scales bound to a mark. X and Y are required;
// Color is optional.
type Scales struct {
	X, Y  scale.Positional
	Color scale.Color
}

// Padding is the pixel padding a mark needs on each axis.
type Padding struct {
	X, Y float64
}

// Mark is a multi-curve line mark. It must only be used from one
// goroutine, the same one that changes its model and scales.
type Mark struct {

	// ID is the unique identifier of the mark, used to name its legend rows.
	ID string

	// Model is the data model of the mark.
	Model *model.Lines

	// Scales are the bound scales.
	Scales Scales

	// Config holds the presentation constants.
	Config *config.Config

	// Anim realizes transitions; [anim.Immediate] by default.
	Anim anim.Driver

	host Host

	// el is the group holding the curves, nil until [Mark.Render].
	el *scene.Node

	curves []*curve
	legend legend

	// toggles are the opacity factors of curves toggled from the
	// legend, by curve key. Curves not in the map have factor 1.
	toggles map[string]float64

	line linegen.Line[model.Point]

	removes []func()
}

// Option configures a [Mark].
type Option func(mk *Mark)

// WithConfig sets the presentation constants.
func WithConfig(c *config.Config) Option {
	return func(mk *Mark) { mk.Config = c }
}

// WithAnimator sets the animation driver.
func WithAnimator(d anim.Driver) Option {
	return func(mk *Mark) { mk.Anim = d }
}

// WithID sets the mark identifier instead of a random one.
func WithID(id string) Option {
	return func(mk *Mark) { mk.ID = id }
}

// New returns a new mark drawing m into host through the given scales.
// It subscribes to the changes of m and of the scales;
// call [Mark.Render] to draw it and [Mark.Close] to unsubscribe.
func New(host Host, m *model.Lines, sc Scales, opts ...Option) *Mark {
	mk := &Mark{
		ID:      uuid.NewString(),
		Model:   m,
		Scales:  sc,
		Config:  config.New(),
		Anim:    anim.Immediate{},
		host:    host,
		toggles: map[string]float64{},
	}
	for _, opt := range opts {
		opt(mk)
	}
	mk.listenModel()
	mk.listenScales()
	return mk
}

// Render attaches the mark to the host surface and draws it.
func (mk *Mark) Render() {
	root := mk.host.Root()
	switch {
	case mk.el == nil:
		mk.el = root.Append("g", "mark lines")
		mk.el.SetAttr("id", "mark"+mk.ID)
	case !mk.el.Attached(root):
		root.AppendChild(mk.el)
	}
	mk.recoverFrame("render", (*Mark).Draw)
}

// Node returns the group holding the curves, nil before [Mark.Render].
func (mk *Mark) Node() *scene.Node {
	return mk.el
}

// ViewPadding returns the padding needed so that strokes at the
// domain boundaries are not clipped: half the stroke width.
func (mk *Mark) ViewPadding() Padding {
	p := mk.Model.StrokeWidth / 2
	return Padding{X: p, Y: p}
}

// Close unsubscribes the mark from its model and scales, and
// detaches its elements.
func (mk *Mark) Close() {
	for _, rm := range mk.removes {
		rm()
	}
	mk.removes = nil
	for _, c := range mk.curves {
		mk.Anim.Cancel(c.path)
		mk.Anim.Cancel(c.group)
	}
	if mk.el != nil {
		mk.el.Remove()
		mk.el = nil
	}
	for _, r := range mk.legend.rows {
		r.g.Remove()
	}
	mk.curves = nil
	mk.legend = legend{}
	slog.Debug("lines: closed mark", "mark", mk.ID)
}

// num formats a number for an attribute value.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
