// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"slices"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/events"
	"github.com/jinzhu/copier"
)

// LassoSelection is the set of points of one curve inside one lasso.
type LassoSelection struct {
	// Curve is the name of the curve.
	Curve string `yaml:"curve" toml:"curve"`

	// Lasso is the identity of the lasso.
	Lasso string `yaml:"lasso" toml:"lasso"`

	// Indices are the indices of the selected points, in increasing order.
	Indices []int `yaml:"indices" toml:"indices"`
}

// Selection is the shared selection state of a mark. It holds either
// point indices, set by point and range selection, or lasso entries,
// never both: setting one shape clears the other.
type Selection struct {
	// Indices is a single point index or a [start, end] index pair.
	Indices []int `yaml:"indices,omitempty" toml:"indices,omitempty"`

	// Lassos are the per curve, per lasso selected indices.
	Lassos []LassoSelection `yaml:"lassos,omitempty" toml:"lassos,omitempty"`
}

// IndexSelection returns a selection of the given point indices.
func IndexSelection(idx ...int) Selection {
	return Selection{Indices: idx}
}

// IsEmpty returns whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.Indices) == 0 && len(s.Lassos) == 0
}

// Clone returns a deep copy of s. Empty slices are nil in the copy.
func (s Selection) Clone() Selection {
	var c Selection
	errors.Log(copier.CopyWithOption(&c, &s, copier.Option{DeepCopy: true}))
	if len(c.Indices) == 0 {
		c.Indices = nil
	}
	if len(c.Lassos) == 0 {
		c.Lassos = nil
	}
	return c
}

// WithoutLasso returns a copy of s with every entry of the given
// lasso removed. Entries of other lassos are kept in order.
func (s Selection) WithoutLasso(lasso string) Selection {
	var out []LassoSelection
	for _, ls := range s.Lassos {
		if ls.Lasso != lasso {
			out = append(out, ls)
		}
	}
	return Selection{Lassos: out}
}

// WithLasso returns a copy of s where the entries of the given lasso
// are replaced by entries. Entries of other lassos are kept.
func (s Selection) WithLasso(lasso string, entries []LassoSelection) Selection {
	out := s.WithoutLasso(lasso)
	for _, e := range entries {
		e.Lasso = lasso
		e.Indices = slices.Clone(e.Indices)
		out.Lassos = append(out.Lassos, e)
	}
	return out
}

// Lasso returns the entries of the given lasso.
func (s Selection) Lasso(lasso string) []LassoSelection {
	var out []LassoSelection
	for _, ls := range s.Lassos {
		if ls.Lasso == lasso {
			out = append(out, ls)
		}
	}
	return out
}

// Bound is one end of a brush selector, as a data value and
// its human readable form.
type Bound struct {
	Value float64 `yaml:"value" toml:"value"`

	// Text is the formatted value, set for date axes.
	Text string `yaml:"text,omitempty" toml:"text,omitempty"`
}

// Selector is the state of an external brush selector linked to a mark.
// It has its own change signal and touch, separate from those of the
// mark model.
type Selector struct {
	bounds    [2]Bound
	listeners events.Listeners
	touches   int
}

// Bounds returns the selected extent.
func (sl *Selector) Bounds() [2]Bound {
	return sl.bounds
}

// SetBounds sets the selected extent and announces it
// with a [events.Selected] change.
func (sl *Selector) SetBounds(b [2]Bound) {
	sl.bounds = b
	sl.listeners.Send(events.Selected, sl)
}

// OnChange registers fun to be called when the bounds change.
func (sl *Selector) OnChange(fun func()) (remove func()) {
	return sl.listeners.Add(events.Selected, func(ev *events.Event) { fun() })
}

// OnTouch registers fun to be called on each [Selector.Touch].
func (sl *Selector) OnTouch(fun func()) (remove func()) {
	return sl.listeners.Add(events.Touched, func(ev *events.Event) { fun() })
}

// Touch marks the current bounds as externally visible.
func (sl *Selector) Touch() {
	sl.touches++
	sl.listeners.Send(events.Touched, sl)
}

// Touches returns the number of times the selector has been touched.
func (sl *Selector) Touches() int {
	return sl.touches
}
