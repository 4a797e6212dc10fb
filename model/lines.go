// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the data model of a multi-curve line mark:
// the ordered curves, their positional style arrays, the closed
// presentation enums, the shared selection state and the change bus
// that views subscribe to.
package model

import (
	"fmt"
	"slices"
	"time"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/colors"
	"cogentcore.org/lines/events"
	"cogentcore.org/lines/linegen"
)

// DefaultStrokeWidth is the stroke width of a new model.
const DefaultStrokeWidth = 2

// Lines is the model of a line mark. Fields may be read directly;
// they should be changed through the Set methods, which validate the
// new value and announce the change to listeners.
type Lines struct {

	// Curves are the curves in z order.
	Curves []Curve

	// Labels are the display names of the curves, by index.
	Labels []string

	// Colors is the explicit stroke palette, cycled by curve index.
	Colors []string

	// Fill are the fill colors of the curves, by index.
	Fill []string

	// Opacity are the opacities of the curves, by index.
	Opacity []float64

	// StrokeWidth is the stroke width of all curves.
	StrokeWidth float64

	// AnimateDuration is the duration of curve transitions.
	AnimateDuration time.Duration

	// ClosePath closes each curve path back to its start.
	ClosePath bool

	// Interpolation is how consecutive points are connected.
	Interpolation linegen.Interpolations

	// LineStyle is the dash style of all curves.
	LineStyle LineStyles

	// LabelsVisibility selects labels, legend or neither.
	LabelsVisibility LabelsVisibilities

	// CurvesSubset are the indices of the curves shown exclusively.
	// Fewer than two indices shows all curves.
	CurvesSubset []int

	// Selected is the current selection.
	Selected Selection

	// Dirty is set while the model is being updated in several steps.
	// Views do not redraw on scale domain changes while it is set.
	Dirty bool

	// Selector is the linked brush selector, if any.
	Selector *Selector

	listeners events.Listeners
	touches   int
}

// New returns a new model with default values.
func New() *Lines {
	return &Lines{StrokeWidth: DefaultStrokeWidth}
}

// OnChange registers fun to be called with the event of each change of
// the given kind, returning a function that unregisters it.
func (ln *Lines) OnChange(ch events.Changes, fun func(ev *events.Event)) (remove func()) {
	return ln.listeners.Add(ch, fun)
}

// OnTouch registers fun to be called on each [Lines.Touch].
func (ln *Lines) OnTouch(fun func()) (remove func()) {
	return ln.listeners.Add(events.Touched, func(ev *events.Event) { fun() })
}

// Send announces a change of the given kind.
func (ln *Lines) Send(ch events.Changes) {
	ln.listeners.Send(ch, ln)
}

// Touch marks the current state as externally visible, for example
// to synchronize it with a host.
func (ln *Lines) Touch() {
	ln.touches++
	ln.Send(events.Touched)
}

// Touches returns the number of times the model has been touched.
func (ln *Lines) Touches() int {
	return ln.touches
}

// SetCurves replaces the curves.
func (ln *Lines) SetCurves(curves []Curve) {
	ln.Curves = curves
	ln.Send(events.DataUpdated)
}

// SetLabels sets the curve display names.
func (ln *Lines) SetLabels(labels []string) {
	ln.Labels = labels
	ln.Send(events.Labels)
}

func validColors(what string, cs []string) error {
	for i, c := range cs {
		if err := colors.Valid(c); err != nil {
			return fmt.Errorf("model: %s[%d]: %w", what, i, err)
		}
	}
	return nil
}

// SetColors sets the stroke palette. It returns an error and leaves
// the palette unchanged if any color is invalid.
func (ln *Lines) SetColors(cs []string) error {
	if err := validColors("colors", cs); err != nil {
		return err
	}
	ln.Colors = cs
	ln.Send(events.Colors)
	return nil
}

// SetFill sets the fill colors. It returns an error and leaves
// the fill colors unchanged if any color is invalid.
func (ln *Lines) SetFill(fill []string) error {
	if err := validColors("fill", fill); err != nil {
		return err
	}
	ln.Fill = fill
	ln.Send(events.Fill)
	return nil
}

// SetOpacity sets the curve opacities.
func (ln *Lines) SetOpacity(op []float64) error {
	for i, o := range op {
		if o < 0 {
			return fmt.Errorf("model: opacity[%d]: negative opacity %g", i, o)
		}
	}
	ln.Opacity = op
	ln.Send(events.Opacity)
	return nil
}

// SetStrokeWidth sets the stroke width.
func (ln *Lines) SetStrokeWidth(w float64) error {
	if w < 0 {
		return fmt.Errorf("model: negative stroke width %g", w)
	}
	ln.StrokeWidth = w
	ln.Send(events.StrokeWidth)
	return nil
}

// SetAnimateDuration sets the transition duration. It takes effect on
// the next transition and is not announced.
func (ln *Lines) SetAnimateDuration(d time.Duration) {
	ln.AnimateDuration = max(d, 0)
}

// SetClosePath turns path closing on or off.
func (ln *Lines) SetClosePath(on bool) {
	ln.ClosePath = on
	ln.Send(events.ClosePath)
}

// SetInterpolation sets the interpolation mode.
func (ln *Lines) SetInterpolation(in linegen.Interpolations) error {
	if !in.IsValid() {
		return fmt.Errorf("%w %d", linegen.ErrUnknownInterpolation, int32(in))
	}
	ln.Interpolation = in
	ln.Send(events.Interpolation)
	return nil
}

// SetLineStyle sets the dash style.
func (ln *Lines) SetLineStyle(ls LineStyles) error {
	if !ls.IsValid() {
		return fmt.Errorf("%w %d", ErrUnknownLineStyle, int32(ls))
	}
	ln.LineStyle = ls
	ln.Send(events.LineStyle)
	return nil
}

// SetLabelsVisibility sets the label and legend visibility mode.
func (ln *Lines) SetLabelsVisibility(lv LabelsVisibilities) error {
	if !lv.IsValid() {
		return fmt.Errorf("%w %d", ErrUnknownLabelsVisibility, int32(lv))
	}
	ln.LabelsVisibility = lv
	ln.Send(events.LabelsVisibility)
	return nil
}

// SetCurvesSubset sets the curves shown exclusively.
func (ln *Lines) SetCurvesSubset(idx []int) {
	ln.CurvesSubset = idx
	ln.Send(events.CurvesSubset)
}

// SetSelected sets the selection.
func (ln *Lines) SetSelected(sel Selection) {
	ln.Selected = sel
	ln.Send(events.Selected)
}

// Set sets the named property from its text form, as used in model
// files and on the command line. Enum values are validated.
func (ln *Lines) Set(name, value string) error {
	switch name {
	case "interpolation":
		var in linegen.Interpolations
		if err := in.SetString(value); err != nil {
			return err
		}
		return ln.SetInterpolation(in)
	case "line_style":
		var ls LineStyles
		if err := ls.SetString(value); err != nil {
			return err
		}
		return ln.SetLineStyle(ls)
	case "labels_visibility":
		var lv LabelsVisibilities
		if err := lv.SetString(value); err != nil {
			return err
		}
		return ln.SetLabelsVisibility(lv)
	case "close_path":
		switch value {
		case "true":
			ln.SetClosePath(true)
		case "false":
			ln.SetClosePath(false)
		default:
			return fmt.Errorf("model: close_path: invalid bool %q", value)
		}
		return nil
	case "stroke_width":
		var w float64
		if _, err := fmt.Sscan(value, &w); err != nil {
			return fmt.Errorf("model: stroke_width: %w", err)
		}
		return ln.SetStrokeWidth(w)
	}
	return errors.New("model: unknown property " + name)
}

// CurveStyle returns the style record of curve i, using positional
// defaults for entries missing from the style arrays.
func (ln *Lines) CurveStyle(i int) CurveStyle {
	st := CurveStyle{Fill: colors.None, Opacity: 1}
	if n := len(ln.Colors); n > 0 {
		st.Stroke = ln.Colors[i%n]
	} else {
		st.Stroke = colors.SpacedHex(i)
	}
	if i < len(ln.Fill) && ln.Fill[i] != "" {
		st.Fill = ln.Fill[i]
	}
	if i < len(ln.Opacity) {
		st.Opacity = ln.Opacity[i]
	}
	return st
}

// DisplayName returns the display name of curve i: its label, else
// its name, else C followed by its one based index.
func (ln *Lines) DisplayName(i int) string {
	if i < len(ln.Labels) && ln.Labels[i] != "" {
		return ln.Labels[i]
	}
	if i < len(ln.Curves) && ln.Curves[i].Name != "" {
		return ln.Curves[i].Name
	}
	return fmt.Sprintf("C%d", i+1)
}

// CurveKey returns the identity of curve i: its name, or
// C followed by its one based index when unnamed.
func (ln *Lines) CurveKey(i int) string {
	return CurveKey(ln.Curves, i)
}

// CurveKey returns the identity of curves[i].
func CurveKey(curves []Curve, i int) string {
	if nm := curves[i].Name; nm != "" {
		return nm
	}
	return fmt.Sprintf("C%d", i+1)
}

// SubsetActive returns whether [Lines.CurvesSubset] restricts the
// shown curves.
func (ln *Lines) SubsetActive() bool {
	return len(ln.CurvesSubset) > 1
}

// CurveShown returns whether curve i is shown given the subset.
func (ln *Lines) CurveShown(i int) bool {
	if !ln.SubsetActive() {
		return true
	}
	return slices.Contains(ln.CurvesSubset, i)
}
