// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Changes are the named property changes that a model or scale
// can announce. Each one identifies the smallest unit of state that
// a view may need to reflect, so that listeners can update only
// the affected visual attributes.
type Changes int32

const (
	// UnknownChange is the zero value.
	UnknownChange Changes = iota

	// Interpolation is sent when the line interpolation mode changes.
	Interpolation

	// ClosePath is sent when path closing is turned on or off.
	ClosePath

	// Colors is sent when the explicit stroke palette changes.
	Colors

	// Fill is sent when the per-curve fill colors change.
	Fill

	// Opacity is sent when the per-curve opacities change.
	Opacity

	// DataUpdated is sent when the curve collection is replaced.
	DataUpdated

	// StrokeWidth is sent when the stroke width changes.
	StrokeWidth

	// LabelsVisibility is sent when the label / legend visibility mode changes.
	LabelsVisibility

	// LineStyle is sent when the dash style changes.
	LineStyle

	// CurvesSubset is sent when the exclusive subset of shown curves changes.
	CurvesSubset

	// Labels is sent when the curve display names change.
	Labels

	// Selected is sent when the selection state changes.
	Selected

	// DomainChanged is sent by a scale when its domain changes.
	DomainChanged

	// RangeChanged is sent by a color scale when its output range changes.
	RangeChanged

	// Touched is sent when a mutation is committed as externally visible.
	Touched

	changesN
)

var changeNames = [...]string{
	UnknownChange:    "UnknownChange",
	Interpolation:    "Interpolation",
	ClosePath:        "ClosePath",
	Colors:           "Colors",
	Fill:             "Fill",
	Opacity:          "Opacity",
	DataUpdated:      "DataUpdated",
	StrokeWidth:      "StrokeWidth",
	LabelsVisibility: "LabelsVisibility",
	LineStyle:        "LineStyle",
	CurvesSubset:     "CurvesSubset",
	Labels:           "Labels",
	Selected:         "Selected",
	DomainChanged:    "DomainChanged",
	RangeChanged:     "RangeChanged",
	Touched:          "Touched",
}

// String returns the name of the change.
func (i Changes) String() string {
	if i < 0 || i >= changesN {
		return fmt.Sprintf("Changes(%d)", int32(i))
	}
	return changeNames[i]
}

// SetString sets the change from its name, returning an error
// if the name is not a known change.
func (i *Changes) SetString(s string) error {
	for c, nm := range changeNames {
		if nm == s {
			*i = Changes(c)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Changes", s)
}

// ChangesValues returns all known changes, excluding [UnknownChange].
func ChangesValues() []Changes {
	vs := make([]Changes, 0, changesN-1)
	for c := Interpolation; c < changesN; c++ {
		vs = append(vs, c)
	}
	return vs
}
