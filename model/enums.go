// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLineStyle is returned for line style names that are not
	// one of solid, dashed or dotted.
	ErrUnknownLineStyle = errors.New("model: unknown line style")

	// ErrUnknownLabelsVisibility is returned for visibility mode names that
	// are not one of none, label or legend.
	ErrUnknownLabelsVisibility = errors.New("model: unknown labels visibility")
)

// LineStyles are the dash styles of curve strokes.
type LineStyles int32

const (
	// Solid is an undashed line.
	Solid LineStyles = iota

	// Dashed is a line of long dashes.
	Dashed

	// Dotted is a line of short dots.
	Dotted

	lineStylesN
)

var lineStyleNames = [...]string{"solid", "dashed", "dotted"}

func (ls LineStyles) String() string {
	if !ls.IsValid() {
		return fmt.Sprintf("LineStyles(%d)", int32(ls))
	}
	return lineStyleNames[ls]
}

// IsValid returns whether ls is a known line style.
func (ls LineStyles) IsValid() bool {
	return ls >= 0 && ls < lineStylesN
}

// SetString sets the line style from its name.
func (ls *LineStyles) SetString(s string) error {
	for i, nm := range lineStyleNames {
		if nm == s {
			*ls = LineStyles(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownLineStyle, s)
}

func (ls LineStyles) MarshalText() ([]byte, error) { return []byte(ls.String()), nil }

func (ls *LineStyles) UnmarshalText(text []byte) error { return ls.SetString(string(text)) }

// DashArray returns the stroke-dasharray value for the style.
// Invalid styles are a programming error and return an error
// rather than silently drawing a solid line.
func (ls LineStyles) DashArray() (string, error) {
	switch ls {
	case Solid:
		return "none", nil
	case Dashed:
		return "10,10", nil
	case Dotted:
		return "2,10", nil
	}
	return "", fmt.Errorf("%w %d", ErrUnknownLineStyle, int32(ls))
}

// LabelsVisibilities select whether curves are named by end of line
// labels, by the legend, or not at all.
type LabelsVisibilities int32

const (
	// LabelsLegend shows the legend and hides end of line labels. This is the default.
	LabelsLegend LabelsVisibilities = iota

	// LabelsNone hides both the legend and end of line labels.
	LabelsNone

	// LabelsLabel shows end of line labels and hides the legend.
	LabelsLabel

	labelsVisibilitiesN
)

var labelsVisibilityNames = [...]string{"legend", "none", "label"}

func (lv LabelsVisibilities) String() string {
	if !lv.IsValid() {
		return fmt.Sprintf("LabelsVisibilities(%d)", int32(lv))
	}
	return labelsVisibilityNames[lv]
}

// IsValid returns whether lv is a known visibility mode.
func (lv LabelsVisibilities) IsValid() bool {
	return lv >= 0 && lv < labelsVisibilitiesN
}

// SetString sets the visibility mode from its name.
func (lv *LabelsVisibilities) SetString(s string) error {
	for i, nm := range labelsVisibilityNames {
		if nm == s {
			*lv = LabelsVisibilities(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownLabelsVisibility, s)
}

func (lv LabelsVisibilities) MarshalText() ([]byte, error) { return []byte(lv.String()), nil }

func (lv *LabelsVisibilities) UnmarshalText(text []byte) error { return lv.SetString(string(text)) }

// ShowLabels returns whether end of line labels are shown.
func (lv LabelsVisibilities) ShowLabels() bool {
	return lv == LabelsLabel
}

// ShowLegend returns whether legend rows are shown.
func (lv LabelsVisibilities) ShowLegend() bool {
	return lv == LabelsLegend
}
