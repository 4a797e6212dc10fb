// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linegen

import (
	"errors"
	"fmt"
)

// ErrUnknownInterpolation is returned when parsing an unknown
// interpolation name.
var ErrUnknownInterpolation = errors.New("linegen: unknown interpolation")

// Interpolations specify how consecutive defined points are connected.
type Interpolations int32

const (
	// Linear connects points with straight lines.
	Linear Interpolations = iota

	// Step connects points by horizontal, vertical, horizontal lines,
	// with the vertical line in the middle of the interval.
	Step

	// StepBefore connects points by vertical then horizontal lines.
	StepBefore

	// StepAfter connects points by horizontal then vertical lines.
	StepAfter

	// Basis draws a cubic B-spline through the points, which
	// only passes through the first and last ones.
	Basis

	// Cardinal draws a cardinal spline passing through every point.
	Cardinal

	// Monotone draws a cubic spline that preserves monotonicity in y.
	Monotone

	interpolationsN
)

var interpolationNames = [...]string{"linear", "step", "step-before", "step-after", "basis", "cardinal", "monotone"}

// String returns the kebab-case name of the interpolation.
func (i Interpolations) String() string {
	if !i.IsValid() {
		return fmt.Sprintf("Interpolations(%d)", int32(i))
	}
	return interpolationNames[i]
}

// IsValid returns whether i is one of the known interpolations.
func (i Interpolations) IsValid() bool {
	return i >= 0 && i < interpolationsN
}

// SetString sets the interpolation from its name.
func (i *Interpolations) SetString(s string) error {
	for v, nm := range interpolationNames {
		if nm == s {
			*i = Interpolations(v)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownInterpolation, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (i Interpolations) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Interpolations) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// InterpolationsValues returns all interpolations.
func InterpolationsValues() []Interpolations {
	vs := make([]Interpolations, interpolationsN)
	for i := range vs {
		vs[i] = Interpolations(i)
	}
	return vs
}
