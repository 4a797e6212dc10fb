// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale defines the scale collaborators used by marks to map
// data values into pixel and color space, together with a few
// reference implementations (linear, log, date and colormap scales).
package scale

import (
	"fmt"

	"cogentcore.org/lines/events"
)

// Types are the declared value types of a scale, which affect how
// values are formatted for display.
type Types int32

const (
	// Linear is a continuous numeric scale.
	Linear Types = iota

	// Log is a continuous logarithmic scale.
	Log

	// Date is a continuous time scale, with values in milliseconds
	// since the Unix epoch.
	Date

	// ColorScale maps values to colors.
	ColorScale
)

var typeNames = [...]string{"linear", "log", "date", "color"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// Positional is a scale mapping data values along an axis to pixels.
type Positional interface {
	// Map maps a data value to pixel space.
	Map(v float64) float64

	// Invert maps a pixel position back to data space.
	Invert(px float64) float64

	// SetRange sets the output pixel range.
	SetRange(lo, hi float64)

	// Offset is added to mapped values, for example to center
	// values within an ordinal band.
	Offset() float64

	// Type returns the declared value type.
	Type() Types
}

// Color is a scale mapping data values to colors.
type Color interface {
	// Color returns the CSS color for the given value.
	Color(v float64) string

	// SetRange lets the scale establish its own output range.
	SetRange()
}

// DateFormatter is implemented by scales that can format values
// as human readable dates.
type DateFormatter interface {
	FormatDate(v float64) string
}

// Notifier is implemented by scales that announce changes
// to their domain or range.
type Notifier interface {
	// OnChange registers fun to be called when the given change happens,
	// returning a function that unregisters it.
	OnChange(ch events.Changes, fun func()) (remove func())
}

// Base provides change notification for scale implementations.
type Base struct {
	listeners events.Listeners
}

// OnChange implements [Notifier].
func (b *Base) OnChange(ch events.Changes, fun func()) func() {
	return b.listeners.Add(ch, func(ev *events.Event) { fun() })
}

// Send notifies listeners of the given change.
func (b *Base) Send(ch events.Changes, src any) {
	b.listeners.Send(ch, src)
}
