// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"time"

	"cogentcore.org/lines/events"
)

// DefaultDateLayout is the layout used by [DateScale] when none is set.
const DefaultDateLayout = "2006-01-02"

// DateScale is a linear time scale. Data values are milliseconds
// since the Unix epoch.
type DateScale struct {
	LinearScale

	// Layout is the [time] layout used by FormatDate.
	Layout string

	// Location is the time zone used by FormatDate; UTC if nil.
	Location *time.Location
}

// NewDate returns a date scale spanning the given times.
func NewDate(from, to time.Time) *DateScale {
	return &DateScale{LinearScale: *NewLinear(Millis(from), Millis(to)), Layout: DefaultDateLayout}
}

// Millis returns t as milliseconds since the Unix epoch, the data
// space unit of date scales.
func Millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Time returns the time for the given data value.
func (ds *DateScale) Time(v float64) time.Time {
	loc := ds.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(int64(v)).In(loc)
}

// SetDomainTimes sets the domain to the given times.
func (ds *DateScale) SetDomainTimes(from, to time.Time) {
	ds.SetDomain(Millis(from), Millis(to))
}

func (ds *DateScale) Type() Types { return Date }

// FormatDate implements [DateFormatter].
func (ds *DateScale) FormatDate(v float64) string {
	layout := ds.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return ds.Time(v).Format(layout)
}

// SetLayout sets the format layout, which is part of the scale range
// as seen by listeners.
func (ds *DateScale) SetLayout(layout string) {
	ds.Layout = layout
	ds.Send(events.RangeChanged, ds)
}
