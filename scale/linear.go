// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/lines/events"
)

// LinearScale is a continuous linear scale.
type LinearScale struct {
	Base

	// Domain is the data space interval.
	Domain [2]float64

	// Range is the pixel space interval.
	Range [2]float64

	// Clamp restricts mapped and inverted values to the range and domain.
	Clamp bool
}

// NewLinear returns a linear scale with the given domain and a unit range.
func NewLinear(lo, hi float64) *LinearScale {
	return &LinearScale{Domain: [2]float64{lo, hi}, Range: [2]float64{0, 1}}
}

// SetDomain sets the domain, notifying [events.DomainChanged] listeners
// if it changed.
func (ls *LinearScale) SetDomain(lo, hi float64) {
	if ls.Domain == [2]float64{lo, hi} {
		return
	}
	ls.Domain = [2]float64{lo, hi}
	ls.Send(events.DomainChanged, ls)
}

func (ls *LinearScale) SetRange(lo, hi float64) {
	ls.Range = [2]float64{lo, hi}
}

func (ls *LinearScale) Offset() float64 { return 0 }

func (ls *LinearScale) Type() Types { return Linear }

func (ls *LinearScale) Map(v float64) float64 {
	return interpolate(ls.Domain, ls.Range, v, ls.Clamp)
}

func (ls *LinearScale) Invert(px float64) float64 {
	return interpolate(ls.Range, ls.Domain, px, ls.Clamp)
}

// interpolate maps v from interval from to interval to.
// A degenerate from interval maps everything to to[0].
func interpolate(from, to [2]float64, v float64, clamp bool) float64 {
	d := from[1] - from[0]
	if d == 0 {
		return to[0]
	}
	t := (v - from[0]) / d
	if clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return to[0] + t*(to[1]-to[0])
}

// LogScale is a base 10 logarithmic scale. Domain values must be positive.
type LogScale struct {
	LinearScale
}

// NewLog returns a log scale with the given positive domain.
func NewLog(lo, hi float64) *LogScale {
	return &LogScale{LinearScale: *NewLinear(lo, hi)}
}

func (ls *LogScale) Type() Types { return Log }

func (ls *LogScale) logDomain() [2]float64 {
	return [2]float64{math.Log10(ls.Domain[0]), math.Log10(ls.Domain[1])}
}

func (ls *LogScale) Map(v float64) float64 {
	return interpolate(ls.logDomain(), ls.Range, math.Log10(v), ls.Clamp)
}

func (ls *LogScale) Invert(px float64) float64 {
	return math.Pow(10, interpolate(ls.Range, ls.logDomain(), px, ls.Clamp))
}
