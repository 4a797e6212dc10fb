// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/lines/colors"
	"cogentcore.org/lines/events"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Schemes are the named color maps a [ColorMapScale] can use.
var Schemes = map[string]func() palette.ColorMap{
	"SmoothBlueRed":      func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"SmoothGreenPurple":  func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"SmoothPurpleOrange": func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"BlackBody":          moreland.BlackBody,
	"Kindlmann":          moreland.Kindlmann,
}

// DefaultScheme is the scheme of new color map scales.
const DefaultScheme = "SmoothBlueRed"

// ColorMapScale maps a numeric domain onto a continuous color map.
type ColorMapScale struct {
	Base

	// Domain is the data space interval.
	Domain [2]float64

	// Scheme is the name of the color map, a key of [Schemes].
	Scheme string

	cmap   palette.ColorMap
	cmapOf string
}

// NewColorMap returns a color scale over the given domain using [DefaultScheme].
func NewColorMap(lo, hi float64) *ColorMapScale {
	cs := &ColorMapScale{Domain: [2]float64{lo, hi}, Scheme: DefaultScheme}
	cs.SetRange()
	return cs
}

// SetDomain sets the domain, notifying [events.DomainChanged] listeners.
func (cs *ColorMapScale) SetDomain(lo, hi float64) {
	if cs.Domain == [2]float64{lo, hi} {
		return
	}
	cs.Domain = [2]float64{lo, hi}
	cs.Send(events.DomainChanged, cs)
}

// SetScheme changes the color map, notifying [events.RangeChanged] listeners.
func (cs *ColorMapScale) SetScheme(name string) error {
	if _, ok := Schemes[name]; !ok {
		return fmt.Errorf("scale: unknown color scheme %q", name)
	}
	cs.Scheme = name
	cs.SetRange()
	cs.Send(events.RangeChanged, cs)
	return nil
}

// SetRange builds the color map for the current scheme if needed.
// Color scales determine their own output range, so there are no arguments.
func (cs *ColorMapScale) SetRange() {
	if cs.cmap != nil && cs.cmapOf == cs.Scheme {
		return
	}
	mk, ok := Schemes[cs.Scheme]
	if !ok {
		slog.Error("scale: unknown color scheme, using default", "scheme", cs.Scheme)
		mk = Schemes[DefaultScheme]
	}
	cs.cmap = mk()
	cs.cmap.SetMin(0)
	cs.cmap.SetMax(1)
	cs.cmapOf = cs.Scheme
}

func (cs *ColorMapScale) Type() Types { return ColorScale }

// Color implements [Color], clamping values outside the domain.
func (cs *ColorMapScale) Color(v float64) string {
	cs.SetRange()
	t := 0.5
	if d := cs.Domain[1] - cs.Domain[0]; d != 0 && !math.IsNaN(v) {
		t = math.Max(0, math.Min(1, (v-cs.Domain[0])/d))
	}
	c, err := cs.cmap.At(t)
	if err != nil {
		slog.Error("scale: color map lookup failed", "value", v, "err", err)
		return colors.None
	}
	return colors.AsHex(c)
}
