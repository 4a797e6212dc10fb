// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"cogentcore.org/lines/events"
	"cogentcore.org/lines/scale"
)

// BindRanges sets the pixel ranges of the x and y scales to the padded
// ranges of the host, and lets the color scale set its own range.
// It is called before any geometry or inversion computation.
func (mk *Mark) BindRanges() {
	if x := mk.Scales.X; x != nil {
		x.SetRange(mk.host.PaddedRange("x", x))
	}
	if y := mk.Scales.Y; y != nil {
		y.SetRange(mk.host.PaddedRange("y", y))
	}
	if c := mk.Scales.Color; c != nil {
		c.SetRange()
	}
}

// listenScales redraws on positional domain changes, unless the
// model is dirty, and recolors on color domain or range changes.
func (mk *Mark) listenScales() {
	for _, sc := range []scale.Positional{mk.Scales.X, mk.Scales.Y} {
		n, ok := sc.(scale.Notifier)
		if !ok {
			continue
		}
		mk.removes = append(mk.removes, n.OnChange(events.DomainChanged, func() {
			if mk.Model.Dirty {
				return
			}
			mk.recoverFrame("domain", (*Mark).Draw)
		}))
	}
	n, ok := mk.Scales.Color.(scale.Notifier)
	if !ok {
		return
	}
	for _, ch := range []events.Changes{events.DomainChanged, events.RangeChanged} {
		mk.removes = append(mk.removes, n.OnChange(ch, func() {
			mk.recoverFrame("color", (*Mark).ApplyColors)
		}))
	}
}
