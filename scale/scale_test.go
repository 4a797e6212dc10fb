// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"
	"time"

	"cogentcore.org/lines/events"
	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	ls := NewLinear(0, 4)
	ls.SetRange(0, 100)
	assert.Equal(t, 50.0, ls.Map(2))
	assert.Equal(t, 2.0, ls.Invert(50))
	assert.Equal(t, -25.0, ls.Map(-1))
	ls.Clamp = true
	assert.Equal(t, 0.0, ls.Map(-1))
	assert.Equal(t, 4.0, ls.Invert(1000))

	// inverted pixel range, as used for y axes
	ls.Clamp = false
	ls.SetRange(100, 0)
	assert.Equal(t, 75.0, ls.Map(1))
	assert.Equal(t, 1.0, ls.Invert(75))

	deg := NewLinear(3, 3)
	deg.SetRange(10, 20)
	assert.Equal(t, 10.0, deg.Map(3))
}

func TestDomainChanged(t *testing.T) {
	ls := NewLinear(0, 1)
	n := 0
	rm := ls.OnChange(events.DomainChanged, func() { n++ })
	ls.SetDomain(0, 2)
	ls.SetDomain(0, 2)
	assert.Equal(t, 1, n)
	rm()
	ls.SetDomain(0, 3)
	assert.Equal(t, 1, n)
}

func TestLog(t *testing.T) {
	ls := NewLog(1, 1000)
	ls.SetRange(0, 300)
	assert.InDelta(t, 100.0, ls.Map(10), 1e-9)
	assert.InDelta(t, 100.0, ls.Invert(200), 1e-9)
	assert.Equal(t, Log, ls.Type())
}

func TestDate(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.AddDate(0, 0, 10)
	ds := NewDate(t0, t1)
	ds.SetRange(0, 100)
	assert.Equal(t, Date, ds.Type())
	mid := ds.Invert(50)
	assert.Equal(t, "2024-01-06", ds.FormatDate(mid))
	assert.Equal(t, 50.0, ds.Map(Millis(t0.AddDate(0, 0, 5))))

	var pos Positional = ds
	_, ok := pos.(DateFormatter)
	assert.True(t, ok)
	_, ok = Positional(NewLinear(0, 1)).(DateFormatter)
	assert.False(t, ok)
}

func TestColorMap(t *testing.T) {
	cs := NewColorMap(0, 10)
	lo, hi := cs.Color(0), cs.Color(10)
	assert.NotEqual(t, lo, hi)
	assert.Equal(t, lo, cs.Color(-5), "values are clamped to the domain")
	assert.Equal(t, hi, cs.Color(50))
	assert.Len(t, lo, 7)

	n := 0
	cs.OnChange(events.RangeChanged, func() { n++ })
	assert.NoError(t, cs.SetScheme("Kindlmann"))
	assert.Equal(t, 1, n)
	assert.Error(t, cs.SetScheme("Nope"))
	assert.Equal(t, 1, n)
}

func TestColorMapSchemes(t *testing.T) {
	for name := range Schemes {
		t.Run(name, func(t *testing.T) {
			cs := NewColorMap(0, 1)
			assert.NoError(t, cs.SetScheme(name))
			assert.NotEqual(t, cs.Color(0), cs.Color(1))
		})
	}
}
