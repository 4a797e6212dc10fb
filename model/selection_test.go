// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionClone(t *testing.T) {
	s := Selection{Lassos: []LassoSelection{{Curve: "a", Lasso: "l1", Indices: []int{1, 2}}}}
	c := s.Clone()
	assert.Equal(t, s, c)
	c.Lassos[0].Indices[0] = 9
	assert.Equal(t, 1, s.Lassos[0].Indices[0])
}

func TestSelectionLassos(t *testing.T) {
	s := IndexSelection(3)
	assert.False(t, s.IsEmpty())

	s = s.WithLasso("l1", []LassoSelection{{Curve: "a", Indices: []int{0, 1}}, {Curve: "b", Indices: []int{2}}})
	assert.Nil(t, s.Indices)
	assert.NotEmpty(t, s.Lassos)
	assert.Len(t, s.Lasso("l1"), 2)
	assert.Equal(t, "l1", s.Lassos[1].Lasso)

	s = s.WithLasso("l2", []LassoSelection{{Curve: "a", Indices: []int{4}}})
	s = s.WithLasso("l1", []LassoSelection{{Curve: "b", Indices: []int{5}}})
	assert.Equal(t, []LassoSelection{
		{Curve: "a", Lasso: "l2", Indices: []int{4}},
		{Curve: "b", Lasso: "l1", Indices: []int{5}},
	}, s.Lassos)

	s = s.WithoutLasso("l1")
	assert.Equal(t, []LassoSelection{{Curve: "a", Lasso: "l2", Indices: []int{4}}}, s.Lassos)
	s = s.WithoutLasso("l2")
	assert.True(t, s.IsEmpty())
}

func TestSelector(t *testing.T) {
	var sl Selector
	changes, touches := 0, 0
	sl.OnChange(func() { changes++ })
	remove := sl.OnTouch(func() { touches++ })
	sl.SetBounds([2]Bound{{Value: 1, Text: "a"}, {Value: 2, Text: "b"}})
	sl.Touch()
	remove()
	sl.Touch()
	assert.Equal(t, 1, changes)
	assert.Equal(t, 1, touches)
	assert.Equal(t, 2, sl.Touches())
	assert.Equal(t, "b", sl.Bounds()[1].Text)
}
