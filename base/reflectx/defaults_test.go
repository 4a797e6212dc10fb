// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Count int `default:"4"`
}

type settings struct {
	Name    string        `default:"lines"`
	Width   float64       `default:"2.5"`
	On      bool          `default:"true"`
	Size    uint8         `default:"12"`
	Wait    time.Duration `default:"250ms"`
	Inner   inner
	Keep    string
	private int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	s := &settings{Keep: "x"}
	assert.NoError(t, SetFromDefaultTags(s))
	assert.Equal(t, "lines", s.Name)
	assert.Equal(t, 2.5, s.Width)
	assert.True(t, s.On)
	assert.Equal(t, uint8(12), s.Size)
	assert.Equal(t, 250*time.Millisecond, s.Wait)
	assert.Equal(t, 4, s.Inner.Count)
	assert.Equal(t, "x", s.Keep)
	assert.Equal(t, 0, s.private)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(&[]int{}))
}

func TestSetFromDefaultTagsError(t *testing.T) {
	type bad struct {
		N int     `default:"many"`
		F float64 `default:"1"`
	}
	b := &bad{}
	assert.Error(t, SetFromDefaultTags(b))
	assert.Equal(t, 1.0, b.F, "valid fields are still set")
}
