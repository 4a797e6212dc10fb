// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var numberRE = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// CubicInOut is the default easing: symmetric cubic acceleration
// and deceleration over t in [0, 1].
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// split separates s into the text around numbers and the numbers themselves.
func split(s string) (text []string, nums []float64) {
	last := 0
	for _, loc := range numberRE.FindAllStringIndex(s, -1) {
		v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		text = append(text, s[last:loc[0]])
		nums = append(nums, v)
		last = loc[1]
	}
	text = append(text, s[last:])
	return
}

// Strings returns an interpolator between two strings that share
// the same structure apart from embedded numbers, such as two path
// data strings with the same commands. Strings with different
// structure cannot be interpolated and jump straight to the end value.
func Strings(from, to string) func(t float64) string {
	ft, fn := split(from)
	tt, tn := split(to)
	if !slices.Equal(ft, tt) {
		return func(t float64) string { return to }
	}
	return func(t float64) string {
		var b strings.Builder
		for i, txt := range tt {
			b.WriteString(txt)
			if i < len(tn) {
				v := fn[i] + t*(tn[i]-fn[i])
				b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		return b.String()
	}
}
