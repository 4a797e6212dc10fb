// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color palettes for assigning default
// colors to plot elements, and parsing of CSS style color strings.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// None is the CSS value for no paint.
const None = "none"

// Parse parses a CSS color string: a #rgb or #rrggbb hex value
// or a named color. The value "none" is reported as a transparent color.
func Parse(s string) (color.RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == None:
		return color.RGBA{}, nil
	case strings.HasPrefix(str, "#"):
		c, err := colorful.Hex(str)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.Parse: invalid hex color %q: %w", s, err)
		}
		return AsRGBA(c), nil
	}
	if c, ok := colornames.Map[str]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("colors.Parse: unknown color %q", s)
}

// Valid returns an error if the given string is not a parseable color.
func Valid(s string) error {
	_, err := Parse(s)
	return err
}

// AsRGBA returns the given color as an opaque-aware [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if rc, ok := c.(color.RGBA); ok {
		return rc
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// AsHex returns the #rrggbb hex string for the given color,
// ignoring alpha.
func AsHex(c color.Color) string {
	rc := AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rc.R, rc.G, rc.B)
}
