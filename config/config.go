// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of line marks:
// the presentation constants of labels, legends and legend toggling,
// with defaults that can be overridden from a TOML file.
package config

import (
	"fmt"
	"os"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/base/reflectx"
	"github.com/pelletier/go-toml/v2"
)

// Config contains the presentation constants used by a line mark.
type Config struct {

	// DimOpacity is the opacity of a curve toggled off from the legend.
	DimOpacity float64 `toml:"dim_opacity" default:"0.1"`

	// LegendBoost is added to the opacity of a toggled legend row,
	// so that the row stays more visible than its curve.
	// The sum is not clamped to 1.
	LegendBoost float64 `toml:"legend_boost" default:"0.4"`

	// LabelX is the x offset of end of line labels from the last point.
	LabelX float64 `toml:"label_x" default:"3"`

	// LabelDy is the vertical text offset of end of line labels.
	LabelDy string `toml:"label_dy" default:".35em"`

	// SwatchFactor is the size of a legend swatch relative to the row height.
	SwatchFactor float64 `toml:"swatch_factor" default:"0.8"`

	// TextFactor is the x position of legend text relative to the swatch size.
	TextFactor float64 `toml:"text_factor" default:"1.2"`

	// DarkPalette selects the dark variant of the spaced default palette.
	DarkPalette bool `toml:"dark_palette"`
}

// Defaults sets the default values from the `default:` field tags.
// Errors are logged.
func (c *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// New returns a new Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Validate returns an error for values that cannot be rendered.
func (c *Config) Validate() error {
	if c.DimOpacity < 0 || c.DimOpacity > 1 {
		return fmt.Errorf("config: dim_opacity %g out of [0, 1]", c.DimOpacity)
	}
	if c.SwatchFactor <= 0 {
		return fmt.Errorf("config: swatch_factor must be positive, got %g", c.SwatchFactor)
	}
	return nil
}

// Open returns the configuration in the given TOML file,
// with defaults for any values it does not set.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := New()
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}
