// Package config holds the tunable constants of the LAF pipeline and a
// loader for overriding them from a TOML file, mirroring the way the
// teacher's pkg/deps manifest readers use github.com/BurntSushi/toml for
// their own config formats.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
)

// Config holds every pipeline option named in spec.md §6. Zero value is not
// meaningful; use Default to get the reference constants.
type Config struct {
	IconWidth               float64 `toml:"icon_width"`
	MinHorizontalGap        float64 `toml:"min_horizontal_gap"`
	ContainerPadding        float64 `toml:"container_padding"`
	MaxBarycenterIterations int     `toml:"max_barycenter_iterations"`
	BisectionEpsilon        float64 `toml:"bisection_epsilon"`
	BisectionMaxPasses      int     `toml:"bisection_max_passes"`
	AutoExpandCanvas        bool    `toml:"auto_expand_canvas"`
	VisualizePhases         bool    `toml:"visualize_phases"`

	// Derived spacing constants, carried here rather than recomputed in
	// every phase package. Default derives them from IconWidth; the phases
	// use them as given and nothing recomputes them from IconWidth, so a
	// config file that sets only icon_width leaves them at their Default
	// values, and a zero here is used as zero.
	HorizontalStep    float64 `toml:"horizontal_step"`
	VerticalStep      float64 `toml:"vertical_step"`
	TopMargin         float64 `toml:"top_margin"`
	TextCharWidth     float64 `toml:"text_char_width"`
	TextLineHeight    float64 `toml:"text_line_height"`
	LabelOffsetBottom float64 `toml:"label_offset_bottom"`
}

// Default returns the reference configuration: icon_width 48, the
// 1.5x/1.25x spacing multipliers from spec.md §4.6, bisection epsilon
// 0.001 with a 100-pass cap, and 4 barycenter iterations.
func Default() Config {
	const iconWidth = 48.0
	return Config{
		IconWidth:               iconWidth,
		MinHorizontalGap:        16.0,
		ContainerPadding:        12.0,
		MaxBarycenterIterations: 4,
		BisectionEpsilon:        0.001,
		BisectionMaxPasses:      100,
		AutoExpandCanvas:        true,
		VisualizePhases:         false,

		HorizontalStep:    1.5 * iconWidth,
		VerticalStep:      1.25 * iconWidth,
		TopMargin:         1.25 * iconWidth,
		TextCharWidth:     7.0,
		TextLineHeight:    16.0,
		LabelOffsetBottom: 6.0,
	}
}

// Load reads a TOML file at path and applies any fields it sets on top of
// Default(). A missing file is not an error — Default() is returned as-is,
// since every field already has a usable value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, lerrors.Wrap(lerrors.ErrCodeStructural, err, "parsing config %s", path)
	}
	return cfg, nil
}
