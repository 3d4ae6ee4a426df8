// Package config holds renderer options and their TOML and
// environment loading. File settings load first; TREELINE_*
// environment variables override them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/treeline/internal/renderer"
	"github.com/dshills/treeline/internal/renderer/core"
	"github.com/dshills/treeline/internal/renderer/guide"
)

// Options configures tree rendering.
type Options struct {
	// Guides selects a built-in glyph set: line, bold, double, ascii.
	Guides string `toml:"guides"`

	// ASCII forces ASCII-safe guide glyphs regardless of set.
	ASCII bool `toml:"ascii"`

	// HideRoot suppresses the root node's own lines.
	HideRoot bool `toml:"hide_root"`

	// GuideColor is a hex color applied to guide glyphs.
	GuideColor string `toml:"guide_color"`

	// Overrides maps guide role names (continue, fork, end, space)
	// to replacement glyph text.
	Overrides map[string]string `toml:"overrides"`
}

// Default returns the default options.
func Default() Options {
	return Options{Guides: "line"}
}

// LoadFile reads options from a TOML file, starting from defaults.
func LoadFile(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return opts, nil
}

// Environment variables recognized by FromEnv.
var envVars = []string{
	"TREELINE_GUIDES",
	"TREELINE_ASCII",
	"TREELINE_HIDE_ROOT",
	"TREELINE_GUIDE_COLOR",
}

// FromEnv overlays TREELINE_* environment variables onto opts.
// Unset variables leave the existing value untouched.
func FromEnv(opts Options) Options {
	for _, env := range envVars {
		val, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		switch env {
		case "TREELINE_GUIDES":
			opts.Guides = val
		case "TREELINE_ASCII":
			opts.ASCII = parseBool(val)
		case "TREELINE_HIDE_ROOT":
			opts.HideRoot = parseBool(val)
		case "TREELINE_GUIDE_COLOR":
			opts.GuideColor = val
		}
	}
	return opts
}

// parseBool parses a boolean setting; malformed values read as false.
func parseBool(val string) bool {
	b, err := strconv.ParseBool(val)
	return err == nil && b
}

// Configure applies the options to a tree.
func (o Options) Configure(t *renderer.Tree) error {
	set, ok := guide.Named(o.Guides)
	if !ok {
		return fmt.Errorf("unknown guide set %q", o.Guides)
	}
	for name, glyph := range o.Overrides {
		part, ok := guide.PartNamed(name)
		if !ok {
			return fmt.Errorf("unknown guide part %q", name)
		}
		set = set.WithOverride(part, glyph)
	}
	t.SetGuides(set)
	t.SetASCII(o.ASCII)
	t.SetHideRoot(o.HideRoot)

	if o.GuideColor != "" {
		c, err := core.ColorFromHex(o.GuideColor)
		if err != nil {
			return fmt.Errorf("guide color: %w", err)
		}
		t.SetGuideStyle(core.NewStyle(c))
	}
	return nil
}
