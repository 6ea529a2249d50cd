package uidraw

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FontConfig names one font file to load at startup.
type FontConfig struct {
	// Family is the name the font registers under.
	Family string `yaml:"family"`
	// Path is the TTF or OTF file to load.
	Path string `yaml:"path"`
	// Weight is the face weight, 400 when zero.
	Weight float32 `yaml:"weight"`
	Italic bool    `yaml:"italic"`
}

// Config controls the drawing context. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// MaxAtlasSide limits the glyph atlas texture size.
	MaxAtlasSide int32 `yaml:"max_atlas_side"`
	// AtlasClearThreshold is the atlas fill fraction that triggers a
	// rebuild at the next frame boundary.
	AtlasClearThreshold float32 `yaml:"atlas_clear_threshold"`

	// FixedFamily is the family the FIXED font selector resolves to.
	FixedFamily string `yaml:"fixed_family"`
	// VariableFamily is the family the VAR selectors resolve to.
	VariableFamily string `yaml:"variable_family"`
	// BoldWeight is the weight used by the VAR BOLD selector.
	BoldWeight float32 `yaml:"bold_weight"`

	// PreloadSizes lists font sizes whose printable ASCII glyphs are
	// rasterized up front for the configured families.
	PreloadSizes []float32 `yaml:"preload_sizes"`

	// Fonts are loaded and registered when the context is created.
	Fonts []FontConfig `yaml:"fonts"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxAtlasSide:        1024,
		AtlasClearThreshold: 0.9,
		FixedFamily:         "mono",
		VariableFamily:      "sans",
		BoldWeight:          700,
		PreloadSizes:        []float32{14, 16},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("uidraw: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("uidraw: parse config %s: %w", path, err)
	}
	return cfg, nil
}
