package uidraw

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAtlasSide != 1024 {
		t.Errorf("MaxAtlasSide = %d, want 1024", cfg.MaxAtlasSide)
	}
	if cfg.AtlasClearThreshold != 0.9 {
		t.Errorf("AtlasClearThreshold = %v, want 0.9", cfg.AtlasClearThreshold)
	}
	if cfg.FixedFamily == "" || cfg.VariableFamily == "" {
		t.Error("default font families are empty")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uidraw.yaml")
	data := `
max_atlas_side: 2048
fixed_family: terminal
fonts:
  - family: terminal
    path: fonts/term.ttf
  - family: sans
    path: fonts/sans-bold.ttf
    weight: 700
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MaxAtlasSide != 2048 {
		t.Errorf("MaxAtlasSide = %d, want 2048", cfg.MaxAtlasSide)
	}
	if cfg.FixedFamily != "terminal" {
		t.Errorf("FixedFamily = %q, want %q", cfg.FixedFamily, "terminal")
	}
	// Fields absent from the file keep their defaults.
	if cfg.VariableFamily != DefaultConfig().VariableFamily {
		t.Errorf("VariableFamily = %q, want default", cfg.VariableFamily)
	}
	if len(cfg.Fonts) != 2 || cfg.Fonts[1].Weight != 700 {
		t.Errorf("Fonts = %+v, want two entries with the second at weight 700", cfg.Fonts)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig on a missing file succeeded")
	}
}
