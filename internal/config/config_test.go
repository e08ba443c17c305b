package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default resolution = %dx%d, want 1280x720", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync should default to on")
	}
	if cfg.Terrain.Width != 128 || cfg.Terrain.Height != 128 {
		t.Errorf("default terrain = %dx%d, want 128x128", cfg.Terrain.Width, cfg.Terrain.Height)
	}
	if cfg.Terrain.CellScale != 1 || cfg.Terrain.TexScale != 1 {
		t.Errorf("default scales = %g/%d, want 1/1", cfg.Terrain.CellScale, cfg.Terrain.TexScale)
	}
	if cfg.Terrain.Amplitude != 8 {
		t.Errorf("default amplitude = %g, want 8", cfg.Terrain.Amplitude)
	}
	if cfg.Grass.Density != 16 {
		t.Errorf("default grass density = %g, want 16", cfg.Grass.Density)
	}
	if cfg.Grass.SlopeThreshold != 0.75 {
		t.Errorf("default slope threshold = %g, want 0.75", cfg.Grass.SlopeThreshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdant.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Terrain.Seed = 1234
	cfg.Grass.Density = 32
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("width = %d, want 1920", loaded.Graphics.Width)
	}
	if loaded.Terrain.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", loaded.Terrain.Seed)
	}
	if loaded.Grass.Density != 32 {
		t.Errorf("density = %g, want 32", loaded.Grass.Density)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", loaded.Logging.Level)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdant.yaml")
	partial := []byte("terrain:\n  seed: 77\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Terrain.Seed != 77 {
		t.Errorf("seed = %d, want 77", cfg.Terrain.Seed)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Terrain.Width != 128 {
		t.Errorf("width = %d, want default 128", cfg.Terrain.Width)
	}
	if cfg.Grass.Density != 16 {
		t.Errorf("density = %g, want default 16", cfg.Grass.Density)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdant.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := loadFromFile(Default(), path); err == nil {
		t.Error("loadFromFile() accepted malformed yaml")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loadFromFile() on a missing file should fail")
	}
}
