// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Grass    GrassConfig    `yaml:"grass"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain generation parameters.
type TerrainConfig struct {
	Width     int     `yaml:"width"`      // grid cells along X
	Height    int     `yaml:"height"`     // grid cells along Z
	CellScale float32 `yaml:"cell_scale"` // world size of one cell
	TexScale  int     `yaml:"tex_scale"`  // texture tiling period, in cells
	Amplitude float32 `yaml:"amplitude"`  // vertical exaggeration
	Seed      int64   `yaml:"seed"`
}

// GrassConfig holds grass scattering parameters.
type GrassConfig struct {
	Density        float32 `yaml:"density"`         // blades per unit of surface weight
	SlopeThreshold float32 `yaml:"slope_threshold"` // minimum upward normal component
	BladeHeight    float32 `yaml:"blade_height"`
	BladeWidth     float32 `yaml:"blade_width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Width:     128,
			Height:    128,
			CellScale: 1,
			TexScale:  1,
			Amplitude: 8,
			Seed:      0,
		},
		Grass: GrassConfig{
			Density:        16,
			SlopeThreshold: 0.75,
			BladeHeight:    0.6,
			BladeWidth:     0.08,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
