// Package config loads zonectl settings from a YAML file, the environment and
// command-line flags, in that order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/zone"
)

// Config holds all configurable paths and render settings.
type Config struct {
	Render    RenderConfig  `yaml:"render" envPrefix:"RENDER_"`
	OutputDir string        `yaml:"output_dir" env:"OUTPUT_DIR"`
	Workers   int           `yaml:"workers" env:"WORKERS"`
	Log       LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Metrics   MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
	Initial   Initial       `yaml:"initial"`
}

// RenderConfig controls offline rendering.
type RenderConfig struct {
	Size         int    `yaml:"size" env:"SIZE"`
	Supersample  int    `yaml:"supersample" env:"SUPERSAMPLE"`
	FPS          int    `yaml:"fps" env:"FPS"`
	Format       string `yaml:"format" env:"FORMAT"`
	FloorTexture string `yaml:"floor_texture" env:"FLOOR_TEXTURE"`
	TextureDir   string `yaml:"texture_dir" env:"TEXTURE_DIR"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// Initial is the starting configuration. Unset fields keep the store
// defaults; set fields go through the store like any other write.
type Initial struct {
	Width        *float64                  `yaml:"width"`
	Length       *float64                  `yaml:"length"`
	Height       *float64                  `yaml:"height"`
	Distance     *float64                  `yaml:"distance"`
	Installation *store.InstallationHeight `yaml:"installation_height"`
	Mode         *store.MocapMode          `yaml:"mocap_mode"`
	Light        *store.LightCondition     `yaml:"light_condition"`
}

// Patch returns the zone part of the initial block.
func (in Initial) Patch() zone.Patch {
	return zone.Patch{Width: in.Width, Length: in.Length, Height: in.Height, Distance: in.Distance}
}

// Apply writes the initial block through st. Light goes last, so a file
// asking for handsOn in the dark ends up in setup mode.
func (in Initial) Apply(st *store.Store) {
	if in.Installation != nil {
		st.SetInstallationHeight(*in.Installation)
	}
	if p := in.Patch(); !p.Empty() {
		st.SetZoneSettings(p)
	}
	if in.Mode != nil {
		st.SetMocapMode(*in.Mode)
	}
	if in.Light != nil {
		st.SetLightCondition(*in.Light)
	}
}

// Load reads a YAML config file and overlays ZONECTL_ environment variables.
// An empty path skips the file. Fields not set anywhere keep their zero
// values until Resolve.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Render.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Render.Size = flags.Size
	}
	if flags.Verbose {
		c.Log.Level = "debug"
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Render.Size <= 0 {
		c.Render.Size = DefaultSize
	}
	if c.Render.Supersample <= 0 {
		c.Render.Supersample = DefaultSupersample
	}
	if c.Render.FPS <= 0 {
		c.Render.FPS = DefaultFPS
	}
	if c.Render.Format == "" {
		c.Render.Format = DefaultFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Defaults applied by Resolve.
const (
	DefaultOutputDir   = "renders"
	DefaultSize        = 512
	DefaultSupersample = 2
	DefaultFPS         = 30
	DefaultFormat      = "webp"
	DefaultLogLevel    = "info"
)

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Workers   int
	Format    string
	Size      int
	Verbose   bool
}

// LoadOptional is Load for paths that may not exist, such as the default
// zonectl.yaml next to the working directory.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Load("")
	}
	return cfg, err
}
