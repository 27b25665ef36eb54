package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"diskmap/internal/render"
	"diskmap/internal/treemap"
)

// MaxDimension bounds the canvas on each side; a PNG canvas is allocated
// in full.
const MaxDimension = 16384

type Config struct {
	Exclude []string `yaml:"exclude" toml:"exclude"`
	Width   float64  `yaml:"width" toml:"width"`
	Height  float64  `yaml:"height" toml:"height"`
	Mode    string   `yaml:"mode" toml:"mode"`
	Formats []string `yaml:"formats" toml:"formats"`
	Output  string   `yaml:"output" toml:"output"`
}

// DefaultConfig excludes nothing, so every regular file counts.
func DefaultConfig() *Config {
	return &Config{
		Exclude: []string{},
		Width:   1200,
		Height:  800,
		Mode:    string(treemap.ModeSquarify),
		Formats: []string{render.FormatSVG},
		Output:  "diskmap",
	}
}

// LoadConfig reads a YAML or TOML file (chosen by a .toml extension) over
// the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	// Initialize Exclude slice if nil (for explicit empty lists)
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dimensions, mode and formats.
func (c *Config) Validate() error {
	if !validDimension(c.Width) || !validDimension(c.Height) {
		return fmt.Errorf("invalid dimensions %gx%g: each side must be in (0, %d]", c.Width, c.Height, MaxDimension)
	}
	if _, err := treemap.ParseMode(c.Mode); err != nil {
		return err
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("no output formats configured")
	}
	for _, f := range c.Formats {
		if !render.ValidFormat(f) {
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

// validDimension rejects NaN and Inf along with out-of-range sizes.
func validDimension(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v <= MaxDimension
}
