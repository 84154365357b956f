// Package config holds the settings of the cropbox command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sebnyberg/cropbox/encode"
)

type Config struct {
	// Format is the output encoding, e.g. "png" or "bmp.zst".
	Format      string `toml:"format"`
	JPEGQuality int    `toml:"jpeg_quality"`
	TIFFDeflate bool   `toml:"tiff_deflate"`

	// MaxDisplayWidth is the width of the box the image is rendered into.
	// Wider images are scaled down to fit.
	MaxDisplayWidth float64 `toml:"max_display_width"`

	Workers  int64  `toml:"workers"`
	LogLevel string `toml:"log_level"`
	LogJSON  bool   `toml:"log_json"`
	Output   string `toml:"output"`
}

func Default() *Config {
	return &Config{
		Format:          "png",
		JPEGQuality:     encode.DefaultJPEGQuality,
		TIFFDeflate:     false,
		MaxDisplayWidth: 800,
		Workers:         1,
		LogLevel:        "info",
		LogJSON:         false,
		Output:          "cropped-image.png",
	}
}

// Validate resets out of range values to their defaults and rejects the
// ones that cannot be fixed.
func (c *Config) Validate() error {
	def := Default()
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = def.JPEGQuality
	}
	if c.MaxDisplayWidth <= 0 {
		c.MaxDisplayWidth = def.MaxDisplayWidth
	}
	if c.Workers < 1 {
		c.Workers = def.Workers
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if _, err := encode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) OutputFormat() (encode.Format, error) {
	return encode.ParseFormat(c.Format)
}

func (c *Config) EncodeOptions() []encode.Option {
	return []encode.Option{
		encode.JPEGQuality(c.JPEGQuality),
		encode.TIFFDeflate(c.TIFFDeflate),
	}
}

func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Load reads the TOML file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q err, %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
