// Package config loads and writes engine settings.
//
// Files are read through viper (TOML, YAML or JSON by extension, with UI_
// prefixed environment overrides) and written as TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config is the full engine configuration.
type Config struct {
	Debug   DebugConfig                  `mapstructure:"debug" toml:"debug"`
	Input   InputConfig                  `mapstructure:"input" toml:"input"`
	Popup   PopupConfig                  `mapstructure:"popup" toml:"popup"`
	Layout  LayoutConfig                 `mapstructure:"layout" toml:"layout"`
	Keymaps map[string]map[string]string `mapstructure:"keymaps" toml:"keymaps"`
}

// DebugConfig controls the debug log sink.
type DebugConfig struct {
	File       string `mapstructure:"file" toml:"file"`
	Level      string `mapstructure:"level" toml:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
}

// InputConfig holds scroll steps and focus traversal behaviour.
type InputConfig struct {
	LineStep  int  `mapstructure:"line_step" toml:"line_step"`
	WheelStep int  `mapstructure:"wheel_step" toml:"wheel_step"`
	TabWraps  bool `mapstructure:"tab_wraps" toml:"tab_wraps"`
}

// PopupConfig holds popup decoration defaults.
type PopupConfig struct {
	Padding     int    `mapstructure:"padding" toml:"padding"`
	DepthIndent int    `mapstructure:"depth_indent" toml:"depth_indent"`
	Centred     bool   `mapstructure:"centred" toml:"centred"`
	Border      string `mapstructure:"border" toml:"border"`
}

// LayoutConfig bounds layout restarts.
type LayoutConfig struct {
	MaxRestarts int `mapstructure:"max_restarts" toml:"max_restarts"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var borders = map[string]bool{"none": true, "single": true, "double": true, "rounded": true, "thick": true}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug.file", "")
	v.SetDefault("debug.level", "debug")
	v.SetDefault("debug.max_size_mb", 10)
	v.SetDefault("debug.max_backups", 3)

	v.SetDefault("input.line_step", 1)
	v.SetDefault("input.wheel_step", 3)
	v.SetDefault("input.tab_wraps", true)

	v.SetDefault("popup.padding", 1)
	v.SetDefault("popup.depth_indent", 0)
	v.SetDefault("popup.centred", true)
	v.SetDefault("popup.border", "single")

	v.SetDefault("layout.max_restarts", 1)
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &cfg
}

// Load reads path (if non-empty) over the defaults and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("UI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write stores cfg at path as TOML, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Decode parses TOML bytes without defaults. Used for round-tripping
// files produced by Write.
func Decode(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Input.LineStep < 1:
		return fmt.Errorf("%w: input.line_step must be >= 1, got %d", ErrInvalid, c.Input.LineStep)
	case c.Input.WheelStep < 1:
		return fmt.Errorf("%w: input.wheel_step must be >= 1, got %d", ErrInvalid, c.Input.WheelStep)
	case c.Popup.Padding < 0:
		return fmt.Errorf("%w: popup.padding must be >= 0, got %d", ErrInvalid, c.Popup.Padding)
	case c.Popup.DepthIndent < 0:
		return fmt.Errorf("%w: popup.depth_indent must be >= 0, got %d", ErrInvalid, c.Popup.DepthIndent)
	case c.Layout.MaxRestarts < 0:
		return fmt.Errorf("%w: layout.max_restarts must be >= 0, got %d", ErrInvalid, c.Layout.MaxRestarts)
	}
	if c.Popup.Border != "" && !borders[c.Popup.Border] {
		return fmt.Errorf("%w: unknown popup.border %q", ErrInvalid, c.Popup.Border)
	}
	for ctx, table := range c.Keymaps {
		for from, to := range table {
			if from == "" || to == "" {
				return fmt.Errorf("%w: keymaps.%s has an empty key name", ErrInvalid, ctx)
			}
		}
	}
	return nil
}
