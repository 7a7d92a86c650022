// Package config loads todowall settings from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/todowall/fonts"
	canvasrenderer "github.com/ByLCY/todowall/renderer/canvas"
	"github.com/ByLCY/todowall/textblock"
	"github.com/ByLCY/todowall/wallpaper"
)

// DefaultBackupDir is where originals and annotated copies are kept.
const DefaultBackupDir = "~/.todo-wallpaper"

// Config holds all user-tunable settings.
type Config struct {
	BackupDir string             `yaml:"backup_dir" toml:"backup_dir"`
	Marker    string             `yaml:"marker" toml:"marker"`
	Font      string             `yaml:"font" toml:"font"`       // fonts.Load source
	Desktop   string             `yaml:"desktop" toml:"desktop"` // overrides XDG_CURRENT_DESKTOP
	Headings  textblock.Headings `yaml:"headings" toml:"headings"`
	Render    RenderConfig       `yaml:"render" toml:"render"`
}

// RenderConfig tunes the panel treatment.
type RenderConfig struct {
	Brightness int     `yaml:"brightness" toml:"brightness"` // 0-255, direction follows the theme
	Blur       float64 `yaml:"blur" toml:"blur"`             // gaussian sigma in pixels, 0 disables
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BackupDir: DefaultBackupDir,
		Marker:    wallpaper.DefaultMarker,
		Font:      fonts.Default,
		Headings:  textblock.DefaultHeadings(),
		Render: RenderConfig{
			Brightness: canvasrenderer.DefaultBrightness,
			Blur:       canvasrenderer.DefaultBlurSigma,
		},
	}
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todowall", "config.yaml")
}

// Load reads configuration from path. A missing file (or an empty path)
// yields the defaults. Files ending in .toml are decoded as TOML, everything
// else as YAML. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// Finalize fills empty values with defaults, expands ~ and validates. Call it
// again after applying flag or environment overrides.
func (c *Config) Finalize() error {
	c.applyDefaults()

	dir, err := ExpandHome(c.BackupDir)
	if err != nil {
		return err
	}
	c.BackupDir = dir

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
// Headings are left alone: an empty heading hides that heading.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BackupDir == "" {
		c.BackupDir = defaults.BackupDir
	}
	if c.Marker == "" {
		c.Marker = defaults.Marker
	}
	if c.Font == "" {
		c.Font = defaults.Font
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BackupDir == "" {
		return fmt.Errorf("backup_dir cannot be empty")
	}
	if c.Marker == "" {
		return fmt.Errorf("marker cannot be empty")
	}
	if strings.ContainsAny(c.Marker, `/\.`) {
		return fmt.Errorf("marker %q must not contain path separators or dots", c.Marker)
	}
	if c.Render.Brightness < 0 || c.Render.Brightness > 255 {
		return fmt.Errorf("render.brightness must be between 0 and 255, got %d", c.Render.Brightness)
	}
	if c.Render.Blur < 0 {
		return fmt.Errorf("render.blur cannot be negative")
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
