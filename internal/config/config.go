// Package config loads user settings for chromamem.
package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"chromamem/internal/dispatch"
	"chromamem/internal/palette"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	Keys Keys `toml:"keys" yaml:"keys" json:"keys"`
	UI   UI   `toml:"ui" yaml:"ui" json:"ui"`
	Log  Log  `toml:"log" yaml:"log" json:"log"`
}

// Keys binds one keyboard key to each palette color.
type Keys struct {
	Red    string `toml:"red" yaml:"red" json:"red"`
	Green  string `toml:"green" yaml:"green" json:"green"`
	Blue   string `toml:"blue" yaml:"blue" json:"blue"`
	Yellow string `toml:"yellow" yaml:"yellow" json:"yellow"`
}

// UI represents UI-related configuration.
type UI struct {
	Mouse        bool `toml:"mouse" yaml:"mouse" json:"mouse"`
	ConfirmReset bool `toml:"confirm_reset" yaml:"confirm_reset" json:"confirm_reset"`
}

// Log controls where log output goes while the TUI owns the terminal.
type Log struct {
	File    string `toml:"file" yaml:"file" json:"file"`
	Verbose bool   `toml:"verbose" yaml:"verbose" json:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keys: Keys{Red: "1", Green: "2", Blue: "3", Yellow: "4"},
		UI:   UI{Mouse: true},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chromamem/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate user config directory")
	}
	return filepath.Join(dir, "chromamem", FileName), nil
}

// Load reads path on top of the defaults. The decoder is chosen by file
// extension: .toml, .yaml/.yml or .json.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config %s", path)
	}
	defer f.Close()

	cfg := Default()
	if err := decode(f, filepath.Ext(path), cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the config at DefaultPath. A missing file is not an
// error and yields Default().
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func decode(r io.Reader, ext string, cfg *Config) error {
	switch ext {
	case ".toml":
		return toml.NewDecoder(r).Decode(cfg)
	case ".yaml", ".yml":
		return yaml.NewDecoder(r).Decode(cfg)
	case ".json":
		return json.NewDecoder(r).Decode(cfg)
	default:
		return errors.Errorf("unsupported config format %q", ext)
	}
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	_, err := c.Keymap()
	return err
}

// Keymap builds the dispatcher table from the [keys] section.
func (c *Config) Keymap() (dispatch.Keymap, error) {
	km, err := dispatch.NewKeymap(map[palette.Color]string{
		palette.Red:    c.Keys.Red,
		palette.Green:  c.Keys.Green,
		palette.Blue:   c.Keys.Blue,
		palette.Yellow: c.Keys.Yellow,
	})
	if err != nil {
		return dispatch.Keymap{}, errors.Wrap(err, "keys")
	}
	return km, nil
}
