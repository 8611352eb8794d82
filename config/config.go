// Package config loads the daemon configuration from YAML, with overrides
// from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keymaps"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvConfig   = "GOCYCLEKEYS_CONFIG"
	EnvLogLevel = "GOCYCLEKEYS_LOG_LEVEL"
	EnvLogFile  = "GOCYCLEKEYS_LOG_FILE"
	EnvDebug    = "GOCYCLEKEYS_DEBUG"
)

// DefaultPath is where the config file is looked up when none is given.
const DefaultPath = "~/.config/gocyclekeys/config.yaml"

// BindingConfig is one binding as written in the config file.
type BindingConfig struct {
	Name string   `yaml:"name"`
	Keys []string `yaml:"keys"`
	List int      `yaml:"list"`
}

// Config is the daemon configuration.
type Config struct {
	Devices      []string        `yaml:"devices"`
	LogLevel     string          `yaml:"log_level"`
	LogFormat    string          `yaml:"log_format"`
	LogFile      string          `yaml:"log_file"`
	Lists        string          `yaml:"lists"`
	Chords       string          `yaml:"chords"`
	Bindings     []BindingConfig `yaml:"bindings"`
	ComboTimeout time.Duration   `yaml:"combo_timeout"`
	CycleTimeout time.Duration   `yaml:"cycle_timeout"`
	TapDelay     time.Duration   `yaml:"tap_delay"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Devices:      []string{"mtk-kpd", "matrix-keypad", "AT Translated Set 2 keyboard"},
		LogLevel:     "info",
		ComboTimeout: 50 * time.Millisecond,
	}
}

// Load reads path (or the default location when path is empty) over the
// defaults, then applies environment overrides. A missing file at the
// default location is not an error.
func Load(path string) (Config, error) {
	// .env in the working directory is optional
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", expanded, err)
		}
		cfg.resolvePaths(filepath.Dir(expanded))
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if os.Getenv(EnvDebug) != "" {
		c.LogLevel = "debug"
	}
}

// resolvePaths makes file references relative to the config file's directory.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Lists, &c.Chords, &c.LogFile} {
		if *p == "" {
			continue
		}
		if expanded, err := homedir.Expand(*p); err == nil {
			*p = expanded
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// KeyMapping converts the configured bindings. It returns false when the
// file configures none, so the caller keeps the built-in mapping.
func (c Config) KeyMapping() (keymaps.KeyMapping, bool, error) {
	if len(c.Bindings) == 0 {
		return keymaps.KeyMapping{}, false, nil
	}
	m := keymaps.KeyMapping{}
	for i, b := range c.Bindings {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("binding_%d", i)
		}
		combo := make([]hid.Usage, 0, len(b.Keys))
		for _, k := range b.Keys {
			u, err := hid.Parse(k)
			if err != nil {
				return keymaps.KeyMapping{}, false, fmt.Errorf("binding %q: %w", name, err)
			}
			combo = append(combo, u)
		}
		m.Bindings = append(m.Bindings, keymaps.Binding{Name: name, Combo: combo, List: b.List})
	}
	return m, true, nil
}
