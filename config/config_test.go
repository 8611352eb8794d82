package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goCycleKeys/hid"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
devices: ["USB-HID Keyboard"]
log_level: warn
log_format: json
lists: lists.yaml
combo_timeout: 80ms
cycle_timeout: 2s
bindings:
  - name: the
    keys: [t, h]
    list: 0
  - keys: [N1, n0]
    list: 34
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, sample)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"USB-HID Keyboard"}, cfg.Devices)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 80*time.Millisecond, cfg.ComboTimeout)
	assert.Equal(t, 2*time.Second, cfg.CycleTimeout)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "lists.yaml"), cfg.Lists)

	m, ok, err := cfg.KeyMapping()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, m.Bindings, 2)
	assert.Equal(t, []hid.Usage{hid.KeyT, hid.KeyH}, m.Bindings[0].Combo)
	assert.Equal(t, "binding_1", m.Bindings[1].Name)
	assert.Equal(t, []hid.Usage{hid.Key1, hid.Key0}, m.Bindings[1].Combo)
}

func TestLoad_Defaults(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Devices, cfg.Devices)
	assert.Equal(t, 50*time.Millisecond, cfg.ComboTimeout)

	_, ok, err := cfg.KeyMapping()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, sample)
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvLogFile, "/tmp/cyc.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cyc.log", cfg.LogFile)
	assert.Equal(t, []string{"USB-HID Keyboard"}, cfg.Devices)
}

func TestKeyMapping_BadKey(t *testing.T) {
	cfg := Config{Bindings: []BindingConfig{{Name: "x", Keys: []string{"nosuchkey"}}}}
	_, _, err := cfg.KeyMapping()
	assert.ErrorContains(t, err, "nosuchkey")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "devices: [")
	_, err := Load(path)
	assert.Error(t, err)
}
