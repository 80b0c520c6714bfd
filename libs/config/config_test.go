package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestGet(t *testing.T) {
	// Reset the configuration to ensure a clean state
	Reset()

	// Initially, the instance should be nil
	assert.Nil(t, Get())

	// Load default configuration
	defaultConfig := GetDefault()
	assert.NotNil(t, defaultConfig)

	// Now Get() should return the instance
	assert.Equal(t, defaultConfig, Get())
}

func TestReset(t *testing.T) {
	// Ensure we have a configuration instance
	_ = GetDefault()
	assert.NotNil(t, Get())

	// Reset the configuration
	Reset()

	// Now the instance should be nil
	assert.Nil(t, Get())
}

func TestDefaults(t *testing.T) {
	Reset()
	cfg := GetDefault()
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8087, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.TimeoutSec)
	assert.NotEmpty(t, cfg.Server.HomeDir)
}

func TestLoad(t *testing.T) {
	// Reset for clean state
	Reset()

	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := []byte("server:\n  host: 0.0.0.0\n  port: 9999\n")
	err := os.WriteFile(configPath, configContent, 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9999, cfg.Server.Port)

	// Defaults for keys not present in the file
	assert.Equal(t, 30, cfg.Server.TimeoutSec)

	Reset()
}

func TestLoadMissingFile(t *testing.T) {
	Reset()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	Reset()
}

func TestToYaml(t *testing.T) {
	Reset()
	cfg := GetDefault()
	require.NotNil(t, cfg)

	yamlStr, err := cfg.ToYaml()
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = yaml.Unmarshal([]byte(yamlStr), &parsed)
	require.NoError(t, err)

	assert.Contains(t, parsed, "server")
	assert.Contains(t, parsed, "logging")

	Reset()
}

func TestResolveHomeDir(t *testing.T) {
	resolved, err := ResolveHomeDir("~/.crtime")
	require.NoError(t, err)
	assert.False(t, len(resolved) == 0)
	assert.NotContains(t, resolved, "~")

	_, err = ResolveHomeDir("")
	assert.Error(t, err)
}

func TestUpdateStructFromConfig(t *testing.T) {
	type target struct {
		Name  string `mapstructure:"name"`
		Count int    `mapstructure:"count"`
	}

	dst := &target{Name: "before", Count: 1}
	err := UpdateStructFromConfig(dst, map[string]interface{}{
		"name":  "after",
		"count": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "after", dst.Name)
	assert.Equal(t, 2, dst.Count)

	// Unknown keys are rejected
	err = UpdateStructFromConfig(dst, map[string]interface{}{"bogus": true})
	assert.Error(t, err)

	// Nil source is rejected
	err = UpdateStructFromConfig(dst, nil)
	assert.Error(t, err)

	// Non-pointer destination is rejected
	err = UpdateStructFromConfig(target{}, map[string]interface{}{})
	assert.Error(t, err)
}
