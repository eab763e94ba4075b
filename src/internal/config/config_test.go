package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "spp-ctl.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return configFile
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7777", cfg.APIAddr())
	assert.Equal(t, "127.0.0.1:5555", cfg.PrimaryAddr())
	assert.Equal(t, "127.0.0.1:6666", cfg.SecondaryAddr())
	assert.True(t, cfg.MetricsEnabled(), "metrics are enabled by default")
	assert.Zero(t, cfg.CommandTimeout())
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[api
	port = 7777`)

	_, err := LoadConfig(configFile)
	assert.Error(t, err)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `[api]
bind_address = "0.0.0.0"
port = 8080

[workers]
secondary_port = 7000
command_timeout_seconds = 5

[log]
level = "debug"
file = "logs/spp-ctl.log"

[metrics]
enable = false`)

	cfg, err := LoadConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.APIAddr())
	assert.Equal(t, uint16(DefaultPrimaryPort), cfg.Workers.PrimaryPort)
	assert.Equal(t, uint16(7000), cfg.Workers.SecondaryPort)
	assert.Equal(t, 5*time.Second, cfg.CommandTimeout())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.False(t, cfg.MetricsEnabled())

	wantLog := filepath.Join(filepath.Dir(configFile), "logs", "spp-ctl.log")
	assert.Equal(t, wantLog, cfg.GetAbsLogFile())

	assert.NoError(t, cfg.ValidateConfig())
}

func TestSerializeConfig_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.API.Port = 9000

	buf, err := cfg.SerializeConfig()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "port = 9000")

	loaded, err := LoadConfig(writeConfig(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), loaded.API.Port)
}
