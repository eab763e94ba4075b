package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/utils"
)

const (
	DefaultBindAddress   = "127.0.0.1"
	DefaultAPIPort       = 7777
	DefaultPrimaryPort   = 5555
	DefaultSecondaryPort = 6666
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Default returns a configuration with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig reads a TOML configuration file and fills unset fields with
// defaults. An empty path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.ApplyDefaults()

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// ApplyDefaults fills missing sections and zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.BindAddress == "" {
		c.API.BindAddress = DefaultBindAddress
	}
	if c.API.Port == 0 {
		c.API.Port = DefaultAPIPort
	}

	if c.Workers == nil {
		c.Workers = &WorkersConfig{}
	}
	if c.Workers.BindAddress == "" {
		c.Workers.BindAddress = DefaultBindAddress
	}
	if c.Workers.PrimaryPort == 0 {
		c.Workers.PrimaryPort = DefaultPrimaryPort
	}
	if c.Workers.SecondaryPort == 0 {
		c.Workers.SecondaryPort = DefaultSecondaryPort
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultLogMaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = DefaultLogMaxAgeDays
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Enable == nil {
		enable := true
		c.Metrics.Enable = &enable
	}
}

// GetConfigDir returns the directory of the loaded configuration file.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsLogFile resolves the log file path relative to the configuration file.
func (c *Config) GetAbsLogFile() string {
	if c.Log == nil || c.Log.File == "" {
		return ""
	}
	return utils.ResolvePath(c.Log.File, c.GetConfigDir())
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
