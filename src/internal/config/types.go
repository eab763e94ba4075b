package config

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	// API holds the REST API listener settings.
	API *APIConfig `toml:"api" json:"api"`
	// Workers holds the listeners worker processes connect to.
	Workers *WorkersConfig `toml:"workers" json:"workers"`
	// Log holds logging settings.
	Log *LogConfig `toml:"log" json:"log"`
	// Metrics holds Prometheus exposition settings.
	Metrics *MetricsConfig `toml:"metrics" json:"metrics"`

	_absConfigFilePath string
}

type APIConfig struct {
	// BindAddress is the address the REST API listens on (default: 127.0.0.1).
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"required,ip|hostname_rfc1123"`
	// Port is the REST API port (default: 7777).
	Port uint16 `toml:"port" json:"port" validate:"required,min=1"`
}

type WorkersConfig struct {
	// BindAddress is the address worker processes connect to (default: 127.0.0.1).
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"required,ip|hostname_rfc1123"`
	// PrimaryPort is the port the primary process connects to (default: 5555).
	PrimaryPort uint16 `toml:"primary_port" json:"primary_port" validate:"required,min=1"`
	// SecondaryPort is the port secondary processes connect to (default: 6666).
	SecondaryPort uint16 `toml:"secondary_port" json:"secondary_port" validate:"required,min=1"`
	// CommandTimeoutSeconds bounds one command exchange with a worker (0 = no deadline).
	CommandTimeoutSeconds int `toml:"command_timeout_seconds" json:"command_timeout_seconds" validate:"gte=0"`
}

type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error (default: info).
	Level string `toml:"level" json:"level" validate:"oneof=debug info warn error"`
	// File enables logging to a rotated file instead of stderr.
	File string `toml:"file" json:"file"`
	// MaxSizeMB is the size of a log file before it is rotated (default: 10).
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" validate:"gte=0"`
	// MaxBackups is the number of rotated files kept (default: 3).
	MaxBackups int `toml:"max_backups" json:"max_backups" validate:"gte=0"`
	// MaxAgeDays is the age after which rotated files are removed (default: 28).
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days" validate:"gte=0"`
}

type MetricsConfig struct {
	// Enable exposes Prometheus metrics on /metrics (default: true).
	Enable *bool `toml:"enable" json:"enable"`
}

// APIAddr returns the host:port the REST API listens on.
func (c *Config) APIAddr() string {
	return net.JoinHostPort(c.API.BindAddress, strconv.Itoa(int(c.API.Port)))
}

// PrimaryAddr returns the host:port the primary connects to.
func (c *Config) PrimaryAddr() string {
	return net.JoinHostPort(c.Workers.BindAddress, strconv.Itoa(int(c.Workers.PrimaryPort)))
}

// SecondaryAddr returns the host:port secondaries connect to.
func (c *Config) SecondaryAddr() string {
	return net.JoinHostPort(c.Workers.BindAddress, strconv.Itoa(int(c.Workers.SecondaryPort)))
}

// CommandTimeout returns the per-command deadline, zero when disabled.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Workers.CommandTimeoutSeconds) * time.Second
}

// MetricsEnabled reports whether /metrics is served.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics == nil || c.Metrics.Enable == nil || *c.Metrics.Enable
}
