// Package config handles configuration file parsing and validation for spp-ctl.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. Every field has a default, so
// spp-ctl also runs without a configuration file.
//
// # Configuration Structure
//
// The configuration file defines:
//   - [api] REST API bind address and port
//   - [workers] addresses the primary and secondary processes connect to
//   - [log] level and optional rotated log file
//   - [metrics] Prometheus exposition on /metrics
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/spp-ctl.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// # Example Configuration
//
//	[api]
//	bind_address = "127.0.0.1"
//	port = 7777
//
//	[workers]
//	bind_address = "127.0.0.1"
//	primary_port = 5555
//	secondary_port = 6666
//	command_timeout_seconds = 0
//
//	[log]
//	level = "info"
//	file = ""
//
//	[metrics]
//	enable = true
package config
