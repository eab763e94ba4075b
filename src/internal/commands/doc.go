// Package commands implements the spp-ctl command line.
//
// Commands are built with cobra:
//
//   - server: run the worker listener and the REST API (default)
//   - check-config: load and validate the configuration file
//   - version: print build information
//
// Global flags select the configuration file (--config) and enable debug
// logging (--verbose). Server flags override the matching configuration
// values, so spp-ctl runs without any configuration file:
//
//	spp-ctl -b 192.168.1.100 -p 5555 -s 6666 -a 7777
package commands
