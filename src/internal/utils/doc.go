// Package utils provides small helpers shared across spp-ctl.
//
//   - ResolvePath: resolve a path relative to the configuration directory
//   - CloseOrWarn: close a resource and log a failure instead of returning it
//
// Path resolution:
//
//	path := utils.ResolvePath("logs/spp-ctl.log", "/etc/spp-ctl")
//	// Returns: /etc/spp-ctl/logs/spp-ctl.log
package utils
