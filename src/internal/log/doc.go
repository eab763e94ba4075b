// Package log provides leveled logging for spp-ctl.
//
// It keeps a small printf-style API (Debugf, Infof, Warnf, Errorf, Fatalf) on
// top of a logrus logger, so call sites stay short while output can be
// redirected to a rotated file.
//
// # Log Levels
//
//   - DEBUG: request bodies and worker commands (verbose mode only)
//   - INFO: requests, responses, worker registration
//   - WARN: refused worker connections, recoverable failures
//   - ERROR: failures
//
// # Example Usage
//
//	log.Infof("Starting API server on %s", addr)
//	log.WithField("sec_id", id).Warnf("Worker disconnected")
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//
// Writing to a rotated file instead of stderr:
//
//	log.SetFile(log.FileOptions{Path: "/var/log/spp-ctl.log", MaxSizeMB: 10})
package log
