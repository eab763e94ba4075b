// Package components holds the long-running parts of the spp-ctl server:
// the worker listener, the REST API server and the configuration watcher.
// Each follows the Component lifecycle so the server command can start and
// stop them in order.
package components
