// Package status converts the status reports of each worker type into the
// structure returned by the API.
//
// Virtual forwarders report structured JSON, network-function proxies report
// a two-line text message and the primary reports nothing usable yet. The
// converters are pure functions; the nfv text format is handled only here.
package status
