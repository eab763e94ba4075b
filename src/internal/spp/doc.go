// Package spp holds the vocabulary shared by every worker type: process
// types, the "<kind>:<index>" port identifier grammar and the VLAN operation
// sub-object accepted when attaching ports.
//
// Everything here is pure. Parse failures are reported as INVALID_VALUE
// domain errors carrying the key and the rejected value, so callers can
// return them to the client unchanged.
package spp
