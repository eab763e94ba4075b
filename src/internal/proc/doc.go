// Package proc keeps track of the worker processes connected to spp-ctl and
// talks to them.
//
// Workers connect to the controller: the primary on the primary port, every
// secondary (vf, nfv) on the secondary port. Each accepted connection becomes
// a Channel, wrapped by a typed process handle and stored in the Registry
// under its client id. The API layer only looks handles up; it never creates
// or removes them.
//
// A Channel carries one command at a time. Commands are short text lines
// rendered from templates; replies are JSON for virtual forwarders and plain
// text for everything else. When a channel breaks, its process is removed
// from the registry.
package proc
