package spp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
)

// PortKind is the resource type backing a port.
type PortKind string

const (
	PortPhy   PortKind = "phy"
	PortVhost PortKind = "vhost"
	PortRing  PortKind = "ring"
)

// PortKinds lists the port kinds in reporting order.
var PortKinds = []PortKind{PortPhy, PortVhost, PortRing}

func (k PortKind) valid() bool {
	switch k {
	case PortPhy, PortVhost, PortRing:
		return true
	}
	return false
}

// Port identifies a port of a worker, serialized as "<kind>:<index>".
type Port struct {
	Kind  PortKind
	Index int
}

// String returns the "<kind>:<index>" form.
func (p Port) String() string {
	return fmt.Sprintf("%s:%d", p.Kind, p.Index)
}

// ParsePort parses a "<kind>:<index>" port identifier.
//
// Any deviation from the grammar is reported as InvalidValue("port", s).
func ParsePort(s string) (Port, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Port{}, errors.InvalidValue("port", s)
	}

	kind := PortKind(parts[0])
	if !kind.valid() {
		return Port{}, errors.InvalidValue("port", s)
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return Port{}, errors.InvalidValue("port", s)
	}

	return Port{Kind: kind, Index: index}, nil
}

// ParsePortValue is ParsePort for an undecoded body value. Non-string values
// are rejected under the "port" key as well.
func ParsePortValue(v any) (Port, error) {
	s, ok := v.(string)
	if !ok {
		return Port{}, errors.InvalidValue("port", v)
	}
	return ParsePort(s)
}
