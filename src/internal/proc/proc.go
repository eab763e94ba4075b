package proc

import (
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/status"
)

// Proc is a handle to a registered worker process.
type Proc interface {
	ID() int
	Type() spp.ProcType
	Close() error
}

// VF is a virtual forwarder.
type VF interface {
	Proc
	Status() (status.VFReport, error)
	StartComponent(name string, core int, componentType string) error
	StopComponent(name string) error
	PortAdd(port spp.Port, dir, component, tagOp string, vid, pcp int) error
	PortDel(port spp.Port, dir, component string) error
	SetClassifierTable(mac string, port spp.Port) error
	SetClassifierTableWithVlan(mac string, port spp.Port, vid int) error
	ClearClassifierTable(mac string, port spp.Port) error
	ClearClassifierTableWithVlan(mac string, port spp.Port, vid int) error
}

// NFV is a network-function proxy.
type NFV interface {
	Proc
	Status() (string, error)
	Forward() error
	Stop() error
	PortAdd(kind spp.PortKind, index int) error
	PortDel(kind spp.PortKind, index int) error
	PatchAdd(src, dst spp.Port) error
	PatchReset() error
}

// Primary is the primary process.
type Primary interface {
	Proc
	Status() (string, error)
	Clear() error
}

// Summary describes a registered process in the process list.
// The primary carries no client id.
type Summary struct {
	Type     spp.ProcType `json:"type"`
	ClientID *int         `json:"client-id,omitempty"`
}

// Summarize builds the process list entry of p.
func Summarize(p Proc) Summary {
	s := Summary{Type: p.Type()}
	if p.Type() != spp.ProcPrimary {
		id := p.ID()
		s.ClientID = &id
	}
	return s
}
