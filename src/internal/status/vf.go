package status

import (
	"encoding/json"
	"fmt"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

// VFReport is the reply of a virtual forwarder to the "status" command.
type VFReport struct {
	Info VFInfo `json:"info"`
}

// VFInfo is the "info" block of a virtual forwarder status reply.
type VFInfo struct {
	ClientID        int             `json:"client-id"`
	Phy             []int           `json:"phy"`
	Vhost           []int           `json:"vhost"`
	Ring            []int           `json:"ring"`
	MasterLcore     *int            `json:"master-lcore,omitempty"`
	Core            json.RawMessage `json:"core"`
	ClassifierTable json.RawMessage `json:"classifier_table"`
}

// VFStatus is the API representation of a virtual forwarder.
type VFStatus struct {
	ClientID        int             `json:"client-id"`
	Ports           []string        `json:"ports"`
	Components      json.RawMessage `json:"components"`
	ClassifierTable json.RawMessage `json:"classifier_table"`
}

// ConvertVF flattens the per-kind port index lists into port identifiers
// (phy, then vhost, then ring) and passes components and the classifier
// table through unchanged.
func ConvertVF(report VFReport) VFStatus {
	info := report.Info

	ports := make([]string, 0, len(info.Phy)+len(info.Vhost)+len(info.Ring))
	for _, kind := range spp.PortKinds {
		for _, idx := range info.indices(kind) {
			ports = append(ports, fmt.Sprintf("%s:%d", kind, idx))
		}
	}

	return VFStatus{
		ClientID:        info.ClientID,
		Ports:           ports,
		Components:      orNull(info.Core),
		ClassifierTable: orNull(info.ClassifierTable),
	}
}

func (i VFInfo) indices(kind spp.PortKind) []int {
	switch kind {
	case spp.PortPhy:
		return i.Phy
	case spp.PortVhost:
		return i.Vhost
	case spp.PortRing:
		return i.Ring
	}
	return nil
}

// orNull keeps absent raw fields encodable.
func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
