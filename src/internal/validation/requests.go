package validation

import (
	"net"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

// ComponentStart starts a named component on a core of a virtual forwarder.
type ComponentStart struct {
	Name string
	Core int
	Type string
}

// DecodeComponentStart validates a component start body.
func DecodeComponentStart(b Body) (ComponentStart, error) {
	var req ComponentStart
	err := Check(b,
		Require("name", "core", "type"),
		String("name", &req.Name),
		Integer("core", &req.Core),
		OneOf("type", &req.Type, spp.ComponentTypes...),
	)
	if err != nil {
		return ComponentStart{}, err
	}
	return req, nil
}

// ComponentPort attaches a port to or detaches it from a component.
// Vlan is NoVlan for detach requests.
type ComponentPort struct {
	Action string
	Port   spp.Port
	Dir    string
	Vlan   spp.VlanOp
}

// DecodeComponentPort validates a component port body. The vlan object of a
// detach request is ignored, even when malformed.
func DecodeComponentPort(b Body) (ComponentPort, error) {
	req := ComponentPort{Vlan: spp.NoVlan}
	err := Check(b,
		Require("action", "port", "dir"),
		OneOf("action", &req.Action, spp.ActionAttach, spp.ActionDetach),
		OneOf("dir", &req.Dir, spp.Directions...),
		Port("port", &req.Port),
		When(Equals("action", spp.ActionAttach), Vlan("vlan", &req.Vlan)),
	)
	if err != nil {
		return ComponentPort{}, err
	}
	return req, nil
}

// ClassifierRule adds or deletes a classifier table entry. VlanID is only
// set when Type is "vlan".
type ClassifierRule struct {
	Action string
	Type   string
	Port   spp.Port
	MAC    string
	VlanID int
}

// DecodeClassifier validates a classifier table body.
func DecodeClassifier(b Body) (ClassifierRule, error) {
	var req ClassifierRule
	err := Check(b,
		Require("action", "type", "port", "mac_address"),
		OneOf("action", &req.Action, spp.ActionAdd, spp.ActionDel, spp.ActionDelete),
		OneOf("type", &req.Type, spp.ClassifierMAC, spp.ClassifierVLAN),
		Port("port", &req.Port),
		MAC("mac_address", &req.MAC),
		When(Equals("type", spp.ClassifierVLAN), IntegerParseable("vlan", &req.VlanID)),
	)
	if err != nil {
		return ClassifierRule{}, err
	}
	req.Action = spp.NormalizeDel(req.Action)
	return req, nil
}

// NormalizedMAC returns the MAC address in colon-separated lower case form.
func (r ClassifierRule) NormalizedMAC() string {
	hw, err := net.ParseMAC(r.MAC)
	if err != nil {
		return r.MAC
	}
	return hw.String()
}

// NFVForward starts or stops forwarding on a network-function proxy.
type NFVForward struct {
	Action string
}

// DecodeNFVForward validates a forward control body.
func DecodeNFVForward(b Body) (NFVForward, error) {
	var req NFVForward
	err := Check(b,
		Require("action"),
		OneOf("action", &req.Action, spp.ActionStart, spp.ActionStop),
	)
	if err != nil {
		return NFVForward{}, err
	}
	return req, nil
}

// NFVPort adds a port to or deletes it from a network-function proxy.
type NFVPort struct {
	Action string
	Port   spp.Port
}

// DecodeNFVPort validates an nfv port body.
func DecodeNFVPort(b Body) (NFVPort, error) {
	var req NFVPort
	err := Check(b,
		Require("action", "port"),
		OneOf("action", &req.Action, spp.ActionAdd, spp.ActionDel, spp.ActionDelete),
		Port("port", &req.Port),
	)
	if err != nil {
		return NFVPort{}, err
	}
	req.Action = spp.NormalizeDel(req.Action)
	return req, nil
}

// NFVPatch links a source port to a destination port.
type NFVPatch struct {
	Src spp.Port
	Dst spp.Port
}

// DecodeNFVPatch validates a patch body.
func DecodeNFVPatch(b Body) (NFVPatch, error) {
	var req NFVPatch
	err := Check(b,
		Require("src", "dst"),
		Port("src", &req.Src),
		Port("dst", &req.Dst),
	)
	if err != nil {
		return NFVPatch{}, err
	}
	return req, nil
}
