package spp

import (
	"github.com/maksimkurb/spp-ctl/src/internal/errors"
)

// VlanOperation is the VLAN tag operation requested on attach.
type VlanOperation string

const (
	VlanNone VlanOperation = "none"
	VlanAdd  VlanOperation = "add"
	VlanDel  VlanOperation = "del"
)

// Tag operations understood by a virtual forwarder.
const (
	TagNone = "none"
	TagAdd  = "add_vlantag"
	TagDel  = "del_vlantag"
)

// VlanOp is a validated VLAN operation. ID and PCP are only meaningful for VlanAdd.
type VlanOp struct {
	Operation VlanOperation
	ID        int
	PCP       int
}

// NoVlan is the operation used when a request carries no vlan object.
var NoVlan = VlanOp{Operation: VlanNone}

// TagOperation translates the operation into the worker-level tag operation
// and its id/pcp pair. The pair is zero unless a tag is added.
func (v VlanOp) TagOperation() (op string, id int, pcp int) {
	switch v.Operation {
	case VlanAdd:
		return TagAdd, v.ID, v.PCP
	case VlanDel:
		return TagDel, 0, 0
	default:
		return TagNone, 0, 0
	}
}

// ParseVlanOp validates the vlan sub-object of an attach request.
//
// An absent or empty object resolves to NoVlan. Every failure is reported as
// InvalidValue("vlan", v) with the whole sub-object as value.
func ParseVlanOp(v any) (VlanOp, error) {
	if v == nil {
		return NoVlan, nil
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return VlanOp{}, errors.InvalidValue("vlan", v)
	}
	if len(obj) == 0 {
		return NoVlan, nil
	}

	op, _ := obj["operation"].(string)
	switch VlanOperation(NormalizeDel(op)) {
	case VlanNone:
		return NoVlan, nil
	case VlanDel:
		return VlanOp{Operation: VlanDel}, nil
	case VlanAdd:
		id, ok := ParseInt(obj["id"])
		if !ok {
			return VlanOp{}, errors.InvalidValue("vlan", v)
		}
		pcp, ok := ParseInt(obj["pcp"])
		if !ok {
			return VlanOp{}, errors.InvalidValue("vlan", v)
		}
		return VlanOp{Operation: VlanAdd, ID: id, PCP: pcp}, nil
	}

	return VlanOp{}, errors.InvalidValue("vlan", v)
}
