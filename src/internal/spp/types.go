package spp

// ProcType identifies the kind of a worker process.
type ProcType string

const (
	ProcPrimary ProcType = "primary"
	ProcVF      ProcType = "vf"
	ProcNFV     ProcType = "nfv"
)

// PrimaryID is the registry id of the singleton primary process.
const PrimaryID = 0

// Valid reports whether t is a known process type.
func (t ProcType) Valid() bool {
	switch t {
	case ProcPrimary, ProcVF, ProcNFV:
		return true
	}
	return false
}

// Component types accepted by a virtual forwarder.
const (
	ComponentForward       = "forward"
	ComponentMerge         = "merge"
	ComponentClassifierMAC = "classifier_mac"
)

// ComponentTypes lists the component types in the order they are reported.
var ComponentTypes = []string{ComponentForward, ComponentMerge, ComponentClassifierMAC}

// Port directions relative to a component.
const (
	DirRX = "rx"
	DirTX = "tx"
)

// Directions lists the accepted port directions.
var Directions = []string{DirRX, DirTX}

// Action and classifier vocabulary.
const (
	ActionAttach = "attach"
	ActionDetach = "detach"
	ActionAdd    = "add"
	ActionDel    = "del"
	ActionStart  = "start"
	ActionStop   = "stop"

	// ActionDelete is accepted wherever ActionDel is.
	ActionDelete = "delete"

	ClassifierMAC  = "mac"
	ClassifierVLAN = "vlan"
)

// NormalizeDel folds the "delete" spelling into "del".
func NormalizeDel(action string) string {
	if action == ActionDelete {
		return ActionDel
	}
	return action
}
