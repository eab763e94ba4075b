package api

import (
	"net/http"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/status"
	"github.com/maksimkurb/spp-ctl/src/internal/validation"
)

// GetVF returns the status of a virtual forwarder.
func (h *Handler) GetVF(r *http.Request) (any, error) {
	vf, err := h.vfProc(r)
	if err != nil {
		return nil, err
	}

	report, err := vf.Status()
	if err != nil {
		return nil, err
	}
	return status.ConvertVF(report), nil
}

// StartComponent starts a component on a virtual forwarder.
func (h *Handler) StartComponent(r *http.Request) (any, error) {
	vf, err := h.vfProc(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeComponentStart(body)
	if err != nil {
		return nil, err
	}

	return nil, vf.StartComponent(req.Name, req.Core, req.Type)
}

// StopComponent stops a component. The worker decides whether it exists.
func (h *Handler) StopComponent(r *http.Request) (any, error) {
	vf, err := h.vfProc(r)
	if err != nil {
		return nil, err
	}
	name, err := componentName(r)
	if err != nil {
		return nil, err
	}

	return nil, vf.StopComponent(name)
}

// ComponentPort attaches a port to or detaches it from a component.
func (h *Handler) ComponentPort(r *http.Request) (any, error) {
	vf, err := h.vfProc(r)
	if err != nil {
		return nil, err
	}
	name, err := componentName(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeComponentPort(body)
	if err != nil {
		return nil, err
	}

	if req.Action == spp.ActionDetach {
		return nil, vf.PortDel(req.Port, req.Dir, name)
	}

	op, vid, pcp := req.Vlan.TagOperation()
	return nil, vf.PortAdd(req.Port, req.Dir, name, op, vid, pcp)
}

// Classifier adds or deletes a classifier table entry.
func (h *Handler) Classifier(r *http.Request) (any, error) {
	vf, err := h.vfProc(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeClassifier(body)
	if err != nil {
		return nil, err
	}

	mac := req.NormalizedMAC()
	switch {
	case req.Action == spp.ActionAdd && req.Type == spp.ClassifierMAC:
		err = vf.SetClassifierTable(mac, req.Port)
	case req.Action == spp.ActionAdd:
		err = vf.SetClassifierTableWithVlan(mac, req.Port, req.VlanID)
	case req.Type == spp.ClassifierMAC:
		err = vf.ClearClassifierTable(mac, req.Port)
	default:
		err = vf.ClearClassifierTableWithVlan(mac, req.Port, req.VlanID)
	}
	return nil, err
}
