package api

import (
	"net/http"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/status"
	"github.com/maksimkurb/spp-ctl/src/internal/validation"
)

// GetNFV returns the status of a network-function proxy. A report that
// cannot be parsed yields an empty object.
func (h *Handler) GetNFV(r *http.Request) (any, error) {
	nfv, err := h.nfvProc(r)
	if err != nil {
		return nil, err
	}

	report, err := nfv.Status()
	if err != nil {
		return nil, err
	}
	return status.ConvertNFV(nfv.ID(), report), nil
}

// Forward starts or stops forwarding.
func (h *Handler) Forward(r *http.Request) (any, error) {
	nfv, err := h.nfvProc(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeNFVForward(body)
	if err != nil {
		return nil, err
	}

	if req.Action == spp.ActionStart {
		return nil, nfv.Forward()
	}
	return nil, nfv.Stop()
}

// NFVPort adds or deletes a port.
func (h *Handler) NFVPort(r *http.Request) (any, error) {
	nfv, err := h.nfvProc(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeNFVPort(body)
	if err != nil {
		return nil, err
	}

	if req.Action == spp.ActionAdd {
		return nil, nfv.PortAdd(req.Port.Kind, req.Port.Index)
	}
	return nil, nfv.PortDel(req.Port.Kind, req.Port.Index)
}

// AddPatch links two ports.
func (h *Handler) AddPatch(r *http.Request) (any, error) {
	nfv, err := h.nfvProc(r)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(r)
	if err != nil {
		return nil, err
	}
	req, err := validation.DecodeNFVPatch(body)
	if err != nil {
		return nil, err
	}

	return nil, nfv.PatchAdd(req.Src, req.Dst)
}

// ResetPatches removes every patch. The request has no body.
func (h *Handler) ResetPatches(r *http.Request) (any, error) {
	nfv, err := h.nfvProc(r)
	if err != nil {
		return nil, err
	}
	return nil, nfv.PatchReset()
}
