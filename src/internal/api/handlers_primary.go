package api

import (
	"net/http"

	"github.com/maksimkurb/spp-ctl/src/internal/status"
)

// GetPrimaryStatus returns the status of the primary process.
func (h *Handler) GetPrimaryStatus(r *http.Request) (any, error) {
	pri, err := h.primaryProc()
	if err != nil {
		return nil, err
	}

	report, err := pri.Status()
	if err != nil {
		return nil, err
	}
	return status.ConvertPrimary(report), nil
}

// ClearPrimaryStatus resets the primary's statistics.
func (h *Handler) ClearPrimaryStatus(r *http.Request) (any, error) {
	pri, err := h.primaryProc()
	if err != nil {
		return nil, err
	}
	return nil, pri.Clear()
}
