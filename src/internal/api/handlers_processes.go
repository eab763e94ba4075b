package api

import (
	"net/http"
)

// ListProcesses lists every registered worker regardless of type.
func (h *Handler) ListProcesses(r *http.Request) (any, error) {
	return h.reg.List(), nil
}
