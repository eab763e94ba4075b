package api

import (
	"net/http"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// statusCode maps a domain error code onto an HTTP status.
func statusCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeMissingKey,
		errors.ErrCodeInvalidValue,
		errors.ErrCodeInvalidBody,
		errors.ErrCodeWorkerCommand:
		return http.StatusBadRequest
	case errors.ErrCodeWorkerNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a plain-text response with the status of its code.
func WriteError(w http.ResponseWriter, err error) {
	status := statusCode(errors.CodeOf(err))
	if status >= http.StatusInternalServerError {
		log.Errorf("Request failed: %v", err)
	}
	writeText(w, status, err.Error())
}

// WriteNotFound writes a 404 for an unmatched route.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
