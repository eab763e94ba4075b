package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/proc"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/validation"
)

// maxBodySize bounds request bodies. Command bodies are a handful of keys.
const maxBodySize = 64 << 10

// Registry is the view of the worker registry the API needs.
type Registry interface {
	Lookup(id int) (proc.Proc, bool)
	List() []proc.Summary
	CountByType() map[spp.ProcType]int
}

// Handler serves all API endpoints.
type Handler struct {
	reg Registry
}

// NewHandler creates a handler over reg.
func NewHandler(reg Registry) *Handler {
	return &Handler{reg: reg}
}

// endpointFunc returns the result of a request, nil for an empty response.
type endpointFunc func(r *http.Request) (any, error)

// endpoint adapts fn to an http.HandlerFunc and shapes its result.
func endpoint(fn endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fn(r)
		if err != nil {
			WriteError(w, err)
			return
		}
		writeResult(w, result)
	}
}

// writeResult answers 204 for a nil result and 200 with JSON otherwise.
func writeResult(w http.ResponseWriter, result any) {
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		WriteError(w, errors.NewInternalError("failed to encode response", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeBody reads a JSON object body regardless of the declared content type.
// Numbers are kept as json.Number so integers can be told from floats.
func decodeBody(r *http.Request) (validation.Body, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, errors.NewInvalidBodyError(err)
	}
	log.Debugf("%s %s body: %s", r.Method, r.URL.Path, data)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.NewInvalidBodyError(err)
	}
	if dec.More() {
		return nil, errors.NewInvalidBodyError(fmt.Errorf("unexpected data after JSON object"))
	}

	body, ok := v.(map[string]any)
	if !ok {
		return nil, errors.NewInvalidBodyError(fmt.Errorf("body must be a JSON object"))
	}
	return body, nil
}

// clientID reads the {id} path parameter.
func clientID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeWorkerNotFound, fmt.Sprintf("sec_id %s not found.", raw))
	}
	return id, nil
}

// componentName reads the {name} path parameter. chi hands back the escaped
// segment when the request path carries a non-canonical escape, so it is
// decoded here. Names with whitespace would split the worker command.
func componentName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", errors.InvalidValue("name", name)
		}
		name = decoded
	}
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return "", errors.InvalidValue("name", name)
	}
	return name, nil
}

// lookup resolves the {id} path parameter to a worker of type typ.
func (h *Handler) lookup(r *http.Request, typ spp.ProcType) (proc.Proc, error) {
	id, err := clientID(r)
	if err != nil {
		return nil, err
	}

	p, ok := h.reg.Lookup(id)
	if !ok || p.Type() != typ {
		return nil, errors.WorkerNotFound(id)
	}
	return p, nil
}

func (h *Handler) vfProc(r *http.Request) (proc.VF, error) {
	p, err := h.lookup(r, spp.ProcVF)
	if err != nil {
		return nil, err
	}
	vf, ok := p.(proc.VF)
	if !ok {
		return nil, errors.WorkerNotFound(p.ID())
	}
	return vf, nil
}

func (h *Handler) nfvProc(r *http.Request) (proc.NFV, error) {
	p, err := h.lookup(r, spp.ProcNFV)
	if err != nil {
		return nil, err
	}
	nfv, ok := p.(proc.NFV)
	if !ok {
		return nil, errors.WorkerNotFound(p.ID())
	}
	return nfv, nil
}

func (h *Handler) primaryProc() (proc.Primary, error) {
	p, ok := h.reg.Lookup(spp.PrimaryID)
	if !ok || p.Type() != spp.ProcPrimary {
		return nil, errors.PrimaryNotFound()
	}
	pri, ok := p.(proc.Primary)
	if !ok {
		return nil, errors.PrimaryNotFound()
	}
	return pri, nil
}
