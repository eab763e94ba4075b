package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// idPattern restricts {id} to decimal digits. Anything else is unrouted.
const idPattern = "{id:[0-9]+}"

// Options tunes the router.
type Options struct {
	// EnableMetrics serves /metrics and records request metrics.
	EnableMetrics bool
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(reg Registry, opts Options) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)

	var metrics *Metrics
	if opts.EnableMetrics {
		metrics = NewMetrics(reg)
		r.Use(metrics.Middleware)
	}

	r.NotFound(WriteNotFound)
	r.MethodNotAllowed(WriteNotFound)

	h := NewHandler(reg)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/processes", endpoint(h.ListProcesses))

		r.Route("/vfs/"+idPattern, func(r chi.Router) {
			r.Get("/", endpoint(h.GetVF))
			r.Post("/components", endpoint(h.StartComponent))
			r.Delete("/components/{name}", endpoint(h.StopComponent))
			r.Put("/components/{name}/ports", endpoint(h.ComponentPort))
			r.Put("/classifier_table", endpoint(h.Classifier))
		})

		r.Route("/nfvs/"+idPattern, func(r chi.Router) {
			r.Get("/", endpoint(h.GetNFV))
			r.Put("/forward", endpoint(h.Forward))
			r.Put("/ports", endpoint(h.NFVPort))
			r.Put("/patches", endpoint(h.AddPatch))
			r.Delete("/patches", endpoint(h.ResetPatches))
		})

		r.Get("/primary/status", endpoint(h.GetPrimaryStatus))
		r.Delete("/primary/status", endpoint(h.ClearPrimaryStatus))
	})

	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}

	registerPprof(r)

	return r
}
