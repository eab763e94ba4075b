//go:build !dev

package api

import "github.com/go-chi/chi/v5"

// registerPprof is a no-op outside dev builds.
func registerPprof(chi.Router) {}
