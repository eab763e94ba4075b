package components

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/maksimkurb/spp-ctl/src/internal/api"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// APIServer manages the HTTP API server
type APIServer struct {
	bindAddr   string
	reg        api.Registry
	opts       api.Options
	httpServer *http.Server
	listener   net.Listener
	running    bool
	mu         sync.Mutex
}

// NewAPIServer creates a new API server component
func NewAPIServer(bindAddr string, reg api.Registry, opts api.Options) *APIServer {
	return &APIServer{
		bindAddr: bindAddr,
		reg:      reg,
		opts:     opts,
	}
}

// Name returns the component name.
func (a *APIServer) Name() string {
	return "api-server"
}

// Start binds the API address and serves requests in the background.
func (a *APIServer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("API server is already running")
	}

	ln, err := net.Listen("tcp", a.bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.bindAddr, err)
	}
	a.listener = ln

	a.httpServer = &http.Server{
		Handler:      api.NewRouter(a.reg, a.opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infof("API server listening on http://%s", ln.Addr())

	// Start server in goroutine
	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Errorf("API server error: %v", err)
		}
	}(a.httpServer)

	a.running = true
	return nil
}

// Stop shuts the API server down, waiting for in-flight requests.
func (a *APIServer) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return fmt.Errorf("API server is not running")
	}

	log.Infof("Stopping API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
		_ = a.httpServer.Close()
	}

	a.running = false
	log.Infof("API server stopped")
	return nil
}

// Addr returns the bound address, or nil when the server is not running.
func (a *APIServer) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return nil
	}
	return a.listener.Addr()
}

// IsRunning returns whether the API server is running
func (a *APIServer) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
