package components

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/proc"
)

// WorkerListener accepts worker connections into the registry. A failing
// accept loop is restarted and rebinds the worker ports.
type WorkerListener struct {
	reg      *proc.Registry
	listener *proc.Listener
	runner   *RestartableRunner
	priAddr  net.Addr
	secAddr  net.Addr
	running  bool
	mu       sync.Mutex
}

// NewWorkerListener creates a listener component for the primary and
// secondary ports.
func NewWorkerListener(reg *proc.Registry, priAddr, secAddr string, timeout time.Duration) *WorkerListener {
	return &WorkerListener{
		reg:      reg,
		listener: proc.NewListener(reg, priAddr, secAddr, timeout),
	}
}

// Name returns the component name.
func (w *WorkerListener) Name() string {
	return "worker-listener"
}

// Start binds both worker ports and accepts connections in the background.
// Bind errors are returned here rather than retried.
func (w *WorkerListener) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("worker listener is already running")
	}

	pri, sec, err := w.listener.Listen(context.Background())
	if err != nil {
		return err
	}
	w.priAddr, w.secAddr = pri.Addr(), sec.Addr()

	w.runner = NewRestartableRunner(RunnerConfig{Name: w.Name()}, func(ctx context.Context, attempt int) error {
		if attempt == 0 {
			return w.listener.ServeListeners(ctx, pri, sec)
		}
		log.Infof("Rebinding worker ports %s and %s", w.priAddr, w.secAddr)
		return w.listener.Serve(ctx)
	})
	if err := w.runner.Start(context.Background()); err != nil {
		_ = pri.Close()
		_ = sec.Close()
		return err
	}

	w.running = true
	return nil
}

// Stop closes the worker ports and every registered worker connection.
func (w *WorkerListener) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return fmt.Errorf("worker listener is not running")
	}

	log.Infof("Stopping worker listener...")
	err := w.runner.Stop()
	w.reg.CloseAll()

	w.running = false
	return err
}

// Addrs returns the bound primary and secondary addresses.
func (w *WorkerListener) Addrs() (pri, sec net.Addr) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.priAddr, w.secAddr
}

// IsRunning returns whether the listener is accepting workers.
func (w *WorkerListener) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
