package components

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// RunFunc is the blocking function of a runner. attempt is 0 on the first
// run and counts restarts after that, so the worker listener can serve the
// ports bound at startup first and rebind them on every restart.
type RunFunc func(ctx context.Context, attempt int) error

// RestartableRunner runs a blocking function in a goroutine and restarts it
// with exponential backoff when it fails or panics. A worker accept loop
// that dies is brought back without dropping the workers already
// registered, since their connections live outside the loop.
type RestartableRunner struct {
	name    string
	runFunc RunFunc
	cfg     RunnerConfig

	mu           sync.RWMutex
	running      bool
	cancel       context.CancelFunc
	done         chan struct{}
	lastError    error
	restartCount int
}

// RunnerConfig contains configuration for RestartableRunner.
type RunnerConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // Initial backoff (default: 1s)
	MaxBackoff     time.Duration // Max backoff (default: 30s)
	StopTimeout    time.Duration // Wait for the function on Stop (default: 30s)
}

// NewRestartableRunner creates a new restartable runner.
func NewRestartableRunner(cfg RunnerConfig, runFunc RunFunc) *RestartableRunner {
	if cfg.RestartBackoff == 0 {
		cfg.RestartBackoff = time.Second
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	if cfg.StopTimeout == 0 {
		cfg.StopTimeout = 30 * time.Second
	}

	return &RestartableRunner{
		name:    cfg.Name,
		runFunc: runFunc,
		cfg:     cfg,
	}
}

// Start starts the runner in a goroutine.
func (r *RestartableRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%s is already running", r.name)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.running = true
	r.restartCount = 0
	r.lastError = nil

	go r.loop(ctx, r.done)

	return nil
}

// Stop cancels the function and waits for it to return.
func (r *RestartableRunner) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(r.cfg.StopTimeout):
		return fmt.Errorf("%s: timeout waiting for stop", r.name)
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	return nil
}

// IsRunning returns true if the runner is currently running.
func (r *RestartableRunner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// LastError returns the error of the last run.
func (r *RestartableRunner) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

// RestartCount returns the number of restarts that have occurred.
func (r *RestartableRunner) RestartCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.restartCount
}

func (r *RestartableRunner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	backoff := r.cfg.RestartBackoff

	for attempt := 0; ; attempt++ {
		err := r.runOnce(ctx, attempt)

		r.mu.Lock()
		r.lastError = err
		r.mu.Unlock()

		if ctx.Err() != nil {
			log.Debugf("%s: stopped", r.name)
			return
		}
		if err == nil {
			log.Infof("%s: exited cleanly", r.name)
			return
		}

		r.mu.Lock()
		r.restartCount++
		count := r.restartCount
		r.mu.Unlock()

		if r.cfg.MaxRestarts > 0 && count >= r.cfg.MaxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up. Last error: %v", r.name, r.cfg.MaxRestarts, err)
			return
		}

		log.Errorf("%s: failed: %v. Restarting in %v (restart #%d)", r.name, err, backoff, count)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > r.cfg.MaxBackoff {
			backoff = r.cfg.MaxBackoff
		}
	}
}

// runOnce runs the function once, turning a panic into an error.
func (r *RestartableRunner) runOnce(ctx context.Context, attempt int) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return r.runFunc(ctx, attempt)
}
