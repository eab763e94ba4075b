package components

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// DefaultDebounceInterval is the quiet period after the last change to the
// configuration file before OnChange runs. Editors often write a file in
// several steps.
const DefaultDebounceInterval = 500 * time.Millisecond

// ConfigWatcher calls OnChange when the configuration file is written.
// The parent directory is watched so that atomic renames are seen too.
type ConfigWatcher struct {
	path     string
	onChange func()
	debounce time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	timer     *time.Timer
	running   bool
}

// NewConfigWatcher creates a watcher for path.
func NewConfigWatcher(path string, debounce time.Duration, onChange func()) *ConfigWatcher {
	if debounce == 0 {
		debounce = DefaultDebounceInterval
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &ConfigWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: debounce,
	}
}

// Name returns the component name.
func (w *ConfigWatcher) Name() string {
	return "config-watcher"
}

// Start begins watching the configuration file.
func (w *ConfigWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("config watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.fsWatcher = watcher
	w.stopCh = make(chan struct{})
	w.running = true

	go w.processEvents(watcher.Events, watcher.Errors, w.stopCh)

	log.Infof("Watching %s for changes", w.path)
	return nil
}

// Stop stops watching.
func (w *ConfigWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return fmt.Errorf("config watcher is not running")
	}

	close(w.stopCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.running = false
	return w.fsWatcher.Close()
}

func (w *ConfigWatcher) processEvents(events <-chan fsnotify.Event, errs <-chan error, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debugf("Configuration file changed: %s", event.Name)
			w.trigger()

		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Warnf("File watcher error: %v", err)
		}
	}
}

// trigger schedules OnChange after the debounce interval.
func (w *ConfigWatcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()

		if running && w.onChange != nil {
			w.onChange()
		}
	})
}
