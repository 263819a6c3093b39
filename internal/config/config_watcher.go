package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher hot-reloads the config file and hands every successfully parsed
// revision to the registered callback. Reload failures keep the previous
// configuration in effect.
type Watcher struct {
	path     string
	onChange func(*Config)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher starts watching path. onChange runs on the watcher goroutine;
// callers are expected to swap the config atomically.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	w := &Watcher{path: path, onChange: onChange, stopCh: make(chan struct{})}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}
	// Watch the directory too so atomic writes (rename) are caught.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		log.WithError(err).WithField("dir", filepath.Dir(path)).Warn("failed to watch config directory")
	}

	log.WithField("path", path).Info("config watcher started")
	go w.run(fw)
	return w, nil
}

func (w *Watcher) run(fw *fsnotify.Watcher) {
	defer fw.Close()

	// Debounce rapid write sequences into a single reload.
	var debounce *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if event.Name != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDuration, w.reload)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("config watcher error")
		case <-w.stopCh:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		log.WithError(err).WithField("path", w.path).Warn("failed to reload config")
		return
	}
	log.WithField("path", w.path).Info("configuration reloaded")
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Stop terminates the watcher goroutine.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}
