package assets

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports shader file changes so callers can rebuild pipelines.
// Callbacks run on the watcher goroutine; callers hand results back to the
// render thread themselves (see Pending).
type Watcher struct {
	fw  *fsnotify.Watcher
	log *zap.Logger

	mu      sync.Mutex
	pending map[string]struct{}
	done    chan struct{}
}

// WatchShaders watches the shader asset directory for writes.
func WatchShaders(log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Join(Root, "shaders")); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		log:     log,
		pending: map[string]struct{}{},
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(ev.Name)
			w.mu.Lock()
			w.pending[name] = struct{}{}
			w.mu.Unlock()
			if w.log != nil {
				w.log.Info("shader changed", zap.String("file", name))
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Warn("shader watcher error", zap.Error(err))
			}
		case <-w.done:
			return
		}
	}
}

// Pending drains the set of shader files changed since the last call.
// Safe to call once per frame from the render thread.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for name := range w.pending {
		out = append(out, name)
	}
	w.pending = map[string]struct{}{}
	return out
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
