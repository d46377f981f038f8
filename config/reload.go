package config

import (
	"path/filepath"

	"github.com/plus3/tween/anim"
	"go.uber.org/zap"
)

// Reloader watches a configuration file and applies its curves to a Library. It is an
// anim.System: edits picked up by the watcher are applied through the command buffer
// at the end of a scheduler pass, never while animators are being ticked.
type Reloader struct {
	path    string
	library *Library
	logger  *zap.Logger
	watcher *Watcher
	files   chan *File
	done    chan struct{}
}

// NewReloader starts watching path. A nil logger discards reload reports.
func NewReloader(path string, library *Library, logger *zap.Logger) (*Reloader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path = filepath.Clean(path)
	watcher, err := NewWatcher(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	r := &Reloader{
		path:    path,
		library: library,
		logger:  logger,
		watcher: watcher,
		files:   make(chan *File, 1),
		done:    make(chan struct{}),
	}
	go r.watch()
	return r, nil
}

func (r *Reloader) watch() {
	defer close(r.done)
	for {
		select {
		case changed, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(changed) != r.path {
				continue
			}
			file, err := Load(r.path)
			if err != nil {
				r.logger.Warn("curve reload failed", zap.String("path", r.path), zap.Error(err))
				continue
			}
			select {
			case <-r.files:
			default:
			}
			r.files <- file
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (r *Reloader) Execute(frame *anim.UpdateFrame) {
	select {
	case file := <-r.files:
		frame.Commands.Defer(func() {
			if changed := r.library.Reload(file); len(changed) > 0 {
				r.logger.Info("curves reloaded", zap.String("path", r.path), zap.Strings("curves", changed))
			}
		})
	default:
	}
}

// Close stops watching.
func (r *Reloader) Close() error {
	err := r.watcher.Close()
	<-r.done
	return err
}
