package config

import (
	"fmt"
	"slices"
	"sync"

	"github.com/plus3/tween/curve"
)

// Library hands out shared curves by name. A reload rewrites the handles of
// existing curves in place, so every animator holding one picks up the edit on
// its next tick.
//
// Library methods are safe to call from several goroutines, but Reload rebuilds
// sample tables that animators read while ticking; call it from the goroutine that
// drives the scheduler (for example through Commands.Defer).
type Library struct {
	mu     sync.Mutex
	curves map[string]*curve.Curve
}

// NewLibrary creates a library seeded with the named curves of file, which may be nil.
func NewLibrary(file *File) *Library {
	lib := &Library{curves: make(map[string]*curve.Curve)}
	if file != nil {
		lib.Reload(file)
	}
	return lib
}

// Resolve returns the curve an easing reference points at. Named curves and presets
// are shared; inline curves are private to the caller.
func (l *Library) Resolve(ref EasingRef) (*curve.Curve, error) {
	switch {
	case ref.Inline != nil:
		return ref.Inline.Clone(), nil
	case ref.Name == "":
		return curve.Default(), nil
	}
	return l.Get(ref.Name)
}

// Get returns the shared curve registered under name, falling back to presets.
func (l *Library) Get(name string) (*curve.Curve, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.curves[name]; ok {
		return c, nil
	}
	c, err := curve.Preset(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	l.curves[name] = c
	return c, nil
}

// Reload applies the named curves of file and returns the names whose handles changed
// or that were added, sorted. Curves missing from file are kept.
func (l *Library) Reload(file *File) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var changed []string
	for name, next := range file.Curves {
		if next == nil {
			continue
		}
		current, ok := l.curves[name]
		if !ok {
			l.curves[name] = next.Clone()
			changed = append(changed, name)
			continue
		}
		if current.Handles() != next.Handles() {
			current.SetHandles(next.Handle1, next.Handle2)
			changed = append(changed, name)
		}
	}
	slices.Sort(changed)
	return changed
}

// Load reads path and applies its curves with Reload.
func (l *Library) Load(path string) ([]string, error) {
	file, err := Load(path)
	if err != nil {
		return nil, err
	}
	return l.Reload(file), nil
}

// Names lists the curves currently held, sorted.
func (l *Library) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.curves))
	for name := range l.curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
