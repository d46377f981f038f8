// Package config loads curve libraries and animation definitions from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/curve"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration.
type File struct {
	LogLevel   string                  `yaml:"log_level,omitempty"`
	TickRate   int                     `yaml:"tick_rate,omitempty"`
	Curves     map[string]*curve.Curve `yaml:"curves,omitempty"`
	Animations []Animation             `yaml:"animations,omitempty"`
}

// Animation describes one animator.
type Animation struct {
	Name      string          `yaml:"name"`
	Kind      anim.Kind       `yaml:"kind"`
	From      Value           `yaml:"from"`
	To        Value           `yaml:"to"`
	Duration  *float64        `yaml:"duration,omitempty"`
	Delay     float64         `yaml:"delay,omitempty"`
	Repeat    anim.RepeatMode `yaml:"repeat"`
	Easing    EasingRef       `yaml:"easing,omitempty"`
	AutoStart bool            `yaml:"auto_start,omitempty"`
}

// DefaultTickRate is the scheduler rate used when the file does not set one.
const DefaultTickRate = 60

// Load reads and validates a configuration file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return file, nil
}

// Decode reads and validates a configuration from r. An empty document is valid.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks that every animation is well formed and that every easing reference resolves.
func (f *File) Validate() error {
	if f.TickRate < 0 {
		return fmt.Errorf("tick_rate must not be negative, got %d", f.TickRate)
	}

	for name, c := range f.Curves {
		if c == nil {
			return fmt.Errorf("curve %q: %w", name, curve.ErrHandleCount)
		}
	}

	seen := make(map[string]bool, len(f.Animations))
	for i := range f.Animations {
		a := &f.Animations[i]
		if a.Name == "" {
			return fmt.Errorf("animation %d has no name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, a.Name)
		}
		seen[a.Name] = true

		if a.Duration != nil && *a.Duration <= 0 {
			return fmt.Errorf("animation %q: %w: %v", a.Name, ErrInvalidDuration, *a.Duration)
		}
		if a.Delay < 0 {
			return fmt.Errorf("animation %q: %w: negative delay %v", a.Name, ErrInvalidDuration, a.Delay)
		}

		wantVec := a.Kind != anim.KindFloat
		if a.From.IsVec != wantVec || a.To.IsVec != wantVec {
			return fmt.Errorf("animation %q: %w: %s animations take %s values", a.Name, ErrInvalidValue, a.Kind, valueShape(wantVec))
		}

		if _, err := f.Curve(a.Easing); err != nil {
			return fmt.Errorf("animation %q: %w", a.Name, err)
		}
	}
	return nil
}

func valueShape(vec bool) string {
	if vec {
		return "[x, y, z]"
	}
	return "scalar"
}

// Rate returns the configured tick rate or DefaultTickRate.
func (f *File) Rate() int {
	if f.TickRate == 0 {
		return DefaultTickRate
	}
	return f.TickRate
}

// Animation returns the named animation definition.
func (f *File) Animation(name string) (*Animation, error) {
	for i := range f.Animations {
		if f.Animations[i].Name == name {
			return &f.Animations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
}

// Curve returns a fresh curve for ref, looking names up in the file's curves and then in
// the presets. An empty reference yields the default curve.
func (f *File) Curve(ref EasingRef) (*curve.Curve, error) {
	switch {
	case ref.Inline != nil:
		return ref.Inline.Clone(), nil
	case ref.Name == "":
		return curve.Default(), nil
	}
	if c := f.Curves[ref.Name]; c != nil {
		return c.Clone(), nil
	}
	c, err := curve.Preset(ref.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, ref.Name)
	}
	return c, nil
}

// Sinks are the listeners and target an animation built from config writes to.
type Sinks struct {
	Update anim.UpdateFunc
	End    anim.EndFunc
	Target anim.Target
}

// Build creates an animator from the definition. Named curves are taken from lib so
// that later reloads reach the animator; lib may be nil.
func (a *Animation) Build(lib *Library, sinks Sinks) (*anim.Animator, error) {
	var (
		c   *curve.Curve
		err error
	)
	if lib != nil {
		c, err = lib.Resolve(a.Easing)
	} else {
		c, err = (&File{}).Curve(a.Easing)
	}
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", a.Name, err)
	}

	var animator *anim.Animator
	if a.Kind == anim.KindFloat {
		animator = anim.NewFloat(a.From.Scalar, a.To.Scalar, sinks.Update)
	} else {
		animator = anim.NewVector(a.From.Vector, a.To.Vector, a.Kind, sinks.Target)
	}

	if a.Duration != nil {
		animator.WithDuration(*a.Duration)
	}
	return animator.
		WithDelay(a.Delay).
		WithRepeat(a.Repeat).
		WithEasing(c).
		WithEndAction(sinks.End).
		WithAutoStart(a.AutoStart), nil
}

// Build creates an animator from the named definition, sharing named curves through lib.
func (f *File) Build(name string, lib *Library, sinks Sinks) (*anim.Animator, error) {
	a, err := f.Animation(name)
	if err != nil {
		return nil, err
	}
	return a.Build(lib, sinks)
}
