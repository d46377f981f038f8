package anim

import (
	"fmt"
	"math"

	"github.com/plus3/tween/curve"
)

// UpdateFunc receives the interpolated value of a float animator.
type UpdateFunc func(value float64)

// EndFunc is invoked once when a Destroy animator completes.
type EndFunc func()

// Animator interpolates a scalar or vector from a source to a target value over time,
// shaped by an easing curve. It is advanced only by Tick; it never reads a clock itself.
//
// The builder methods mutate the animator and return it so configuration can be chained
// before the first tick.
type Animator struct {
	from, to       float64
	fromVec, toVec Vec3
	kind           Kind
	duration       float64
	delay          float64
	repeat         RepeatMode
	curve          *curve.Curve
	autoStart      bool
	target         Target
	updates        []UpdateFunc
	ends           []EndFunc
	startedAt      float64
	started        bool
	reverse        bool
	state          State
	progress       float64
}

func newAnimator(kind Kind) *Animator {
	return &Animator{
		kind:     kind,
		duration: 1,
		repeat:   Destroy,
		curve:    curve.Default(),
	}
}

// NewFloat creates a scalar animator. onUpdate may be nil.
func NewFloat(from, to float64, onUpdate UpdateFunc) *Animator {
	a := newAnimator(KindFloat)
	a.from = from
	a.to = to
	return a.WithUpdate(onUpdate)
}

// NewVector creates a position, rotation or scale animator writing into target.
// It panics when kind is not a vector kind.
func NewVector(from, to Vec3, kind Kind, target Target) *Animator {
	if !kind.valid() || kind == KindFloat {
		panic(fmt.Sprintf("anim: NewVector requires a vector kind, got %s", kind))
	}
	a := newAnimator(kind)
	a.fromVec = from
	a.toVec = to
	a.target = target
	return a
}

// WithDuration sets the length of one cycle in seconds.
func (a *Animator) WithDuration(d float64) *Animator {
	a.duration = d
	return a
}

// WithEasing sets the curve used to remap progress. A nil curve restores the default.
func (a *Animator) WithEasing(c *curve.Curve) *Animator {
	if c == nil {
		c = curve.Default()
	}
	a.curve = c
	return a
}

// WithDelay sets the wait in seconds between a (re)start and the first applied value.
func (a *Animator) WithDelay(d float64) *Animator {
	a.delay = d
	return a
}

// WithRepeat sets what happens when a cycle completes.
func (a *Animator) WithRepeat(mode RepeatMode) *Animator {
	a.repeat = mode
	return a
}

// WithEndAction registers an additional completion listener.
func (a *Animator) WithEndAction(fn EndFunc) *Animator {
	if fn != nil {
		a.ends = append(a.ends, fn)
	}
	return a
}

// WithUpdate registers an additional listener for float values.
func (a *Animator) WithUpdate(fn UpdateFunc) *Animator {
	if fn != nil {
		a.updates = append(a.updates, fn)
	}
	return a
}

// WithTarget replaces the vector sink.
func (a *Animator) WithTarget(t Target) *Animator {
	a.target = t
	return a
}

// WithAutoStart makes the scheduler start the animator on the first pass after it is spawned.
func (a *Animator) WithAutoStart(auto bool) *Animator {
	a.autoStart = auto
	return a
}

// Start begins a cycle at now. Calling it on a running animator restarts the cycle;
// the ping-pong direction is kept.
func (a *Animator) Start(now float64) {
	if a.Done() {
		return
	}
	a.startedAt = now
	a.started = true
	a.state = Active
}

// Cancel stops the animator without firing end actions. Cancelling twice is a no-op.
func (a *Animator) Cancel() {
	if a.Done() {
		return
	}
	a.state = Cancelled
}

// Done reports whether the animator finished or was cancelled.
func (a *Animator) Done() bool {
	return a.state == Finished || a.state == Cancelled
}

// Tick advances the animator to now and reports what happened.
func (a *Animator) Tick(now float64) Step {
	if !a.started || a.Done() {
		return StepNone
	}

	elapsed := now - (a.startedAt + a.delay)
	if elapsed < 0 {
		return StepDelayed
	}

	percent, inRange := a.percent(elapsed)
	if a.reverse {
		percent = 1 - percent
	}
	over := !inRange || percent > 1

	switch {
	case over && a.repeat == Destroy:
		a.finish()
		return StepFinished
	case over && a.repeat == Loop:
		a.startedAt = now
		return StepLooped
	case (over || percent < 0) && a.repeat == PingPong:
		a.reverse = !a.reverse
		a.startedAt = now
		return StepFlipped
	}

	a.apply(a.curve.Evaluate(percent))
	return StepApplied
}

// percent converts elapsed seconds into cycle progress. A non-positive duration or a
// non-finite result is reported as out of range.
func (a *Animator) percent(elapsed float64) (float64, bool) {
	if a.duration <= 0 {
		return math.Inf(1), false
	}
	p := elapsed / a.duration
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return math.Inf(1), false
	}
	return p, true
}

func (a *Animator) finish() {
	a.apply(1)
	a.state = Finished
	for _, fn := range a.ends {
		fn()
	}
}

func (a *Animator) apply(eased float64) {
	a.progress = eased
	switch a.kind {
	case KindFloat:
		value := a.to
		if eased != 1 {
			value = lerp(a.from, a.to, eased)
		}
		for _, fn := range a.updates {
			fn(value)
		}
	case KindPosition, KindRotation, KindScale:
		value := a.toVec
		if eased != 1 {
			value = a.fromVec.Lerp(a.toVec, eased)
		}
		if a.target == nil {
			return
		}
		switch a.kind {
		case KindPosition:
			a.target.SetPosition(value)
		case KindRotation:
			a.target.SetRotation(value)
		default:
			a.target.SetScale(value)
		}
	default:
		panic(fmt.Sprintf("anim: animator has malformed kind %d", a.kind))
	}
}

func (a *Animator) State() State { return a.state }
func (a *Animator) Kind() Kind { return a.kind }
func (a *Animator) Repeat() RepeatMode { return a.repeat }
func (a *Animator) Reversed() bool { return a.reverse }
func (a *Animator) Duration() float64 { return a.duration }
func (a *Animator) Delay() float64 { return a.delay }
func (a *Animator) Curve() *curve.Curve { return a.curve }
func (a *Animator) AutoStart() bool { return a.autoStart }
func (a *Animator) Target() Target { return a.target }
func (a *Animator) Range() (float64, float64) { return a.from, a.to }
func (a *Animator) VectorRange() (Vec3, Vec3) { return a.fromVec, a.toVec }

// StartedAt returns the start of the current cycle and whether the animator was started.
func (a *Animator) StartedAt() (float64, bool) {
	return a.startedAt, a.started
}

// Progress returns the eased fraction most recently applied.
func (a *Animator) Progress() float64 {
	return a.progress
}
