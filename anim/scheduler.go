package anim

import (
	"context"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Passes    int64
	Ticks     int64
	Applied   int64
	Looped    int64
	Flipped   int64
	Finished  int64
	Cancelled int64
	Live      int

	MinPassDuration  time.Duration
	MaxPassDuration  time.Duration
	AvgPassDuration  time.Duration
	LastPassDuration time.Duration

	SystemCount int
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type durationStats struct {
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func newDurationStats() durationStats {
	return durationStats{min: time.Duration(1<<63 - 1)}
}

func (d *durationStats) record(duration time.Duration) {
	d.count++
	d.last = duration
	d.total += duration
	if duration < d.min {
		d.min = duration
	}
	if duration > d.max {
		d.max = duration
	}
}

func (d *durationStats) avg() time.Duration {
	if d.count == 0 {
		return 0
	}
	return d.total / time.Duration(d.count)
}

type systemEntry struct {
	system System
	name   string
	stats  durationStats
}

// Scheduler ticks every animator of a registry once per pass using a single clock
// reading, then runs registered systems, flushes queued commands and removes
// finished or cancelled animators.
type Scheduler struct {
	registry *Registry
	clock    Clock
	logger   *zap.Logger
	commands *Commands
	systems  []*systemEntry
	pending  []Handle

	lastNow float64
	passes  int64
	pass    durationStats

	ticks, applied, looped, flipped, finished, cancelled int64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger lifecycle events are written to.
func WithLogger(logger *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates a scheduler for the given registry and clock.
func NewScheduler(registry *Registry, clock Clock, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		registry: registry,
		clock:    clock,
		logger:   zap.NewNop(),
		commands: newCommands(),
		pass:     newDurationStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry the scheduler ticks.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Commands returns the buffer flushed at the end of every pass.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Spawn registers an animator. Auto-start animators are started at the time of the next pass.
func (s *Scheduler) Spawn(a *Animator) Handle {
	h := s.registry.Add(a)
	if a.AutoStart() {
		s.pending = append(s.pending, h)
	}
	s.logger.Debug("animator spawned",
		zap.Uint64("handle", uint64(h)),
		zap.Stringer("kind", a.Kind()),
		zap.Stringer("repeat", a.Repeat()),
	)
	return h
}

// SpawnOwned registers an animator and attaches it to owner.
func (s *Scheduler) SpawnOwned(owner uint64, a *Animator) Handle {
	h := s.Spawn(a)
	s.registry.Attach(owner, h)
	return h
}

// Start starts or restarts the animator at the current clock time.
func (s *Scheduler) Start(h Handle) bool {
	a := s.registry.Get(h)
	if a == nil {
		return false
	}
	a.Start(s.clock.Now())
	return true
}

// Cancel cancels an animator immediately. It is removed from the registry at the end of
// the current or next pass.
func (s *Scheduler) Cancel(h Handle) bool {
	a := s.registry.Get(h)
	if a == nil || a.Done() {
		return false
	}
	a.Cancel()
	s.logger.Debug("animator cancelled", zap.Uint64("handle", uint64(h)))
	return true
}

// CancelOwner cancels every animator attached to owner.
func (s *Scheduler) CancelOwner(owner uint64) int {
	n := s.registry.CancelOwner(owner)
	if n > 0 {
		s.logger.Debug("owner animators cancelled", zap.Uint64("owner", owner), zap.Int("count", n))
	}
	return n
}

// Register adds a system executed after the animators on every pass.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &systemEntry{
		system: system,
		name:   systemType.Name(),
		stats:  newDurationStats(),
	})
}

// Once runs a single pass at the current clock time.
func (s *Scheduler) Once() {
	now := s.clock.Now()
	start := time.Now()

	var dt float64
	if s.passes > 0 {
		dt = now - s.lastNow
	}
	s.lastNow = now
	s.passes++

	s.startPending(now)

	for h, a := range s.registry.All() {
		step := a.Tick(now)
		if step != StepNone {
			s.ticks++
		}
		s.record(h, step)
	}

	frame := &UpdateFrame{
		Now:       now,
		DeltaTime: dt,
		Commands:  s.commands,
		Registry:  s.registry,
	}
	for _, entry := range s.systems {
		systemStart := time.Now()
		entry.system.Execute(frame)
		entry.stats.record(time.Since(systemStart))
	}

	s.commands.Flush(s)
	s.sweep()

	s.pass.record(time.Since(start))
}

func (s *Scheduler) startPending(now float64) {
	for _, h := range s.pending {
		if a := s.registry.Get(h); a != nil {
			if _, started := a.StartedAt(); !started {
				a.Start(now)
			}
		}
	}
	s.pending = s.pending[:0]
}

func (s *Scheduler) record(h Handle, step Step) {
	switch step {
	case StepApplied:
		s.applied++
	case StepLooped:
		s.looped++
		s.logger.Debug("animator looped", zap.Uint64("handle", uint64(h)))
	case StepFlipped:
		s.flipped++
		s.logger.Debug("animator reversed", zap.Uint64("handle", uint64(h)))
	case StepFinished:
		s.finished++
		s.logger.Debug("animator finished", zap.Uint64("handle", uint64(h)))
	}
}

func (s *Scheduler) sweep() {
	var dead []Handle
	for h, a := range s.registry.All() {
		if a.Done() {
			dead = append(dead, h)
			if a.State() == Cancelled {
				s.cancelled++
			}
		}
	}
	for _, h := range dead {
		s.registry.Remove(h)
	}
}

// Run executes passes at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once()
		}
	}
}

// GetStats returns statistics about scheduler execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Passes:           s.passes,
		Ticks:            s.ticks,
		Applied:          s.applied,
		Looped:           s.looped,
		Flipped:          s.flipped,
		Finished:         s.finished,
		Cancelled:        s.cancelled,
		Live:             s.registry.Len(),
		MaxPassDuration:  s.pass.max,
		AvgPassDuration:  s.pass.avg(),
		LastPassDuration: s.pass.last,
		SystemCount:      len(s.systems),
		Systems:          make([]SystemStats, len(s.systems)),
	}
	if s.pass.count > 0 {
		stats.MinPassDuration = s.pass.min
	}

	for i, entry := range s.systems {
		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: entry.stats.count,
			MinDuration:    entry.stats.min,
			MaxDuration:    entry.stats.max,
			AvgDuration:    entry.stats.avg(),
			LastDuration:   entry.stats.last,
			TotalDuration:  entry.stats.total,
		}
	}

	return stats
}
