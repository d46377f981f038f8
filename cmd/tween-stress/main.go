package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/config"
	"github.com/plus3/tween/curve"
	"github.com/plus3/tween/internal/logging"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	animatorCount := flag.Int("animators", 10000, "The number of animators kept alive.")
	configPath := flag.String("config", "", "Optional YAML file whose animations are used as templates.")
	step := flag.Duration("step", time.Second/60, "Simulated time advanced per pass.")
	churn := flag.Float64("churn", 0.01, "Fraction of live animators cancelled and replaced per pass.")
	logLevel := flag.String("log-level", "info", "Log level.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := logging.New(*logLevel, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting animation stress test")

	var file *config.File
	if *configPath != "" {
		file, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	library := config.NewLibrary(file)

	clock := anim.NewManualClock(0)
	scheduler := anim.NewScheduler(anim.NewRegistry(), clock, anim.WithLogger(logger.Named("scheduler")))
	spawner := &Spawner{
		scheduler: scheduler,
		library:   library,
		file:      file,
		rng:       rand.New(rand.NewPCG(1, uint64(*animatorCount))),
		logger:    logger,
	}
	scheduler.Register(&ChurnSystem{spawner: spawner, rate: *churn})

	if *configPath != "" {
		reloader, err := config.NewReloader(*configPath, library, logger.Named("config"))
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			defer reloader.Close()
			scheduler.Register(reloader)
		}
	}

	logger.Info("populating registry", zap.Int("animators", *animatorCount))
	for range *animatorCount {
		spawner.SpawnRandom(scheduler.Commands())
	}
	scheduler.Commands().Flush(scheduler)

	report := &Report{
		Duration:       *duration,
		Animators:      *animatorCount,
		Step:           *step,
		GCPauseMetrics: *gcPauseMetrics,
		PassTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalPasses int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Advance(step.Seconds())

			passStart := time.Now()
			scheduler.Once()
			report.PassTime.Samples = append(report.PassTime.Samples, time.Since(passStart))
			totalPasses++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalPasses = totalPasses
	report.SimulatedTime = time.Duration(clock.Now() * float64(time.Second))
	report.PassTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", zap.Int64("passes", totalPasses))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// Spawner creates random animators.
type Spawner struct {
	scheduler *anim.Scheduler
	library   *config.Library
	file      *config.File
	rng       *rand.Rand
	logger    *zap.Logger
	sink      float64
	target    anim.Transform
}

var (
	kinds   = []anim.Kind{anim.KindFloat, anim.KindPosition, anim.KindRotation, anim.KindScale}
	repeats = []anim.RepeatMode{anim.Destroy, anim.Loop, anim.PingPong}
)

// SpawnRandom queues a random animator. Destroy animators queue a replacement when
// they finish, keeping the population stable.
func (s *Spawner) SpawnRandom(cmds *anim.Commands) {
	a := s.random()
	if a.Repeat() == anim.Destroy {
		a.WithEndAction(func() { s.SpawnRandom(s.scheduler.Commands()) })
	}
	cmds.Spawn(a, nil)
}

func (s *Spawner) random() *anim.Animator {
	if s.file != nil && len(s.file.Animations) > 0 {
		def := &s.file.Animations[s.rng.IntN(len(s.file.Animations))]
		a, err := def.Build(s.library, config.Sinks{
			Update: s.update,
			Target: &s.target,
		})
		if err == nil {
			return a.WithAutoStart(true)
		}
		s.logger.Warn("build animation", zap.String("name", def.Name), zap.Error(err))
	}

	names := curve.PresetNames()
	easing, err := s.library.Get(names[s.rng.IntN(len(names))])
	if err != nil {
		s.logger.Fatal("preset lookup", zap.Error(err))
	}

	var a *anim.Animator
	kind := kinds[s.rng.IntN(len(kinds))]
	if kind == anim.KindFloat {
		a = anim.NewFloat(s.rng.Float64(), s.rng.Float64()*10, s.update)
	} else {
		from := anim.Vec3{X: s.rng.Float64(), Y: s.rng.Float64(), Z: s.rng.Float64()}
		a = anim.NewVector(from, from.Scale(10), kind, &s.target)
	}

	return a.
		WithDuration(0.1 + s.rng.Float64()*2).
		WithDelay(s.rng.Float64() * 0.5).
		WithRepeat(repeats[s.rng.IntN(len(repeats))]).
		WithEasing(easing).
		WithAutoStart(true)
}

func (s *Spawner) update(v float64) {
	s.sink = v
}

// ChurnSystem cancels a fraction of the live animators every pass and queues the
// same number of replacements.
type ChurnSystem struct {
	spawner *Spawner
	rate    float64
}

func (c *ChurnSystem) Execute(frame *anim.UpdateFrame) {
	if c.rate <= 0 {
		return
	}
	n := int(float64(frame.Registry.Len()) * c.rate)
	for h, a := range frame.Registry.All() {
		if n == 0 {
			break
		}
		if a.Done() || c.spawner.rng.Float64() > c.rate {
			continue
		}
		frame.Commands.Cancel(h)
		c.spawner.SpawnRandom(frame.Commands)
		n--
	}
}
