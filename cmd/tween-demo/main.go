package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tween/anim"
	debugui_ebiten "github.com/plus3/tween/anim/debugui/ebiten"
	"github.com/plus3/tween/config"
	"github.com/plus3/tween/internal/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "cmd/tween-demo/animations.yaml", "YAML file with curves and animations.")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file.")
	watch := flag.Bool("watch", true, "Reload curves when the config file changes.")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := file.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger, err := logging.New(level, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	library := config.NewLibrary(file)
	scheduler := anim.NewScheduler(anim.NewRegistry(), anim.NewWallClock(), anim.WithLogger(logger.Named("scheduler")))

	if *watch {
		reloader, err := config.NewReloader(*configPath, library, logger.Named("config"))
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			defer reloader.Close()
			scheduler.Register(reloader)
		}
	}

	backend := debugui_ebiten.NewImguiBackend("tween demo", 1280, 800)
	ebiten.SetTPS(file.Rate())

	game := newGame(file, library, scheduler, backend, logger)
	logger.Info("demo started", zap.String("config", *configPath), zap.Int("animations", len(file.Animations)))
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
