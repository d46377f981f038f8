package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/anim/debugui"
	debugui_ebiten "github.com/plus3/tween/anim/debugui/ebiten"
	"github.com/plus3/tween/config"
	"go.uber.org/zap"
)

// Game runs one scheduler pass per Ebiten update and draws every box.
type Game struct {
	file      *config.File
	library   *config.Library
	scheduler *anim.Scheduler
	imgui     *debugui.ImguiSystem
	backend   *debugui_ebiten.ImguiBackend
	logger    *zap.Logger

	boxes []*Box
}

func newGame(file *config.File, library *config.Library, scheduler *anim.Scheduler, backend *debugui_ebiten.ImguiBackend, logger *zap.Logger) *Game {
	g := &Game{
		file:      file,
		library:   library,
		scheduler: scheduler,
		backend:   backend,
		logger:    logger,
	}
	g.imgui = debugui.Install(scheduler, library)

	for i, def := range file.Animations {
		home := anim.Vec3{X: 120 + float64(i%4)*220, Y: 120 + float64(i/4)*180}
		g.boxes = append(g.boxes, newBox(uint64(i+1), def.Name, home))
	}
	for _, box := range g.boxes {
		g.spawn(box)
	}
	return g
}

// spawn (re)creates the animation attached to box. Manually started animations
// begin on the next pass.
func (g *Game) spawn(box *Box) {
	g.scheduler.CancelOwner(box.ID)
	box.Reset()

	a, err := g.file.Build(box.Name, g.library, config.Sinks{
		Update: box.SetAlpha,
		Target: box,
		End: func() {
			g.logger.Info("animation finished", zap.String("name", box.Name))
		},
	})
	if err != nil {
		g.logger.Error("build animation", zap.String("name", box.Name), zap.Error(err))
		return
	}

	h := g.scheduler.SpawnOwned(box.ID, a)
	if !a.AutoStart() {
		g.scheduler.Commands().Defer(func() { g.scheduler.Start(h) })
	}
}

func (g *Game) Update() error {
	if !g.imgui.Input.WantCaptureKeyboard {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			for _, box := range g.boxes {
				g.spawn(box)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			for _, box := range g.boxes {
				g.scheduler.CancelOwner(box.ID)
			}
		}
	}

	g.backend.Pass(g.scheduler)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff})
	for _, box := range g.boxes {
		box.Draw(screen)
		ebitenutil.DebugPrintAt(screen, box.Name, int(box.home.X)-boxSize/2, int(box.home.Y)+boxSize)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("R: restart  C: cancel  live: %d", g.scheduler.Registry().Len()))

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
