package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/anim/debugui"
	debugui_ebiten "github.com/plus3/tween/anim/debugui/ebiten"
)

// Game runs the animation scheduler from Ebiten's update loop and draws ImGui on top.
type Game struct {
	scheduler *anim.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.Pass(g.scheduler)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Animation Debugger", 1280, 720)

	scheduler := anim.NewScheduler(anim.NewRegistry(), anim.NewWallClock())
	debugui.Install(scheduler, nil)

	var tf anim.Transform
	scheduler.Spawn(anim.NewVector(anim.Vec3{}, anim.Vec3{X: 300}, anim.KindPosition, &tf).
		WithRepeat(anim.PingPong).
		WithAutoStart(true))

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
