package debugui

import (
	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/config"
)

// Install registers an ImguiSystem on the scheduler with the animator browser, the
// scheduler stats window and a curve editor over lib, which may be nil.
func Install(s *anim.Scheduler, lib *config.Library) *ImguiSystem {
	browser := NewAnimatorBrowser(100)
	stats := NewSchedulerStatsWindow(120)
	editor := NewCurveEditor(lib)

	system := &ImguiSystem{}
	system.Add(func() { browser.Render(s.Registry()) })
	system.Add(func() { stats.Render(s) })
	if lib != nil {
		system.Add(editor.Render)
	}
	s.Register(system)
	return system
}
