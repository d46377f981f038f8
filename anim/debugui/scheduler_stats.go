package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tween/anim"
)

// SchedulerStatsWindow shows pass counters and a rolling graph of pass durations.
type SchedulerStatsWindow struct {
	history []float32
	index   int
}

func NewSchedulerStatsWindow(historyFrames int) *SchedulerStatsWindow {
	return &SchedulerStatsWindow{
		history: make([]float32, max(historyFrames, 1)),
	}
}

func (sw *SchedulerStatsWindow) Render(s *anim.Scheduler) {
	if !imgui.BeginV("Scheduler Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.GetStats()
	sw.record(stats.LastPassDuration)

	imgui.Text(fmt.Sprintf("Live Animators: %d", stats.Live))
	imgui.Text(fmt.Sprintf("Passes: %d  Ticks: %d", stats.Passes, stats.Ticks))
	imgui.Text(fmt.Sprintf("Applied: %d  Looped: %d  Flipped: %d", stats.Applied, stats.Looped, stats.Flipped))
	imgui.Text(fmt.Sprintf("Finished: %d  Cancelled: %d", stats.Finished, stats.Cancelled))
	imgui.Text(fmt.Sprintf("Avg Pass: %v (min %v, max %v)", stats.AvgPassDuration, stats.MinPassDuration, stats.MaxPassDuration))

	imgui.Separator()
	imgui.Text("Pass Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##passtime", &sw.history[0], int32(len(sw.history)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (sw *SchedulerStatsWindow) record(d time.Duration) {
	sw.history[sw.index] = float32(d.Seconds() * 1000)
	sw.index = (sw.index + 1) % len(sw.history)
}
