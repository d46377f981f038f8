package debugui

import (
	"testing"

	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) (*anim.Registry, []anim.Handle) {
	t.Helper()
	r := anim.NewRegistry()
	float := anim.NewFloat(0, 1, nil)
	loop := anim.NewVector(anim.Vec3{}, anim.Vec3{X: 1}, anim.KindPosition, nil).WithRepeat(anim.Loop)
	pong := anim.NewVector(anim.Vec3{}, anim.Vec3{X: 1}, anim.KindScale, nil).WithRepeat(anim.PingPong)
	pong.Start(0)
	pong.Tick(0.5)

	handles := []anim.Handle{r.Add(float), r.Add(loop), r.Add(pong)}
	return r, handles
}

func TestCollectAnimators(t *testing.T) {
	r, handles := testRegistry(t)

	rows := collectAnimators(nil, r)
	require.Len(t, rows, 3)
	assert.Equal(t, handles[0], rows[0].Handle)
	assert.Equal(t, anim.KindFloat, rows[0].Kind)
	assert.Equal(t, anim.Idle, rows[0].State)
	assert.Equal(t, anim.Loop, rows[1].Repeat)
	assert.Equal(t, anim.Active, rows[2].State)
	assert.Greater(t, rows[2].Progress, 0.0)
}

func TestFilterAnimators(t *testing.T) {
	r, _ := testRegistry(t)
	rows := collectAnimators(nil, r)

	assert.Len(t, filterAnimators(rows, ""), 3)
	assert.Len(t, filterAnimators(rows, "ping"), 1)
	assert.Len(t, filterAnimators(rows, "ACTIVE"), 1)
	assert.Len(t, filterAnimators(rows, "idle"), 2)
	assert.Empty(t, filterAnimators(rows, "rotation"))
}

func TestSortAnimators(t *testing.T) {
	r, handles := testRegistry(t)
	rows := collectAnimators(nil, r)

	sortAnimators(rows, 0, false)
	assert.Equal(t, handles[2], rows[0].Handle)
	assert.Equal(t, handles[0], rows[2].Handle)

	sortAnimators(rows, 4, false)
	assert.Equal(t, handles[2], rows[0].Handle)

	sortAnimators(rows, 1, true)
	assert.Equal(t, []anim.Kind{anim.KindFloat, anim.KindPosition, anim.KindScale},
		[]anim.Kind{rows[0].Kind, rows[1].Kind, rows[2].Kind})
}

func TestPage(t *testing.T) {
	tests := []struct {
		total, current, size int
		start, end           int
	}{
		{total: 0, current: 0, size: 10, start: 0, end: 0},
		{total: 25, current: 0, size: 10, start: 0, end: 10},
		{total: 25, current: 2, size: 10, start: 20, end: 25},
		{total: 25, current: 5, size: 10, start: 25, end: 25},
		{total: 25, current: 1, size: 0, start: 0, end: 25},
	}
	for _, tt := range tests {
		start, end := page(tt.total, tt.current, tt.size)
		if start != tt.start || end != tt.end {
			t.Errorf("page(%d, %d, %d) = %d, %d; want %d, %d", tt.total, tt.current, tt.size, start, end, tt.start, tt.end)
		}
	}
}

func TestFillPlot(t *testing.T) {
	c := curve.Linear()
	plot := make([]float32, curve.SampleCount)
	fillPlot(plot, c)

	assert.Equal(t, float32(0), plot[0])
	assert.Equal(t, float32(1), plot[curve.SampleCount-1])
	assert.InDelta(t, 0.5, plot[50], 1e-6)

	short := make([]float32, 3)
	fillPlot(short, c)
	assert.InDelta(t, 0.02, short[2], 1e-6)
}

func TestHandleLabel(t *testing.T) {
	assert.Equal(t, "4:2", handleLabel(anim.NewHandle(2, 4)))
}

func TestSchedulerStatsHistoryWraps(t *testing.T) {
	sw := NewSchedulerStatsWindow(2)
	sw.record(1_000_000)
	sw.record(2_000_000)
	sw.record(3_000_000)
	assert.Equal(t, []float32{3, 2}, sw.history)
}
