package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astro/ecs"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  bool
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

func (h *FrameHistory) Add(d time.Duration) {
	h.samples[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Average returns the mean of the recorded samples, in milliseconds.
func (h *FrameHistory) Average() float32 {
	n := h.next
	if h.filled {
		n = len(h.samples)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:n] {
		sum += s
	}
	return sum / float32(n)
}

// StatsPanel shows storage counts, frame times and per-system timings.
type StatsPanel struct {
	History *FrameHistory
	last    time.Time
}

func NewStatsPanel(history int) *StatsPanel {
	return &StatsPanel{History: NewFrameHistory(history)}
}

func (p *StatsPanel) Render(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	now := time.Now()
	if !p.last.IsZero() {
		p.History.Add(now.Sub(p.last))
	}
	p.last = now

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)
	if !imgui.BeginV("Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	stats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Component types: %d  Singletons: %d", stats.ComponentCount, stats.SingletonCount))

	avg := p.History.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &p.History.samples[0], int32(len(p.History.samples)))

	if imgui.TreeNodeStr("Components") {
		for _, c := range stats.Components {
			imgui.BulletText(fmt.Sprintf("%s: %d", c.Name, c.Count))
		}
		imgui.TreePop()
	}

	if scheduler == nil {
		return
	}
	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()
			for _, s := range scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}
}
