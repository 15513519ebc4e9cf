package debugui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// EngineWindow shows the game state and a few cheats for trying things out.
// Restart and quit go through q so the loop sees their events.
func EngineWindow(e *tetris.Engine, q *Queue) Item {
	garbage := int32(1)
	return Item{Render: func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		if !imgui.BeginV("Engine", nil, imgui.WindowFlagsAlwaysAutoResize) {
			imgui.End()
			return
		}

		imgui.Text(fmt.Sprintf("State: %s", e.State()))
		imgui.Text(fmt.Sprintf("Score: %d  High: %d", e.Score(), e.HighScore()))
		imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", e.Level(), e.Lines()))
		imgui.Text(fmt.Sprintf("Gravity: %s", e.DropInterval()))
		imgui.Text(fmt.Sprintf("Pieces: %d  Next: %s", e.Pieces(), e.Next()))
		if p, ok := e.Piece(); ok {
			imgui.Text(fmt.Sprintf("Piece: %s at (%d,%d), ghost row %d", p.Kind, p.Pos.Row, p.Pos.Col, e.GhostRow()))
		}

		imgui.Separator()
		if imgui.Button("Restart") {
			q.Push(loop.Input{Restart: true})
		}
		imgui.SameLine()
		if imgui.Button("Quit") {
			q.Push(loop.Input{Quit: true})
		}

		imgui.SetNextItemWidth(80)
		imgui.InputInt("##garbage", &garbage)
		imgui.SameLine()
		if imgui.Button("Add garbage") && garbage > 0 {
			e.Board().AddGarbage(int(garbage), func() int { return rand.IntN(e.Config().Width) })
		}

		imgui.End()
	}}
}

// BoardWindow shows how full every row is.
func BoardWindow(e *tetris.Engine) Item {
	return Item{Render: func() {
		if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		b := e.Board()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("RowTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Cells")
			imgui.TableSetupColumn("Fill")
			imgui.TableHeadersRow()

			for row := range b.Height() {
				n := b.RowCount(row)
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", n, b.Width()))
				imgui.TableNextColumn()
				imgui.ProgressBarV(float32(n)/float32(b.Width()), imgui.NewVec2(-1, 0), "")
			}

			imgui.EndTable()
		}

		imgui.End()
	}}
}

// SchedulerWindow plots frame times and lists per-system scheduler stats.
func SchedulerWindow(s *loop.Scheduler, historyFrames int) Item {
	history := NewHistory(historyFrames)
	last := time.Now()

	return Item{Render: func() {
		now := time.Now()
		history.Push(float32(now.Sub(last).Seconds() * 1000))
		last = now

		if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		avg := history.Average()
		imgui.Text(fmt.Sprintf("Frames: %d", s.Frames()))
		if avg > 0 {
			imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
		}

		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		if samples := history.Ordered(); len(samples) > 0 {
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
		}

		if imgui.TreeNodeStr("Systems") {
			stats := s.Stats()
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
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
	}}
}
