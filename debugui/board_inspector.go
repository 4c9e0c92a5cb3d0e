package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/game"
)

// BoardInspector shows progression counters and per-row fill of a game.
type BoardInspector struct {
	game *game.Game
}

func NewBoardInspector(g *game.Game) *BoardInspector {
	return &BoardInspector{game: g}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 420), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := bi.game.Board()
	state := b.State()
	session := bi.game.Session()

	if state.Status == board.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "PLAYING")
	}
	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", state.TotalLines))
	imgui.Text(fmt.Sprintf("Level: %d", state.Level))
	imgui.Text(fmt.Sprintf("Fall Delay: %s", state.FallDelay))
	imgui.Text(fmt.Sprintf("Pieces: %d", session.Pieces))

	if session.HasActive {
		imgui.Text(fmt.Sprintf("Active: visual %d at %s", session.Active.Shape.Visual, session.Active.Position))
		lock := float32(session.LockTimer) / float32(session.LockDelay)
		imgui.ProgressBarV(min(lock, 1), imgui.NewVec2(-1, 0), fmt.Sprintf("lock %s", session.LockTimer))
	}
	imgui.Text(fmt.Sprintf("Next: visual %d", bi.game.NextShape().Visual))

	imgui.Separator()

	if imgui.TreeNodeStr("Row Fill") {
		bounds := b.Bounds()
		grid := b.Grid()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowFillTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Occupied")
			imgui.TableHeadersRow()

			for row := bounds.MaxRow() - 1; row >= bounds.MinRow; row-- {
				count := grid.RowCount(row)
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", count, bounds.Width))

				if count > 0 {
					barWidth := float32(count) / float32(bounds.Width) * 80.0
					imgui.SameLine()
					drawList := imgui.WindowDrawList()
					pos := imgui.CursorScreenPos()
					color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
					drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
				}
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
