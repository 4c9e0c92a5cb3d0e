package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/debugui"
	debugui_ebiten "github.com/plus3/playfield/debugui/ebiten"
	"github.com/plus3/playfield/game"
	"github.com/plus3/playfield/sim"
)

const (
	cellSize     = 28
	boardOffset  = 20
	sidebarWidth = 180

	// Held keys repeat after repeatDelay ticks, then every repeatRate ticks.
	repeatDelay = 12
	repeatRate  = 3
)

var palette = map[board.VisualID]color.RGBA{
	game.VisualI: {102, 191, 255, 255},
	game.VisualO: {255, 203, 0, 255},
	game.VisualT: {200, 122, 255, 255},
	game.VisualS: {0, 228, 48, 255},
	game.VisualZ: {255, 109, 194, 255},
	game.VisualJ: {0, 121, 241, 255},
	game.VisualL: {255, 161, 0, 255},
}

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{32, 32, 40, 255}
	unknownColor    = color.RGBA{200, 200, 200, 255}
)

// Frontend implements ebiten.Game on top of a game.Game and is the board's
// presentation observer.
type Frontend struct {
	game  *game.Game
	tiles *intmap.Map[board.VisualID, *ebiten.Image]

	gameOver   bool
	finalScore int

	imgui      *debugui_ebiten.ImguiBackend
	imguiInput *sim.Singleton[debugui.ImguiInputState]
}

func NewFrontend(g *game.Game) *Frontend {
	f := &Frontend{
		game:  g,
		tiles: intmap.New[board.VisualID, *ebiten.Image](len(palette)),
	}
	g.Observe(f)
	return f
}

func (f *Frontend) Progressed(state board.State) {
	if state.Status == board.Playing {
		f.gameOver = false
	}
}

func (f *Frontend) GameOver(finalScore int) {
	f.gameOver = true
	f.finalScore = finalScore
}

// ScreenSize is the window size needed for the board and sidebar.
func (f *Frontend) ScreenSize() (int, int) {
	b := f.game.Board().Bounds()
	return b.Width*cellSize + boardOffset*2 + sidebarWidth, b.Height*cellSize + boardOffset*2
}

func (f *Frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if f.imgui != nil {
		f.imgui.BeginFrame()
	}

	if f.imguiInput == nil || !f.imguiInput.Get().WantCaptureKeyboard {
		f.readInput()
	}
	f.game.Update(1.0 / float64(ebiten.TPS()))

	if f.imgui != nil {
		f.imgui.EndFrame()
	}
	return nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatRate == 0)
}

func (f *Frontend) readInput() {
	if repeating(ebiten.KeyArrowLeft) {
		f.game.Push(game.MoveLeft)
	}
	if repeating(ebiten.KeyArrowRight) {
		f.game.Push(game.MoveRight)
	}
	if repeating(ebiten.KeyArrowDown) {
		f.game.Push(game.SoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		f.game.Push(game.HardDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.game.Push(game.Restart)
	}
}

func (f *Frontend) tile(visual board.VisualID) *ebiten.Image {
	if img, ok := f.tiles.Get(visual); ok {
		return img
	}

	c, ok := palette[visual]
	if !ok {
		c = unknownColor
	}
	img := ebiten.NewImage(cellSize-1, cellSize-1)
	img.Fill(c)
	f.tiles.Put(visual, img)
	return img
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	b := f.game.Board()
	bounds := b.Bounds()
	grid := b.Grid()

	vector.DrawFilledRect(screen, boardOffset, boardOffset,
		float32(bounds.Width*cellSize), float32(bounds.Height*cellSize), wellColor, false)

	for row := bounds.MinRow; row < bounds.MaxRow(); row++ {
		for col := bounds.MinCol; col < bounds.MaxCol(); col++ {
			visual, ok := grid.Visual(board.Cell{Col: col, Row: row})
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(boardOffset+(col-bounds.MinCol)*cellSize),
				float64(boardOffset+(bounds.MaxRow()-1-row)*cellSize),
			)
			screen.DrawImage(f.tile(visual), op)
		}
	}

	state := b.State()
	textX := boardOffset*2 + bounds.Width*cellSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d", state.Score, state.Level, state.TotalLines), textX, boardOffset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("NEXT\nvisual %d", f.game.NextShape().Visual), textX, boardOffset+130)
	ebitenutil.DebugPrintAt(screen, "arrows: move\nspace: drop\nR: restart\nesc: quit", textX, boardOffset+200)

	if f.gameOver {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER\nFinal Score: %d\nPress R to restart", f.finalScore),
			boardOffset+cellSize, boardOffset+bounds.Height*cellSize/2-20)
	}

	if f.imgui != nil {
		f.imgui.Draw(screen)
	}
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if f.imgui != nil {
		f.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return f.ScreenSize()
}
