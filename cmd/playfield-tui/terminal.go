package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/game"
)

var tileColors = map[board.VisualID]tcell.Color{
	game.VisualI: tcell.NewRGBColor(102, 191, 255),
	game.VisualO: tcell.NewRGBColor(255, 203, 0),
	game.VisualT: tcell.NewRGBColor(200, 122, 255),
	game.VisualS: tcell.NewRGBColor(0, 228, 48),
	game.VisualZ: tcell.NewRGBColor(255, 109, 194),
	game.VisualJ: tcell.NewRGBColor(0, 121, 241),
	game.VisualL: tcell.NewRGBColor(255, 161, 0),
}

// terminal draws a game with two character cells per board cell and
// observes the board for sound cues and the game-over banner.
type terminal struct {
	game   *game.Game
	screen tcell.Screen
	cues   *cues

	lines      int
	gameOver   bool
	finalScore int
}

func newTerminal(g *game.Game, screen tcell.Screen) *terminal {
	t := &terminal{
		game:   g,
		screen: screen,
		cues:   &cues{},
	}
	g.Observe(t)
	return t
}

func (t *terminal) Progressed(state board.State) {
	if state.TotalLines > t.lines {
		t.cues.lineClear(state.TotalLines - t.lines)
	}
	t.lines = state.TotalLines
	if state.Status == board.Playing {
		t.gameOver = false
	}
}

func (t *terminal) GameOver(finalScore int) {
	t.gameOver = true
	t.finalScore = finalScore
	t.lines = 0
	t.cues.gameOver()
}

func (t *terminal) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			t.game.Update(now.Sub(last).Seconds())
			last = now
			t.draw()
		}
	}
}

func (t *terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.game.Push(game.MoveLeft)
		case tcell.KeyRight:
			t.game.Push(game.MoveRight)
		case tcell.KeyDown:
			t.game.Push(game.SoftDrop)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				t.game.Push(game.HardDrop)
			case 'r', 'R':
				t.game.Push(game.Restart)
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) draw() {
	t.screen.Clear()

	b := t.game.Board()
	bounds := b.Bounds()
	grid := b.Grid()
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)

	const left, top = 2, 1
	w := bounds.Width * 2

	for y := 0; y <= bounds.Height; y++ {
		t.screen.SetContent(left-1, top+y, '│', nil, frame)
		t.screen.SetContent(left+w, top+y, '│', nil, frame)
	}
	for x := -1; x <= w; x++ {
		t.screen.SetContent(left+x, top+bounds.Height, '─', nil, frame)
	}

	for row := bounds.MinRow; row < bounds.MaxRow(); row++ {
		y := top + bounds.MaxRow() - 1 - row
		for col := bounds.MinCol; col < bounds.MaxCol(); col++ {
			x := left + (col-bounds.MinCol)*2
			visual, ok := grid.Visual(board.Cell{Col: col, Row: row})
			if !ok {
				t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				t.screen.SetContent(x+1, y, '.', nil, frame)
				continue
			}
			c, known := tileColors[visual]
			if !known {
				c = tcell.ColorWhite
			}
			style := tcell.StyleDefault.Foreground(c)
			t.screen.SetContent(x, y, '█', nil, style)
			t.screen.SetContent(x+1, y, '█', nil, style)
		}
	}

	state := b.State()
	textX := left + w + 3
	t.print(textX, top, fmt.Sprintf("Score: %d", state.Score))
	t.print(textX, top+1, fmt.Sprintf("Level: %d", state.Level))
	t.print(textX, top+2, fmt.Sprintf("Lines: %d", state.TotalLines))
	t.print(textX, top+3, fmt.Sprintf("Delay: %s", state.FallDelay))
	t.print(textX, top+5, "←/→ move  ↓ soft drop")
	t.print(textX, top+6, "space drop  r restart  q quit")

	if t.gameOver {
		t.print(textX, top+8, "GAME OVER")
		t.print(textX, top+9, fmt.Sprintf("Final Score: %d", t.finalScore))
	}

	t.screen.Show()
}

func (t *terminal) print(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
