package board

import "time"

// Status is the lifecycle state of a board.
type Status int

const (
	Playing Status = iota
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Observer receives progression updates and the game-over notification.
// Callbacks run synchronously inside the board call that caused them.
type Observer interface {
	Progressed(state State)
	GameOver(finalScore int)
}

// Settlement reports what happened when a piece settled.
type Settlement struct {
	Award
	State State
}

// Board owns the grid and progression of one game. It is not safe for
// concurrent use; every call is a bounded synchronous scan.
type Board struct {
	cfg       Config
	bounds    Bounds
	grid      *Grid
	progress  *Progression
	status    Status
	observers []Observer
}

// New validates cfg and returns a board ready for its first spawn.
func New(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ScoreTable = append(ScoreTable(nil), cfg.ScoreTable...)

	b := &Board{
		cfg:    cfg,
		bounds: NewBounds(cfg.Width, cfg.Height),
	}
	b.reset()
	return b, nil
}

func (b *Board) reset() {
	b.grid = NewGrid(b.bounds)
	b.progress = NewProgression(b.cfg.ScoreTable, b.cfg.LinesPerLevel, b.cfg.Delay)
	b.status = Playing
}

// Observe registers o for progression and game-over events.
func (b *Board) Observe(o Observer) {
	b.observers = append(b.observers, o)
}

func (b *Board) Config() Config            { return b.cfg }
func (b *Board) Bounds() Bounds            { return b.bounds }
func (b *Board) Status() Status            { return b.status }
func (b *Board) FallDelay() time.Duration  { return b.progress.FallDelay() }
func (b *Board) Progression() *Progression { return b.progress }

// Grid exposes the tile state for renderers. Mutations should go through
// the board so game-over is respected.
func (b *Board) Grid() *Grid { return b.grid }

// State returns a snapshot of the progression counters.
func (b *Board) State() State {
	return State{
		Score:      b.progress.Score(),
		TotalLines: b.progress.TotalLines(),
		Level:      b.progress.Level(),
		FallDelay:  b.progress.FallDelay(),
		Status:     b.status,
	}
}

// IsValidPosition reports whether shape fits at anchor.
func (b *Board) IsValidPosition(shape Shape, anchor Cell) bool {
	return b.grid.IsValidPosition(shape, anchor)
}

// Commit writes p into the grid. It does nothing and returns false once the
// game is over.
func (b *Board) Commit(p Piece) bool {
	if b.status == GameOver {
		return false
	}
	b.grid.Commit(p)
	return true
}

// Retract removes p from the grid. It does nothing and returns false once
// the game is over.
func (b *Board) Retract(p Piece) bool {
	if b.status == GameOver {
		return false
	}
	b.grid.Retract(p)
	return true
}

// Spawn places shape at the configured spawn anchor. When the anchor is
// blocked the board ends the game and Spawn returns false.
func (b *Board) Spawn(shape Shape) (Piece, bool) {
	p := shape.At(b.cfg.Spawn)
	if b.status == GameOver {
		return p, false
	}
	if !b.grid.IsValidPosition(shape, p.Position) {
		b.endGame()
		return p, false
	}
	b.grid.Commit(p)
	return p, true
}

// Settle commits p and resolves the line clears it caused. Commit, scan and
// award happen in this one call.
func (b *Board) Settle(p Piece) Settlement {
	if !b.Commit(p) {
		return Settlement{State: b.State()}
	}
	return b.ClearLines()
}

// ClearLines runs one line-clear pass and applies its award.
func (b *Board) ClearLines() Settlement {
	lines := b.grid.ClearLines()
	award := b.progress.Award(lines)
	st := b.State()
	if lines > 0 {
		for _, o := range b.observers {
			o.Progressed(st)
		}
	}
	return Settlement{Award: award, State: st}
}

// Restart discards the grid and progression and starts a fresh game.
// Observers stay registered.
func (b *Board) Restart() {
	b.reset()
	st := b.State()
	for _, o := range b.observers {
		o.Progressed(st)
	}
}

func (b *Board) endGame() {
	b.status = GameOver
	b.grid.ClearAll()
	final := b.progress.Score()
	for _, o := range b.observers {
		o.GameOver(final)
	}
}
