package game

import (
	"time"

	"github.com/plus3/playfield/board"
)

// Action is a player command queued for the next tick.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	Restart
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case SoftDrop:
		return "soft-drop"
	case HardDrop:
		return "hard-drop"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

var (
	left  = board.Cell{Col: -1}
	right = board.Cell{Col: 1}
	down  = board.Cell{Row: -1}
)

// InputQueue holds the actions pushed since the last tick.
type InputQueue struct {
	Actions []Action
}

// Session is the singleton that ties the board to the falling piece.
// The active piece stays committed to the grid while it falls, so every
// move retracts it, validates the new position and commits it again.
type Session struct {
	Board     *board.Board
	Bag       *Bag
	Active    board.Piece
	HasActive bool

	FallTimer time.Duration
	LockTimer time.Duration
	LockDelay time.Duration

	Pieces int
	Last   board.Settlement
}

// Playing reports whether the board accepts moves.
func (s *Session) Playing() bool {
	return s.Board.Status() == board.Playing
}

func (s *Session) tryMove(delta board.Cell) bool {
	if !s.HasActive || !s.Playing() {
		return false
	}

	s.Board.Retract(s.Active)
	moved := s.Active.Moved(delta)
	if s.Board.IsValidPosition(moved.Shape, moved.Position) {
		s.Active = moved
		s.Board.Commit(moved)
		return true
	}
	s.Board.Commit(s.Active)
	return false
}

func (s *Session) grounded() bool {
	if !s.HasActive {
		return false
	}
	s.Board.Retract(s.Active)
	below := s.Active.Moved(down)
	ok := s.Board.IsValidPosition(below.Shape, below.Position)
	s.Board.Commit(s.Active)
	return !ok
}

func (s *Session) spawn() bool {
	p, ok := s.Board.Spawn(s.Bag.Next())
	if !ok {
		s.HasActive = false
		return false
	}
	s.Active = p
	s.HasActive = true
	s.FallTimer = 0
	s.LockTimer = 0
	s.Pieces++
	return true
}

func (s *Session) lock() board.Settlement {
	s.Last = s.Board.Settle(s.Active)
	s.HasActive = false
	s.FallTimer = 0
	s.LockTimer = 0
	return s.Last
}

func (s *Session) hardDrop() board.Settlement {
	for s.tryMove(down) {
	}
	return s.lock()
}

func (s *Session) restart() {
	s.Board.Restart()
	s.HasActive = false
	s.FallTimer = 0
	s.LockTimer = 0
	s.Pieces = 0
	s.Last = board.Settlement{}
}

func seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
