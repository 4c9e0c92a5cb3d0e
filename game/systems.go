package game

import (
	"github.com/plus3/playfield/sim"
)

// SpawnSystem deals the next shape when no piece is falling. A blocked
// spawn anchor ends the game inside board.Spawn.
type SpawnSystem struct {
	Session sim.Singleton[Session]
}

func (s *SpawnSystem) Execute(frame *sim.UpdateFrame) {
	session := s.Session.Get()
	if session == nil || session.HasActive || !session.Playing() {
		return
	}
	session.spawn()
}

// InputSystem applies queued player actions in order.
type InputSystem struct {
	Session sim.Singleton[Session]
	Input   sim.Singleton[InputQueue]
}

func (s *InputSystem) Execute(frame *sim.UpdateFrame) {
	session := s.Session.Get()
	queue := s.Input.Get()
	if session == nil || queue == nil {
		return
	}

	for _, action := range queue.Actions {
		switch action {
		case Restart:
			session.restart()
		case MoveLeft:
			session.tryMove(left)
		case MoveRight:
			session.tryMove(right)
		case SoftDrop:
			if session.tryMove(down) {
				session.FallTimer = 0
			}
		case HardDrop:
			if session.HasActive && session.Playing() {
				session.hardDrop()
			}
		}
	}
	queue.Actions = queue.Actions[:0]
}

// GravitySystem steps the active piece down once per fall delay.
type GravitySystem struct {
	Session sim.Singleton[Session]
}

func (s *GravitySystem) Execute(frame *sim.UpdateFrame) {
	session := s.Session.Get()
	if session == nil || !session.HasActive || !session.Playing() {
		return
	}

	session.FallTimer += seconds(frame.DeltaTime)
	delay := session.Board.FallDelay()
	if session.FallTimer < delay {
		return
	}
	session.FallTimer = 0
	if session.tryMove(down) {
		session.LockTimer = 0
	}
}

// LockSystem settles a grounded piece once it has rested for LockDelay.
type LockSystem struct {
	Session sim.Singleton[Session]
}

func (s *LockSystem) Execute(frame *sim.UpdateFrame) {
	session := s.Session.Get()
	if session == nil || !session.HasActive || !session.Playing() {
		return
	}

	if !session.grounded() {
		session.LockTimer = 0
		return
	}

	session.LockTimer += seconds(frame.DeltaTime)
	if session.LockTimer >= session.LockDelay {
		session.lock()
	}
}
