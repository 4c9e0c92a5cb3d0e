// Package game drives a board with a falling piece: it deals tetrominoes,
// applies player actions, runs gravity and the lock delay, and settles
// pieces into the board on a fixed tick.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/sim"
)

var (
	ErrLockDelay = errors.New("lock delay must be positive")
	ErrNoShapes  = errors.New("no shapes to deal")
)

// Options configures a Game.
type Options struct {
	Board     board.Config
	LockDelay time.Duration
	Shapes    []board.Shape
	Seed      uint64
	Logger    *log.Logger
}

// DefaultOptions returns the standard board with the seven tetrominoes.
func DefaultOptions() Options {
	return Options{
		Board:     board.DefaultConfig(),
		LockDelay: 500 * time.Millisecond,
		Shapes:    Tetrominoes,
		Seed:      uint64(time.Now().UnixNano()),
	}
}

// Game owns the simulation world and the scheduler that ticks it.
type Game struct {
	world     *sim.World
	scheduler *sim.Scheduler
	session   *sim.Singleton[Session]
	input     *sim.Singleton[InputQueue]
}

// New builds a game. Board configuration errors are returned unchanged.
func New(opts Options) (*Game, error) {
	if opts.LockDelay <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrLockDelay, opts.LockDelay)
	}
	if len(opts.Shapes) == 0 {
		return nil, ErrNoShapes
	}

	b, err := board.New(opts.Board)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	b.Observe(&logObserver{logger: logger, level: 1})

	world := sim.NewWorld()
	g := &Game{
		world: world,
		session: sim.NewSingleton(world, Session{
			Board:     b,
			Bag:       NewBag(opts.Shapes, opts.Seed),
			LockDelay: opts.LockDelay,
		}),
		input: sim.NewSingleton(world, InputQueue{}),
	}

	g.scheduler = sim.NewScheduler(world)
	g.scheduler.Register(&SpawnSystem{})
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&LockSystem{})

	return g, nil
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64) {
	g.scheduler.Once(dt)
}

// Push queues an action for the next Update.
func (g *Game) Push(actions ...Action) {
	q := g.input.Get()
	q.Actions = append(q.Actions, actions...)
}

// Restart starts a fresh game on the next Update.
func (g *Game) Restart() {
	g.Push(Restart)
}

// Observe registers o on the board.
func (g *Game) Observe(o board.Observer) {
	g.Board().Observe(o)
}

func (g *Game) Board() *board.Board        { return g.session.Get().Board }
func (g *Game) Session() *Session          { return g.session.Get() }
func (g *Game) World() *sim.World          { return g.world }
func (g *Game) Scheduler() *sim.Scheduler  { return g.scheduler }
func (g *Game) Stats() *sim.SchedulerStats { return g.scheduler.GetStats() }
func (g *Game) NextShape() board.Shape     { return g.session.Get().Bag.Peek() }
func (g *Game) State() board.State         { return g.Board().State() }

// Active returns the falling piece, if any.
func (g *Game) Active() (board.Piece, bool) {
	s := g.session.Get()
	return s.Active, s.HasActive
}

type logObserver struct {
	logger *log.Logger
	level  int
}

func (o *logObserver) Progressed(state board.State) {
	switch {
	case state.TotalLines == 0 && state.Score == 0:
		o.logger.Printf("new game: level %d, fall delay %s", state.Level, state.FallDelay)
	case state.Level > o.level:
		o.logger.Printf("level %d reached after %d lines, fall delay %s", state.Level, state.TotalLines, state.FallDelay)
	}
	o.level = state.Level
}

func (o *logObserver) GameOver(finalScore int) {
	o.logger.Printf("game over: final score %d", finalScore)
}
