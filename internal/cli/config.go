// Package cli holds the command-line configuration shared by the playfield
// commands.
package cli

import (
	"flag"
	"log"
	"time"

	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/game"
)

// Config represents the command-line parameters for a game.
type Config struct {
	Width         int
	Height        int
	LinesPerLevel int
	DelayBase     time.Duration
	DelayStep     time.Duration
	DelayMin      time.Duration
	DelayMax      time.Duration
	LockDelay     time.Duration
	Seed          uint64
}

// NewConfig returns a Config populated from the default board and game
// options. A zero Seed means "seed from the clock".
func NewConfig() *Config {
	b := board.DefaultConfig()
	return &Config{
		Width:         b.Width,
		Height:        b.Height,
		LinesPerLevel: b.LinesPerLevel,
		DelayBase:     b.Delay.Base,
		DelayStep:     b.Delay.Step,
		DelayMin:      b.Delay.Min,
		DelayMax:      b.Delay.Max,
		LockDelay:     game.DefaultOptions().LockDelay,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.LinesPerLevel, "lines-per-level", c.LinesPerLevel, "cleared lines needed per level")
	fs.DurationVar(&c.DelayBase, "delay", c.DelayBase, "fall delay at level 1")
	fs.DurationVar(&c.DelayStep, "delay-step", c.DelayStep, "fall delay change per level (negative speeds up)")
	fs.DurationVar(&c.DelayMin, "delay-min", c.DelayMin, "lower fall delay clamp")
	fs.DurationVar(&c.DelayMax, "delay-max", c.DelayMax, "upper fall delay clamp")
	fs.DurationVar(&c.LockDelay, "lock-delay", c.LockDelay, "time a grounded piece rests before it settles")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "piece bag seed (0 uses the clock)")
}

// Options converts the configuration into game options. The spawn anchor
// sits two rows below the top edge, one column left of center.
func (c *Config) Options(logger *log.Logger) game.Options {
	opts := game.DefaultOptions()

	bounds := board.NewBounds(c.Width, c.Height)
	opts.Board.Width = c.Width
	opts.Board.Height = c.Height
	opts.Board.Spawn = board.Cell{Col: -1, Row: bounds.MaxRow() - 2}
	opts.Board.LinesPerLevel = c.LinesPerLevel
	opts.Board.Delay = board.DelayCurve{
		Base: c.DelayBase,
		Step: c.DelayStep,
		Min:  c.DelayMin,
		Max:  c.DelayMax,
	}
	opts.LockDelay = c.LockDelay
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	opts.Logger = logger
	return opts
}
