package board

import (
	"errors"
	"fmt"
	"time"
)

// Configuration errors returned by Config.Validate.
var (
	ErrInvalidSize      = errors.New("board size must be positive")
	ErrSpawnOutOfBounds = errors.New("spawn anchor outside the board")
	ErrScoreTable       = errors.New("score table must cover 1 to 4 lines")
	ErrLinesPerLevel    = errors.New("lines per level must be positive")
	ErrDelayRange       = errors.New("invalid fall delay range")
)

// MinScoreEntries is the largest number of rows a single tetromino can clear.
const MinScoreEntries = 4

// Config is read once by New and never changes afterward.
type Config struct {
	Width         int
	Height        int
	Spawn         Cell
	ScoreTable    ScoreTable
	LinesPerLevel int
	Delay         DelayCurve
}

// DefaultConfig returns the standard 10x20 board.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        20,
		Spawn:         Cell{Col: -1, Row: 8},
		ScoreTable:    ScoreTable{10, 20, 30, 40},
		LinesPerLevel: 3,
		Delay: DelayCurve{
			Base: time.Second,
			Step: 200 * time.Millisecond,
			Min:  100 * time.Millisecond,
			Max:  2 * time.Second,
		},
	}
}

// Validate checks the configuration contract.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !NewBounds(c.Width, c.Height).Contains(c.Spawn) {
		return fmt.Errorf("%w: %s", ErrSpawnOutOfBounds, c.Spawn)
	}
	if len(c.ScoreTable) < MinScoreEntries {
		return fmt.Errorf("%w: got %d entries", ErrScoreTable, len(c.ScoreTable))
	}
	for i, pts := range c.ScoreTable {
		if pts < 0 {
			return fmt.Errorf("%w: negative award for %d lines", ErrScoreTable, i+1)
		}
	}
	if c.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: %d", ErrLinesPerLevel, c.LinesPerLevel)
	}
	d := c.Delay
	if d.Min <= 0 || d.Max < d.Min {
		return fmt.Errorf("%w: [%s, %s]", ErrDelayRange, d.Min, d.Max)
	}
	return nil
}
