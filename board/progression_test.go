package board_test

import (
	"testing"
	"time"

	"github.com/plus3/playfield/board"
	"github.com/stretchr/testify/assert"
)

func newDefaultProgression() *board.Progression {
	cfg := board.DefaultConfig()
	return board.NewProgression(cfg.ScoreTable, cfg.LinesPerLevel, cfg.Delay)
}

func TestProgressionScoreTable(t *testing.T) {
	for lines, want := range map[int]int{1: 10, 2: 20, 3: 30, 4: 40} {
		p := newDefaultProgression()
		award := p.Award(lines)
		assert.Equal(t, want, award.Points)
		assert.Equal(t, want, p.Score())
		assert.Equal(t, lines, p.TotalLines())
	}
}

func TestProgressionZeroLinesIsNoop(t *testing.T) {
	p := newDefaultProgression()

	award := p.Award(0)

	assert.Equal(t, board.Award{}, award)
	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, time.Second, p.FallDelay())
}

func TestProgressionLevelFollowsTotalLines(t *testing.T) {
	p := newDefaultProgression()
	passes := []int{1, 2, 1, 4, 3, 1, 1, 2, 4, 4}

	total := 0
	prevLevel := p.Level()
	for _, lines := range passes {
		p.Award(lines)
		total += lines

		assert.Equal(t, total/3+1, p.Level())
		assert.GreaterOrEqual(t, p.Level(), prevLevel)
		prevLevel = p.Level()
	}
}

func TestProgressionLevelUpRecomputesDelay(t *testing.T) {
	p := newDefaultProgression()

	assert.False(t, p.Award(1).LevelUp)
	assert.False(t, p.Award(1).LevelUp)
	award := p.Award(1)

	assert.True(t, award.LevelUp)
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 1200*time.Millisecond, p.FallDelay())
}

func TestProgressionPanicsOnMissingTableEntry(t *testing.T) {
	p := newDefaultProgression()

	assert.Panics(t, func() { p.Award(5) })
}

func TestDelayCurveClamps(t *testing.T) {
	slower := board.DefaultConfig().Delay
	assert.Equal(t, time.Second, slower.Delay(1))
	assert.Equal(t, 1800*time.Millisecond, slower.Delay(5))
	assert.Equal(t, 2*time.Second, slower.Delay(6))
	assert.Equal(t, 2*time.Second, slower.Delay(40))

	faster := board.DelayCurve{
		Base: time.Second,
		Step: -150 * time.Millisecond,
		Min:  100 * time.Millisecond,
		Max:  time.Second,
	}
	assert.Equal(t, 850*time.Millisecond, faster.Delay(2))
	assert.Equal(t, 100*time.Millisecond, faster.Delay(20))

	prev := faster.Delay(1)
	for level := 2; level < 30; level++ {
		assert.LessOrEqual(t, faster.Delay(level), prev)
		prev = faster.Delay(level)
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, board.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*board.Config)
		err    error
	}{
		{"zero width", func(c *board.Config) { c.Width = 0 }, board.ErrInvalidSize},
		{"negative height", func(c *board.Config) { c.Height = -2 }, board.ErrInvalidSize},
		{"spawn outside", func(c *board.Config) { c.Spawn = board.Cell{Col: 0, Row: 10} }, board.ErrSpawnOutOfBounds},
		{"short score table", func(c *board.Config) { c.ScoreTable = board.ScoreTable{10, 20, 30} }, board.ErrScoreTable},
		{"negative award", func(c *board.Config) { c.ScoreTable = board.ScoreTable{10, -1, 30, 40} }, board.ErrScoreTable},
		{"zero lines per level", func(c *board.Config) { c.LinesPerLevel = 0 }, board.ErrLinesPerLevel},
		{"inverted delay range", func(c *board.Config) { c.Delay.Max = c.Delay.Min / 2 }, board.ErrDelayRange},
		{"zero min delay", func(c *board.Config) { c.Delay.Min = 0 }, board.ErrDelayRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := board.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.err)
		})
	}
}
