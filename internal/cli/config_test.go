package cli_test

import (
	"flag"
	"io"
	"log"
	"testing"
	"time"

	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/game"
	"github.com/plus3/playfield/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchDefaultOptions(t *testing.T) {
	cfg := cli.NewConfig()
	opts := cfg.Options(nil)

	want := board.DefaultConfig()
	assert.Equal(t, want.Spawn, opts.Board.Spawn)
	assert.Equal(t, want.Delay, opts.Board.Delay)
	assert.Equal(t, want.LinesPerLevel, opts.Board.LinesPerLevel)
	assert.Equal(t, 500*time.Millisecond, opts.LockDelay)
	assert.NoError(t, opts.Board.Validate())
}

func TestBindParsesFlags(t *testing.T) {
	cfg := cli.NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-width", "8", "-height", "16",
		"-lines-per-level", "10",
		"-delay-step", "-100ms",
		"-lock-delay", "250ms",
		"-seed", "99",
	})
	require.NoError(t, err)

	logger := log.New(io.Discard, "", 0)
	opts := cfg.Options(logger)

	assert.Equal(t, 8, opts.Board.Width)
	assert.Equal(t, 16, opts.Board.Height)
	assert.Equal(t, board.Cell{Col: -1, Row: 6}, opts.Board.Spawn)
	assert.Equal(t, 10, opts.Board.LinesPerLevel)
	assert.Equal(t, -100*time.Millisecond, opts.Board.Delay.Step)
	assert.Equal(t, 250*time.Millisecond, opts.LockDelay)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Same(t, logger, opts.Logger)

	g, err := game.New(opts)
	require.NoError(t, err)
	g.Update(0)
	_, ok := g.Active()
	assert.True(t, ok)
}
