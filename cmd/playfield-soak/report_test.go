package main

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/playfield/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:  time.Second,
		Width:     10,
		Height:    20,
		Games:     3,
		Lines:     12,
		BestScore: 340,
		MaxLevel:  4,
		Scheduler: &sim.SchedulerStats{
			Systems: []sim.SystemStats{{Name: "GravitySystem", ExecutionCount: 60}},
		},
	}

	var out strings.Builder
	require.NoError(t, r.Generate(&out))
	text := out.String()
	assert.Contains(t, text, "**Board:** 10x20")
	assert.Contains(t, text, "**Best Score:** 340")
	assert.Contains(t, text, "| GravitySystem | 60 |")
	assert.NotContains(t, text, "GC Pause")
}
