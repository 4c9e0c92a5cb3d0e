package board

import (
	"fmt"
	"time"
)

// ScoreTable holds the points awarded for clearing 1, 2, 3, ... rows in a
// single pass. Index 0 is the single-line award.
type ScoreTable []int

// Points returns the award for lines simultaneous rows.
func (t ScoreTable) Points(lines int) (int, bool) {
	if lines < 1 || lines > len(t) {
		return 0, false
	}
	return t[lines-1], true
}

// DelayCurve maps a level to a fall delay:
//
//	delay(level) = clamp(Base + (level-1)*Step, Min, Max)
//
// A positive Step slows falls as the level rises, a negative Step speeds
// them up. Either way the curve is monotonic in level.
type DelayCurve struct {
	Base time.Duration
	Step time.Duration
	Min  time.Duration
	Max  time.Duration
}

// Delay returns the fall delay for level.
func (c DelayCurve) Delay(level int) time.Duration {
	d := c.Base + time.Duration(level-1)*c.Step
	return min(max(d, c.Min), c.Max)
}

// State is a snapshot of the progression counters and board status.
type State struct {
	Score      int
	TotalLines int
	Level      int
	FallDelay  time.Duration
	Status     Status
}

// Award describes the effect of one line-clear pass on the progression.
type Award struct {
	Lines   int
	Points  int
	LevelUp bool
}

// Progression tracks score, cleared lines, level and the derived fall delay.
// Score and TotalLines never decrease.
type Progression struct {
	score      int
	totalLines int
	level      int
	fallDelay  time.Duration

	table         ScoreTable
	linesPerLevel int
	curve         DelayCurve
}

// NewProgression starts a progression at score 0, level 1.
func NewProgression(table ScoreTable, linesPerLevel int, curve DelayCurve) *Progression {
	return &Progression{
		level:         1,
		fallDelay:     curve.Delay(1),
		table:         table,
		linesPerLevel: linesPerLevel,
		curve:         curve,
	}
}

func (p *Progression) Score() int               { return p.score }
func (p *Progression) TotalLines() int          { return p.totalLines }
func (p *Progression) Level() int               { return p.level }
func (p *Progression) FallDelay() time.Duration { return p.fallDelay }

// Award applies the result of one line-clear pass. A pass that cleared
// nothing leaves the progression untouched. A count missing from the score
// table is a configuration bug and panics.
func (p *Progression) Award(lines int) Award {
	if lines <= 0 {
		return Award{}
	}

	points, ok := p.table.Points(lines)
	if !ok {
		panic(fmt.Sprintf("board: no score table entry for %d lines", lines))
	}

	p.score += points
	p.totalLines += lines

	award := Award{Lines: lines, Points: points}
	if newLevel := p.totalLines/p.linesPerLevel + 1; newLevel > p.level {
		p.level = newLevel
		p.fallDelay = p.curve.Delay(newLevel)
		award.LevelUp = true
	}
	return award
}
