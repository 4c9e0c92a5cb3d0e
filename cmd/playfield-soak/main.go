package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/playfield/board"
	"github.com/plus3/playfield/game"
	"github.com/plus3/playfield/internal/cli"
)

func main() {
	cfg := cli.NewConfig()
	cfg.Bind(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	tick := flag.Duration("tick", time.Second/60, "Simulated time advanced per update.")
	dropEvery := flag.Int("drop-every", 20, "Hard drop the active piece every N updates.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log game events.")
	flag.Parse()

	log.Println("Starting playfield soak...")

	logger := log.New(os.Stderr, "game ", log.LstdFlags)
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	g, err := game.New(cfg.Options(logger))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           cfg.Seed,
		Tick:           *tick,
		GCPauseMetrics: *gcPauseMetrics,
	}
	tally := &tally{game: g, report: report, level: 1}
	g.Observe(tally)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5eed))
	moves := []game.Action{game.MoveLeft, game.MoveRight, game.SoftDrop}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := tick.Seconds()
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if g.Board().Status() == board.GameOver {
				g.Push(game.Restart)
			} else if totalUpdates%int64(*dropEvery) == 0 {
				g.Push(game.HardDrop)
			} else {
				g.Push(moves[rng.IntN(len(moves))])
			}

			updateStart := time.Now()
			g.Update(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Scheduler = g.Stats()
	tally.finish()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Playfield Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// tally observes the board and folds every finished game into the report.
type tally struct {
	game   *game.Game
	report *Report
	lines  int
	level  int
}

func (t *tally) Progressed(state board.State) {
	t.lines = state.TotalLines
	t.level = state.Level
}

func (t *tally) GameOver(finalScore int) {
	t.record(finalScore, t.game.Session().Pieces)
	t.lines, t.level = 0, 1
}

// finish records the game still in progress when the soak ends.
func (t *tally) finish() {
	if t.game.Board().Status() == board.Playing {
		t.record(t.game.State().Score, t.game.Session().Pieces)
	}
}

func (t *tally) record(score, pieces int) {
	r := t.report
	r.Games++
	r.Pieces += pieces
	r.Lines += t.lines
	r.BestScore = max(r.BestScore, score)
	r.MaxLevel = max(r.MaxLevel, t.level)
}
