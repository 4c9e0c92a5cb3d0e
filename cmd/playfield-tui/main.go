package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/playfield/game"
	"github.com/plus3/playfield/internal/cli"
)

func main() {
	cfg := cli.NewConfig()
	cfg.Bind(flag.CommandLine)
	tps := flag.Int("tps", 60, "ticks per second")
	mute := flag.Bool("mute", false, "disable sound cues")
	logPath := flag.String("log", "", "write the game log to this file")
	flag.Parse()

	// The terminal owns stdout, so logging goes to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "playfield ", log.LstdFlags)
	}

	g, err := game.New(cfg.Options(logger))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	t := newTerminal(g, screen)
	if !*mute {
		if err := t.cues.init(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("audio initialization failed: %v", err)
		}
	}

	t.run(time.Second / time.Duration(*tps))
	screen.Fini()
	t.cues.close()

	st := g.State()
	fmt.Printf("score %d, level %d, lines %d\n", st.Score, st.Level, st.TotalLines)
}
