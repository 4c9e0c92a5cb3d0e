package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/playfield/debugui"
	debugui_ebiten "github.com/plus3/playfield/debugui/ebiten"
	"github.com/plus3/playfield/game"
	"github.com/plus3/playfield/internal/cli"
	"github.com/plus3/playfield/sim"
)

func main() {
	cfg := cli.NewConfig()
	cfg.Bind(flag.CommandLine)
	debug := flag.Bool("debug", false, "show the Dear ImGui inspector")
	flag.Parse()

	g, err := game.New(cfg.Options(log.Default()))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	frontend := NewFrontend(g)
	width, height := frontend.ScreenSize()

	if *debug {
		backend := debugui_ebiten.New("Playfield - Debug", width*2, height)
		windows := debugui.Install(g.World())
		windows.Get().Add(debugui.NewBoardInspector(g).Render)
		windows.Get().Add(debugui.NewSchedulerStats(g.Scheduler(), 120).Render)
		g.Scheduler().Register(&debugui.ImguiSystem{})

		frontend.imgui = backend
		frontend.imguiInput = sim.NewSingleton[debugui.ImguiInputState](g.World())
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Playfield")
	}

	if err := ebiten.RunGame(frontend); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
