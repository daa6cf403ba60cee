//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	_ "mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Error("select sim", "error", err)
		os.Exit(2)
	}
	sim := factory(cfg.Overrides())
	if l, ok := sim.(interface{ SetLogger(*slog.Logger) }); ok {
		l.SetLogger(log)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-sand - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "error", err)
		os.Exit(1)
	}
}
