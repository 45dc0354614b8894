//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"surface-graph/internal/app"
	"surface-graph/internal/graph"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	opts, err := graph.OptionsFromConfig(cfg)
	if err != nil {
		slog.Error("invalid graph options", "error", err)
		os.Exit(1)
	}
	g, err := graph.New(opts)
	if err != nil {
		slog.Error("failed to build graph", "error", err)
		os.Exit(1)
	}

	view := app.View{
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		Scale:     cfg.Display.Scale,
		PointSize: cfg.Display.PointSize,
		TPS:       cfg.Display.TPS,
	}
	game := app.New(g, view, cfg.Graph.Seed)

	ebiten.SetWindowTitle("surface-graph - " + g.Function().String())
	ebiten.SetTPS(view.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
