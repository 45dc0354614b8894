// Command sample runs the graph without a window, stepping it at the
// configured tick rate and writing every frame to CSV.
package main

import (
	"flag"
	"log/slog"
	"os"

	"surface-graph/internal/app"
	"surface-graph/internal/config"
	"surface-graph/internal/core"
	"surface-graph/internal/export"
	"surface-graph/internal/graph"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := flags.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		slog.Error("sampling failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) (err error) {
	opts, err := graph.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Logger = logger
	g, err := graph.New(opts)
	if err != nil {
		return err
	}

	out, err := export.NewWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	timer := core.NewFixedStep(cfg.Display.TPS)
	slog.Info("starting headless sampling",
		"function", g.Function().String(),
		"resolution", g.Resolution(),
		"frames", cfg.Output.Frames,
		"tps", timer.TPS(),
		"output", out.Dir(),
	)

	var stats export.HeightStats
	for frame := 0; frame <= cfg.Output.Frames; frame++ {
		if frame > 0 {
			if err := g.Step(timer.Tick()); err != nil {
				return err
			}
		}
		stats, err = out.WriteFrame(export.Frame{
			Index:      frame,
			Time:       g.Time(),
			Function:   g.Function().String(),
			Resolution: g.Resolution(),
			Points:     g.Points(),
		})
		if err != nil {
			return err
		}
		slog.Debug("frame", "frame", frame, "time", g.Time(), "min_y", stats.Min, "max_y", stats.Max)
	}

	slog.Info("sampling complete",
		"ticks", timer.Ticks(),
		"elapsed", timer.Elapsed(),
		"function", g.Function().String(),
		"mean_y", stats.Mean,
		"stddev_y", stats.StdDev,
	)
	return nil
}
