package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"termgl/app"
	"termgl/hal"
	"termgl/internal/buildinfo"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file.")
		mode       = flag.String("mode", "", "term|ansi|window|headless.")
		sceneName  = flag.String("scene", "", "Scene to show (vertex, cube, torus, tunnel).")
		hz         = flag.Int("hz", 0, "Frames per second.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N frames (0 = run until quit).")
		width      = flag.Int("width", 0, "Buffer width in pixels (0 = host size).")
		height     = flag.Int("height", 0, "Buffer height in pixels, even (0 = host size).")
		logFile    = flag.String("log", "", "Write JSON logs to this file.")
		version    = flag.Bool("version", false, "Print the build and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(*configPath); err != nil {
			fatalf("%v", err)
		}
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = app.Mode(*mode)
		case "scene":
			cfg.Scene = *sceneName
		case "hz":
			cfg.Hz = *hz
		case "ticks":
			cfg.Ticks = *ticks
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "log":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	log, err := app.NewLogger(cfg.Log)
	if err != nil {
		fatalf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, log)
	if hal.IsCleanExit(err) {
		log.Info("bye")
		return
	}
	log.Error("run failed", zap.Error(err))
	_ = log.Sync()
	fatalf("%v", err)
}

func run(ctx context.Context, cfg app.Config, log *zap.Logger) error {
	newApp := app.Factory(cfg, log)
	rc := hal.RunConfig{Hz: cfg.Hz, Ticks: cfg.Ticks}

	switch cfg.Mode {
	case app.ModeTerm:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		return hal.RunTerminal(ctx, screen, newApp, rc)
	case app.ModeANSI:
		w, h := cfg.FixedSize()
		return hal.RunHeadless(ctx, hal.NewStreamHost(os.Stdout, w, h), newApp, rc)
	case app.ModeWindow:
		w, h := cfg.FixedSize()
		return hal.RunWindow(newApp, hal.WindowConfig{RunConfig: rc, Width: w, Height: h})
	case app.ModeHeadless:
		w, h := cfg.FixedSize()
		return hal.RunHeadless(ctx, hal.NewHeadlessHost(w, h), newApp, rc)
	}
	return fmt.Errorf("unknown mode %q", cfg.Mode)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
