// Command vrr-sim is an interactive refresh-rate arbitration simulator.
//
// It loads a display configuration, stands in for the policy sources and
// the hardware-timing collaborator, and lets you submit and clear votes
// per display while watching the resolved desired spec change.
//
// Usage:
//
//	vrr-sim [flags]
//
// Flags:
//
//	-config string     Display configuration file path (YAML, required)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-event-log string  Write arbitration events to this .vlog file
//
// Examples:
//
//	# Start with a two-display configuration
//	vrr-sim -config displays.yaml
//
//	# Capture an event trace for vrr-log
//	vrr-sim -config displays.yaml -event-log arbitration.vlog -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vrr-project/vrr-go/pkg/arbiter"
	"github.com/vrr-project/vrr-go/pkg/config"
	"github.com/vrr-project/vrr-go/pkg/director"
	"github.com/vrr-project/vrr-go/pkg/display"
	vrrlog "github.com/vrr-project/vrr-go/pkg/log"
)

func main() {
	configPath := flag.String("config", "", "Display configuration file path (YAML, required)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	eventLog := flag.String("event-log", "", "Write arbitration events to this .vlog file")
	flag.Parse()

	setupLogging(*logLevel)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "path", *configPath, "err", err)
		os.Exit(1)
	}

	// Event capture: console at debug level, plus an optional file.
	loggers := []vrrlog.Logger{vrrlog.NewSlogAdapter(slog.Default())}
	if *eventLog != "" {
		fl, err := vrrlog.NewFileLogger(*eventLog)
		if err != nil {
			slog.Error("failed to open event log", "path", *eventLog, "err", err)
			os.Exit(1)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}

	dir := director.NewWithLogger(vrrlog.NewMultiLogger(loggers...))
	if err := cfg.ApplyTo(dir); err != nil {
		slog.Error("failed to apply configuration", "err", err)
		os.Exit(1)
	}
	slog.Info("displays configured", "count", len(dir.Displays()))

	sim, err := NewSim(dir)
	if err != nil {
		slog.Error("failed to start interactive session", "err", err)
		os.Exit(1)
	}

	// Stand-in for the hardware-timing collaborator: print what it
	// would program on the next frame boundary.
	dir.OnDesiredSpecChanged(func(id display.ID, spec arbiter.DesiredSpec) {
		fmt.Fprintf(sim.Stdout(), "display %d -> %s\n", id, spec)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sim.Run(ctx, cancel)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
