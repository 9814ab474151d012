package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/scenario"
	"github.com/1broseidon/winfit/internal/tui"
)

// playgroundBorders decorate the default playground window.
var playgroundBorders = constraints.FrameBorders{
	Visible: constraints.Borders{Left: 2, Right: 2, Top: 24, Bottom: 2},
	Total:   constraints.Borders{Left: 2, Right: 2, Top: 24, Bottom: 2},
}

func runPlay(args []string) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file path (default: ~/.config/winfit/config.yaml)")
	step := fs.Int("step", 40, "Pixels per key press")
	logPath := fs.String("log", "", "Write solver traces to this file")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winfit play [--step N] [--log FILE] [FILE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive playground. Loads the window and desktop from a scenario")
		fmt.Fprintln(os.Stderr, "file, or uses playground.monitors from the config.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  arrows        Move (one pointer-motion sample per press)")
		fmt.Fprintln(os.Stderr, "  shift+arrows  Resize the east/south edge")
		fmt.Fprintln(os.Stderr, "  m / f         Toggle maximize / fullscreen")
		fmt.Fprintln(os.Stderr, "  t             Cycle tile modes")
		fmt.Fprintln(os.Stderr, "  p             Toggle user/programmatic requests")
		fmt.Fprintln(os.Stderr, "  r             Reset")
		fmt.Fprintln(os.Stderr, "  q             Quit")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The playground owns the terminal, so traces go to a file or nowhere.
	var logOut io.Writer = io.Discard
	level := log.WarnLevel
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
		level = log.DebugLevel
	}
	logger := newLogger(logOut, level)

	var opts tui.Options
	if fs.NArg() == 1 {
		opts, err = playScenario(fs.Arg(0))
	} else {
		opts, err = playDefault(res.Config)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	opts.Step = *step
	opts.SolverOptions = append(opts.SolverOptions, constraints.WithLogger(logger))

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func playScenario(path string) (tui.Options, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return tui.Options{}, err
	}
	w, _, layout, err := sc.Build()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Layout:        layout,
		Window:        w,
		SolverOptions: sc.SolverOptions(layout),
	}, nil
}

// playDefault centers a third-of-the-monitor window on the first configured
// monitor.
func playDefault(cfg *config.Config) (tui.Options, error) {
	layout, err := desktop.New(cfg.Playground.Monitors, nil)
	if err != nil {
		return tui.Options{}, err
	}
	mon := cfg.Playground.Monitors[0]
	rect := geom.Rect{
		X:      mon.X + mon.Width/3,
		Y:      mon.Y + mon.Height/3,
		Width:  mon.Width / 3,
		Height: mon.Height / 3,
	}
	w := constraints.NewWindow("window", rect)
	w.SetFrame(&playgroundBorders)

	solverOpts := []constraints.Option{constraints.WithPrefs(cfg.Preferences)}
	if cfg.Preferences.CenterNewWindows {
		solverOpts = append(solverOpts, constraints.WithPlacer(constraints.CenterPlacer{Screen: layout}))
	}
	return tui.Options{Layout: layout, Window: w, SolverOptions: solverOpts}, nil
}
