package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/x11"
)

func printX11Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winfit x11 <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  constrain    Solve the active window's current geometry")
	fmt.Fprintln(w, "  monitors     List monitors and panel struts")
}

func runX11(args []string) int {
	if len(args) == 0 {
		printX11Usage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "constrain":
		return runX11Constrain(args[1:])
	case "monitors":
		return runX11Monitors(args[1:])
	case "help", "-h", "--help":
		printX11Usage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown x11 command: %s\n\n", args[0])
		printX11Usage(os.Stderr)
		return 2
	}
}

// parseWindowID accepts decimal or 0x-prefixed hex window ids.
func parseWindowID(s string) (xproto.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return xproto.Window(id), nil
}

func runX11Constrain(args []string) int {
	fs := flag.NewFlagSet("x11 constrain", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	windowFlag := fs.String("window", "", "Window id (default: the active window)")
	apply := fs.Bool("apply", false, "Move the window to the solved geometry")
	user := fs.Bool("user", false, "Treat the request as a user action")
	verbose := fs.Bool("v", false, "Trace every rule evaluation to stderr")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/winfit/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winfit x11 constrain [--window ID] [--apply] [--user] [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Read a window and the desktop from the X server, solve a move-resize")
		fmt.Fprintln(os.Stderr, "to the window's current geometry and print the result.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg := res.Config
	logger := loggerFor(os.Stderr, cfg, *verbose)

	conn, err := x11.NewConnection(cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect to X11: %v\n", err)
		return 1
	}
	defer conn.Close()

	var windowID xproto.Window
	if *windowFlag != "" {
		windowID, err = parseWindowID(*windowFlag)
	} else {
		windowID, err = conn.ActiveWindow()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	layout, _, err := conn.Layout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	snap, err := conn.Snapshot(windowID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	w := snap.Window
	req := constraints.Request{
		Move:       true,
		Resize:     true,
		UserAction: *user,
		Gravity:    snap.Gravity,
		Orig:       w.Rect,
		New:        w.Rect,
	}
	if w.Frame != nil {
		borders := w.Frame.Borders
		req.Borders = &borders
	}

	solver := constraints.New(layout,
		constraints.WithLogger(logger),
		constraints.WithPrefs(cfg.Preferences),
	)
	result := solver.Solve(w, req)

	fmt.Printf("window:   %s (%s)\n", w.Desc, w.Type)
	fmt.Printf("current:  %s\n", req.Orig)
	fmt.Printf("solved:   %s\n", result.Rect)
	fmt.Printf("priority: %d\n", result.Priority)
	if len(result.Violated) > 0 {
		fmt.Printf("dropped:  %v\n", result.Violated)
	}

	if !*apply {
		return 0
	}
	if result.Rect == req.Orig {
		fmt.Println("already in place")
		return 0
	}
	if err := conn.MoveResize(snap, result.Rect); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("applied", "window", w.Desc, "rect", result.Rect)
	return 0
}

func runX11Monitors(args []string) int {
	fs := flag.NewFlagSet("x11 monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file path (default: ~/.config/winfit/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	conn, err := x11.NewConnection(res.Config.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect to X11: %v\n", err)
		return 1
	}
	defer conn.Close()

	layout, monitors, err := conn.Layout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for i, m := range monitors {
		fmt.Printf("%d  %-10s %s  work area %s\n", m.ID, m.Name, m.Rect, layout.WorkArea(i))
	}
	for _, s := range layout.Struts() {
		fmt.Printf("strut  %-6s %s\n", s.Side, s.Rect)
	}
	return 0
}
