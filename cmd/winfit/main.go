package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/winfit/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "solve":
		os.Exit(runSolve(os.Args[2:], os.Stdout, os.Stderr))
	case "rules":
		os.Exit(runRules(os.Args[2:], os.Stdout, os.Stderr))
	case "x11":
		os.Exit(runX11(os.Args[2:]))
	case "play":
		os.Exit(runPlay(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:], os.Stdout, os.Stderr))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winfit <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  solve FILE...       Run scenario files through the solver")
	fmt.Fprintln(w, "  rules               List constraint rules in evaluation order")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  x11 constrain       Constrain a live X11 window")
	fmt.Fprintln(w, "  x11 monitors        List X11 monitors and panel struts")
	fmt.Fprintln(w, "  play [FILE]         Open the interactive playground")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config path         Print the config file location")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winfit <command> --help' for command-specific options.")
}

func isHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help")
}

// newLogger returns a stderr logger with short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loggerFor builds the logger for a command: debug when verbose, otherwise
// the configured log_level.
func loggerFor(w io.Writer, cfg *config.Config, verbose bool) *log.Logger {
	level := log.WarnLevel
	if cfg != nil {
		if parsed, err := log.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = log.DebugLevel
	}
	return newLogger(w, level)
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadFromPath(path)
}
