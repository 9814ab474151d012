package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/scenario"
)

// styles renders plain text unless enabled.
type styles struct {
	enabled bool
	name    lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return styles{
		enabled: enabled,
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func runSolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Trace every rule evaluation to stderr")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	configPath := fs.String("config", "", "Config file path (default: ~/.config/winfit/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfit solve [-v] [--json] [--config PATH] FILE...")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Run each scenario file through the solver and print the resulting")
		fmt.Fprintln(stderr, "rectangle, the priority the solver stopped at and the dropped rules.")
		fmt.Fprintln(stderr, "Exits 1 when a scenario fails to load or misses its expectation.")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := loggerFor(stderr, res.Config, *verbose)
	st := newStyles(stdout)

	failed := false
	var reports []scenario.Report
	for _, path := range fs.Args() {
		report, err := solveFile(path, res.Config, constraints.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			failed = true
			continue
		}
		if report.Matches != nil && !*report.Matches {
			failed = true
		}
		if *asJSON {
			reports = append(reports, report)
			continue
		}
		printReport(stdout, st, report)
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if failed {
		return 1
	}
	return 0
}

// solveFile runs one scenario. Scenarios without preferences use cfg's.
func solveFile(path string, cfg *config.Config, opts ...constraints.Option) (scenario.Report, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return scenario.Report{}, err
	}
	if sc.Preferences == nil {
		attach := cfg.Preferences.AttachModal
		center := cfg.Preferences.CenterNewWindows
		sc.Preferences = &scenario.Preferences{
			AttachModalDialogs: &attach,
			CenterNewWindows:   &center,
		}
	}
	out, err := sc.Run(opts...)
	if err != nil {
		return scenario.Report{}, err
	}
	return out.Report(), nil
}

func printReport(w io.Writer, st styles, r scenario.Report) {
	status := st.render(st.ok, "ok")
	switch {
	case r.Matches != nil && !*r.Matches:
		status = st.render(st.fail, "FAIL")
	case !r.Satisfied:
		status = st.render(st.warn, "unsatisfied")
	}

	fmt.Fprintf(w, "%s  %s  priority %d  %s\n", st.render(st.name, r.Name), r.Rect, r.Priority, status)
	if len(r.Violated) > 0 {
		fmt.Fprintf(w, "  dropped: %s\n", strings.Join(r.Violated, ", "))
	}
	if r.Matches != nil && !*r.Matches {
		fmt.Fprintf(w, "  expected: %s\n", r.Expected)
	}
	req := r.Requirements
	fmt.Fprintln(w, st.render(st.dim, fmt.Sprintf("  requires: fully_onscreen=%t single_monitor=%t titlebar_visible=%t",
		req.FullyOnscreen, req.SingleMonitor, req.TitlebarVisible)))
}

func runRules(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "Print rules as JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winfit rules [--json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "List the constraint rules in evaluation order. Rules with the lowest")
		fmt.Fprintln(stderr, "priority are dropped first; ungated rules are never dropped.")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rules := constraints.Rules()
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rules); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	st := newStyles(stdout)
	for _, r := range rules {
		note := ""
		if !r.Gated {
			note = st.render(st.dim, "  (never dropped)")
		}
		fmt.Fprintf(stdout, "%-20s priority %d%s\n", r.Name, r.Priority, note)
	}
	return 0
}
