// Package tui is an interactive playground that replays keyboard-driven
// moves and resizes through the constraint solver.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
)

// Options configures a playground session.
type Options struct {
	Layout *desktop.Layout
	Window *constraints.Window
	// SolverOptions are passed to constraints.New.
	SolverOptions []constraints.Option
	// Step is the move/resize distance per key press; zero means 40px.
	Step int
}

// Run starts the playground and blocks until the user quits.
func Run(opts Options) error {
	if opts.Layout == nil || opts.Window == nil {
		return fmt.Errorf("playground needs a layout and a window")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("playground requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
