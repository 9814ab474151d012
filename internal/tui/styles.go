package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winfit/internal/constraints"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	okDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	warnDot = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Render("●")
	badDot  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("●")
)

// renderStatusBar shows the window's geometry and state.
func renderStatusBar(w *constraints.Window, programmatic bool, width int) string {
	mode := "user"
	if programmatic {
		mode = "programmatic"
	}
	parts := []string{
		w.Desc,
		w.Rect.String(),
		"mode:" + mode,
	}
	if w.Maximized() {
		parts = append(parts, "maximized")
	}
	if w.Fullscreen {
		parts = append(parts, "fullscreen")
	}
	if w.Tiled() {
		parts = append(parts, "tile:"+string(w.TileMode))
	}
	parts = append(parts, requirementFlags(w))

	return barStyle.Width(width).Render(strings.Join(parts, "  "))
}

func requirementFlags(w *constraints.Window) string {
	flag := func(name string, on bool) string {
		if on {
			return "+" + name
		}
		return "-" + name
	}
	return strings.Join([]string{
		flag("onscreen", w.RequireFullyOnscreen),
		flag("monitor", w.RequireOnSingleMonitor),
		flag("titlebar", w.RequireTitlebarVisible),
	}, " ")
}

// renderResultBar summarizes the last solve.
func renderResultBar(action string, res constraints.Result, solves, width int) string {
	if action == "" {
		return barStyle.Width(width).Render(okDot + " ready")
	}

	dot := okDot
	switch {
	case !res.Satisfied:
		dot = badDot
	case len(res.Violated) > 0:
		dot = warnDot
	}

	status := fmt.Sprintf("%s %s #%d  priority %d", dot, action, solves, res.Priority)
	if len(res.Violated) > 0 {
		names := make([]string, len(res.Violated))
		for i, v := range res.Violated {
			names[i] = string(v)
		}
		status += "  dropped: " + strings.Join(names, ", ")
	}
	return barStyle.Width(width).Render(status)
}

// renderHelpBar renders the bottom help/keybinding bar.
func renderHelpBar(width int) string {
	help := "arrows: move  shift+arrows: resize  m: maximize  f: fullscreen  t: tile  p: user/programmatic  r: reset  q: quit"
	style := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	return style.Render(help)
}

func renderCanvasLines(lines []string) string {
	return canvasStyle.Render(strings.Join(lines, "\n"))
}
