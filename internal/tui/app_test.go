package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	return newModel(Options{
		Layout:        testLayout(t),
		Window:        constraints.NewWindow("w", geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}),
		SolverOptions: []constraints.Option{constraints.WithLogger(log.New(io.Discard))},
	})
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_Move(t *testing.T) {
	m := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})

	want := geom.Rect{X: 140, Y: 140, Width: 300, Height: 200}
	if m.win.Rect != want {
		t.Fatalf("expected %v, got %v", want, m.win.Rect)
	}
	if m.solves != 2 || m.lastAction != "move" {
		t.Fatalf("unexpected bookkeeping: solves=%d action=%q", m.solves, m.lastAction)
	}
}

func TestModel_Resize(t *testing.T) {
	m := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyShiftRight}, tea.KeyMsg{Type: tea.KeyShiftUp})

	want := geom.Rect{X: 100, Y: 100, Width: 340, Height: 160}
	if m.win.Rect != want {
		t.Fatalf("expected %v, got %v", want, m.win.Rect)
	}
}

func TestModel_ResizeHonorsHints(t *testing.T) {
	m := newTestModel(t)
	m.win.SizeHints.MaxWidth = 320
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftRight})

	if m.win.Rect.Width != 320 || m.win.Rect.X != 100 {
		t.Fatalf("expected width capped at 320 from x=100, got %v", m.win.Rect)
	}
}

func TestModel_MaximizeToggle(t *testing.T) {
	m := press(t, newTestModel(t), runeKey('m'))

	if !m.win.Maximized() {
		t.Fatalf("expected window maximized")
	}
	if want := (geom.Rect{Width: 1000, Height: 500}); m.win.Rect != want {
		t.Fatalf("expected %v, got %v", want, m.win.Rect)
	}

	m = press(t, m, runeKey('m'))
	if m.win.Maximized() {
		t.Fatalf("expected window restored")
	}
	if want := (geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}); m.win.Rect != want {
		t.Fatalf("expected %v, got %v", want, m.win.Rect)
	}
}

func TestModel_Fullscreen(t *testing.T) {
	m := press(t, newTestModel(t), runeKey('f'))
	if want := (geom.Rect{Width: 1000, Height: 500}); m.win.Rect != want {
		t.Fatalf("expected fullscreen %v, got %v", want, m.win.Rect)
	}

	m = press(t, m, runeKey('f'))
	if want := (geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}); m.win.Rect != want {
		t.Fatalf("expected restore to %v, got %v", want, m.win.Rect)
	}
}

func TestModel_TileCycle(t *testing.T) {
	m := press(t, newTestModel(t), runeKey('t'))
	if m.win.TileMode != tiling.ModeLeft {
		t.Fatalf("expected left tile, got %s", m.win.TileMode)
	}
	if want := (geom.Rect{Width: 500, Height: 500}); m.win.Rect != want {
		t.Fatalf("expected %v, got %v", want, m.win.Rect)
	}

	// Cycle through the remaining modes back to none.
	for i := 0; i < len(tiling.Modes)-1; i++ {
		m = press(t, m, runeKey('t'))
	}
	if m.win.Tiled() {
		t.Fatalf("expected untiled after a full cycle, got %s", m.win.TileMode)
	}
	if want := (geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}); m.win.Rect != want {
		t.Fatalf("expected restore to %v, got %v", want, m.win.Rect)
	}
}

func TestModel_ProgrammaticAndReset(t *testing.T) {
	m := press(t, newTestModel(t), runeKey('p'))
	if !m.programmatic {
		t.Fatalf("expected programmatic mode")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runeKey('r'))
	if want := (geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}); m.win.Rect != want {
		t.Fatalf("expected reset to %v, got %v", want, m.win.Rect)
	}
	if m.lastAction != "reset" {
		t.Fatalf("expected reset action, got %q", m.lastAction)
	}
}

func TestModel_ResetDoesNotShareFrame(t *testing.T) {
	m := newTestModel(t)
	m.initial.SetFrame(&constraints.FrameBorders{Visible: constraints.Borders{Top: 20}})
	m = press(t, m, runeKey('r'))

	m.win.Frame.Borders.Visible.Top = 99
	if m.initial.Frame.Borders.Visible.Top != 20 {
		t.Fatalf("expected initial frame untouched")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	if m.View() != "" {
		t.Fatalf("expected empty view before the first size message")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 30})
	m = next.(model)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	for _, want := range []string{"mode:user", "move #1", "shift+arrows: resize"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newTestModel(t).Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
