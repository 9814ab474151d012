package tui

import (
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

// defaultStep is how far one key press moves or resizes, in pixels.
const defaultStep = 40

// model is the root bubbletea model of the playground.
type model struct {
	layout *desktop.Layout
	solver *constraints.Solver

	initial *constraints.Window
	win     *constraints.Window

	// programmatic sends requests as an application would instead of as
	// pointer drags.
	programmatic bool
	step         int

	// Rectangles to return to when leaving fullscreen or tiling.
	preFullscreen geom.Rect
	preTile       geom.Rect

	last       constraints.Result
	lastAction string
	solves     int

	// Terminal dimensions
	width  int
	height int
}

func newModel(opts Options) model {
	step := opts.Step
	if step <= 0 {
		step = defaultStep
	}
	return model{
		layout:  opts.Layout,
		solver:  constraints.New(opts.Layout, opts.SolverOptions...),
		initial: cloneWindow(opts.Window),
		win:     cloneWindow(opts.Window),
		step:    step,
		last:    constraints.Result{Rect: opts.Window.Rect, Satisfied: true},
	}
}

// cloneWindow copies w and its frame. The transient parent is shared since
// the solver only reads it.
func cloneWindow(w *constraints.Window) *constraints.Window {
	out := *w
	if w.Frame != nil {
		frame := *w.Frame
		out.Frame = &frame
	}
	return &out
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "left":
			m.move(-m.step, 0)
		case "right":
			m.move(m.step, 0)
		case "up":
			m.move(0, -m.step)
		case "down":
			m.move(0, m.step)

		case "shift+left":
			m.resize(-m.step, 0, geom.GravityWest)
		case "shift+right":
			m.resize(m.step, 0, geom.GravityWest)
		case "shift+up":
			m.resize(0, -m.step, geom.GravityNorth)
		case "shift+down":
			m.resize(0, m.step, geom.GravityNorth)

		case "m":
			m.toggleMaximize()
		case "f":
			m.toggleFullscreen()
		case "t":
			m.cycleTile()
		case "p":
			m.programmatic = !m.programmatic
		case "r":
			m.win = cloneWindow(m.initial)
			m.last = constraints.Result{Rect: m.win.Rect, Satisfied: true}
			m.lastAction = "reset"
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// solve runs one request through the solver and applies the result.
func (m *model) solve(name string, req constraints.Request) {
	m.last = m.solver.Solve(m.win, req)
	m.win.SetRect(m.last.Rect)
	m.lastAction = name
	m.solves++
}

func (m *model) move(dx, dy int) {
	orig := m.win.Rect
	m.solve("move", constraints.Request{
		Move:       true,
		UserAction: !m.programmatic,
		FrameGrab:  !m.programmatic,
		Gravity:    geom.GravityNorthWest,
		Orig:       orig,
		New:        orig.Translate(dx, dy),
	})
}

func (m *model) resize(dw, dh int, gravity geom.Gravity) {
	orig := m.win.Rect
	width, height := orig.Width+dw, orig.Height+dh
	if width < 1 || height < 1 {
		return
	}
	m.solve("resize", constraints.Request{
		Resize:     true,
		UserAction: !m.programmatic,
		Gravity:    gravity,
		Orig:       orig,
		New:        geom.ResizeWithGravity(orig, gravity, width, height),
	})
}

// moveResize is how state changes reach the solver: as a programmatic
// request from the current rectangle to target.
func (m *model) moveResize(name string, target geom.Rect) {
	m.solve(name, constraints.Request{
		Move:    true,
		Resize:  true,
		Gravity: geom.GravityNorthWest,
		Orig:    m.win.Rect,
		New:     target,
	})
}

func (m *model) toggleMaximize() {
	w := m.win
	if w.MaximizedHorizontally || w.MaximizedVertically {
		w.MaximizedHorizontally = false
		w.MaximizedVertically = false
		m.moveResize("unmaximize", w.SavedRect)
		return
	}
	w.SetTileMode(tiling.ModeNone)
	w.SavedRect = w.Rect
	w.MaximizedHorizontally = true
	w.MaximizedVertically = true
	m.moveResize("maximize", w.Rect)
}

func (m *model) toggleFullscreen() {
	w := m.win
	if w.Fullscreen {
		w.Fullscreen = false
		m.moveResize("unfullscreen", m.preFullscreen)
		return
	}
	m.preFullscreen = w.Rect
	w.Fullscreen = true
	m.moveResize("fullscreen", w.Rect)
}

func (m *model) cycleTile() {
	w := m.win
	next := w.TileMode.Next()
	if !w.Tiled() {
		m.preTile = w.Rect
	}
	w.SetTileMode(next)
	if next.Tiled() {
		m.moveResize("tile "+string(next), w.Rect)
		return
	}
	m.moveResize("untile", m.preTile)
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.win, m.programmatic, m.width)
	resultBar := renderResultBar(m.lastAction, m.last, m.solves, m.width)
	helpBar := renderHelpBar(m.width)

	usedHeight := lipgloss.Height(statusBar) + lipgloss.Height(resultBar) + lipgloss.Height(helpBar)
	canvasHeight := m.height - usedHeight
	if canvasHeight < 1 {
		canvasHeight = 1
	}

	canvas := renderCanvas(m.layout, m.win, m.width, canvasHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		renderCanvasLines(canvas),
		resultBar,
		helpBar,
	)
}
