// Package constraints computes the final geometry of a window move or
// resize.
//
// The solver enforces an ordered set of rules (maximization, tiling, size
// hints, staying onscreen and so on). When the rules conflict it drops the
// least important ones, one priority level at a time, until the remaining
// ones hold together. A solve is synchronous, never fails and touches no
// state other than the window's three Require* flags.
package constraints

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/winfit/internal/geom"
)

// Solver constrains window geometry against one screen. Its collaborators
// are read-only; a Solver can be reused across windows by one goroutine at a
// time.
type Solver struct {
	screen Screen
	placer Placer
	theme  Theme
	prefs  Prefs
	log    *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. Rule tracing is logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPlacer sets the placer for windows that were never placed.
func WithPlacer(p Placer) Option {
	return func(s *Solver) {
		if p != nil {
			s.placer = p
		}
	}
}

// WithTheme sets the source of frame metrics.
func WithTheme(t Theme) Option {
	return func(s *Solver) {
		if t != nil {
			s.theme = t
		}
	}
}

// WithPrefs sets the preferences.
func WithPrefs(p Prefs) Option {
	return func(s *Solver) {
		if p != nil {
			s.prefs = p
		}
	}
}

// New returns a solver for screen. Without options it places windows with a
// CascadePlacer, reads borders from the window's own frame and attaches
// modal dialogs to their parents.
func New(screen Screen, opts ...Option) *Solver {
	if screen == nil {
		panic("constraints: nil screen")
	}
	s := &Solver{
		screen: screen,
		placer: CascadePlacer{Screen: screen},
		theme:  FrameTheme{},
		prefs:  StaticPrefs{AttachModal: true},
		log: log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "constraints",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Constrain is Solve returning only the rectangle.
func (s *Solver) Constrain(w *Window, req Request) geom.Rect {
	return s.Solve(w, req).Rect
}

// Solve computes the client rectangle w should get for req and updates the
// window's onscreen requirements. It panics if req neither moves nor
// resizes.
func (s *Solver) Solve(w *Window, req Request) Result {
	c := newContext(w, req, s.screen, s.theme, s.prefs)
	defer c.release()

	tracing := s.log.GetLevel() <= log.DebugLevel
	if tracing {
		s.log.Debug("constraining",
			"window", w.Desc,
			"orig", req.Orig,
			"new", req.New,
			"action", c.action,
			"user", c.userAction,
			"gravity", c.gravity,
			"fixed", c.fixed,
			"work_area", c.workArea,
			"monitor", c.entireMonitor,
		)
	}

	s.place(c)

	threshold := PriorityMinimum
	satisfied := false
	for ; threshold <= PriorityMaximum; threshold++ {
		s.enforceAll(c, threshold, tracing)
		if s.checkAll(c, threshold, tracing) {
			satisfied = true
			break
		}
	}
	if threshold > PriorityMaximum {
		threshold = PriorityMaximum
	}

	result := Result{
		Rect:      c.current,
		Priority:  threshold,
		Satisfied: satisfied,
		Violated:  violations(c),
	}

	s.updateRequirements(c)
	return result
}

func (s *Solver) enforceAll(c *Context, threshold Priority, tracing bool) {
	for _, r := range ruleTable {
		if !r.active(threshold) {
			continue
		}
		r.fn(c, false)
		if tracing {
			s.log.Debug("enforced", "rule", r.name, "threshold", threshold, "current", c.current)
		}
	}
}

func (s *Solver) checkAll(c *Context, threshold Priority, tracing bool) bool {
	for _, r := range ruleTable {
		if !r.active(threshold) {
			continue
		}
		if !r.fn(c, true) {
			if tracing {
				s.log.Debug("not satisfied", "rule", r.name, "threshold", threshold)
			}
			return false
		}
	}
	return true
}

// violations lists every rule that fails on the final rectangle when no rule
// is dropped.
func violations(c *Context) []RuleName {
	var out []RuleName
	for _, r := range ruleTable {
		if !r.fn(c, true) {
			out = append(out, r.name)
		}
	}
	return out
}

// place positions a window that was never placed, then applies the states a
// client asked for before it was mapped.
func (s *Solver) place(c *Context) {
	w := c.win

	didPlacement := false
	if !w.Placed && w.CalcPlacement &&
		!(w.MaximizedHorizontally || w.MaximizedVertically) &&
		!w.Minimized && !w.Fullscreen {
		x, y := s.placer.Place(w, *c.borders.fb, c.orig.X, c.orig.Y)
		placed := c.orig
		placed.X, placed.Y = x, y

		// Placement may have picked another monitor.
		c.resolveMonitor(s.screen, placed)
		c.current.X = x
		c.current.Y = y
		c.fixed = geom.FixedNone
		w.Placed = true
		didPlacement = true

		s.log.Debug("placed", "window", w.Desc, "x", x, "y", y, "monitor", c.monitorIndex)
	}

	if w.Placed || didPlacement {
		if w.MaximizeHorizontallyAfterPlacement ||
			w.MaximizeVerticallyAfterPlacement ||
			w.FullscreenAfterPlacement {
			c.current = restorable(c.current, c.workArea)

			if w.MaximizeHorizontallyAfterPlacement || w.MaximizeVerticallyAfterPlacement {
				w.maximize(w.MaximizeHorizontallyAfterPlacement, w.MaximizeVerticallyAfterPlacement, c.current)
			}

			// Maximizing may change the frame.
			if w.Frame != nil && !w.Fullscreen {
				*c.borders.fb = s.theme.Borders(w)
				w.Frame.Borders = *c.borders.fb
			}

			if w.FullscreenAfterPlacement {
				w.SavedRect = c.current
				w.Fullscreen = true
				w.FullscreenAfterPlacement = false
			}

			w.MaximizeHorizontallyAfterPlacement = false
			w.MaximizeVerticallyAfterPlacement = false
		}
		w.UserRect = c.current
		if w.MinimizeAfterPlacement {
			w.Minimized = true
		}
	}

	w.MinimizeAfterPlacement = false
}

// restorable shrinks r to three quarters of the work area on any axis it
// fills, so that unmaximizing later has somewhere sensible to go.
func restorable(r, workArea geom.Rect) geom.Rect {
	if r.Width >= workArea.Width {
		r.Width = int(.75 * float64(workArea.Width))
		r.X = workArea.X + int(.125*float64(workArea.Width))
	}
	if r.Height >= workArea.Height {
		r.Height = int(.75 * float64(workArea.Height))
		r.Y = workArea.Y + int(.083*float64(workArea.Height))
	}
	return r
}

// updateRequirements is the only writer of the window's Require* flags.
// Fullscreen windows keep their flags so that leaving fullscreen restores
// the old behavior.
func (s *Solver) updateRequirements(c *Context) {
	w := c.win
	if w.Type == TypeDesktop || w.Type == TypeDock || w.Fullscreen {
		return
	}

	outer := c.outer(c.current)

	old := w.RequireFullyOnscreen
	w.RequireFullyOnscreen = c.screenRegion.ContainsRect(outer.Rect)
	if old != w.RequireFullyOnscreen {
		s.log.Debug("requirement toggled", "window", w.Desc, "fully_onscreen", w.RequireFullyOnscreen)
	}

	old = w.RequireOnSingleMonitor
	w.RequireOnSingleMonitor = c.monitorRegion.ContainsRect(outer.Rect)
	if old != w.RequireOnSingleMonitor {
		s.log.Debug("requirement toggled", "window", w.Desc, "single_monitor", w.RequireOnSingleMonitor)
	}

	if w.Frame != nil && w.Decorated {
		titlebar := outer.Rect
		titlebar.Height = c.visible().Top
		old = w.RequireTitlebarVisible
		w.RequireTitlebarVisible = c.screenRegion.OverlapsRect(titlebar)
		if old != w.RequireTitlebarVisible {
			s.log.Debug("requirement toggled", "window", w.Desc, "titlebar_visible", w.RequireTitlebarVisible)
		}
	}
}
