package constraints

import "github.com/1broseidon/winfit/internal/geom"

// Screen describes the monitors and reserved areas of the active workspace.
// All rectangles are in root coordinates.
type Screen interface {
	MonitorCount() int
	// MonitorForRect returns the monitor r overlaps most.
	MonitorForRect(r geom.Rect) int
	MonitorRect(index int) (geom.Rect, bool)
	// WorkArea is the monitor minus the struts along its edges.
	WorkArea(index int) geom.Rect
	Struts() []geom.Strut
	// ScreenRegion spans the whole desktop minus struts.
	ScreenRegion() geom.Region
	// MonitorRegion spans one monitor minus struts.
	MonitorRegion(index int) geom.Region
}

// Placer chooses the initial position of a window that has never been
// placed. x and y are the requested client origin.
type Placer interface {
	Place(w *Window, borders FrameBorders, x, y int) (int, int)
}

// Theme supplies frame metrics.
type Theme interface {
	Borders(w *Window) FrameBorders
}

// Prefs exposes the preferences the solver consults.
type Prefs interface {
	AttachModalDialogs() bool
}

// StaticPrefs is a fixed Prefs value.
type StaticPrefs struct {
	AttachModal bool
}

func (p StaticPrefs) AttachModalDialogs() bool { return p.AttachModal }

// FrameTheme reports whatever borders a window's frame already carries.
type FrameTheme struct{}

func (FrameTheme) Borders(w *Window) FrameBorders {
	if w.Frame == nil {
		return FrameBorders{}
	}
	return w.Frame.Borders
}
