package constraints

import (
	"fmt"
	"math"
	"strings"

	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

// WindowType mirrors the EWMH window types the solver distinguishes.
type WindowType int

const (
	TypeNormal WindowType = iota
	TypeDesktop
	TypeDock
	TypeDialog
	TypeModalDialog
	TypeMenu
	TypeToolbar
	TypeUtility
	TypeSplash
)

var windowTypeNames = [...]string{
	"normal",
	"desktop",
	"dock",
	"dialog",
	"modal-dialog",
	"menu",
	"toolbar",
	"utility",
	"splash",
}

func (t WindowType) String() string {
	if t >= 0 && int(t) < len(windowTypeNames) {
		return windowTypeNames[t]
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ParseWindowType converts a type name; an empty string means TypeNormal.
func ParseWindowType(s string) (WindowType, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if norm == "" {
		return TypeNormal, nil
	}
	for i, name := range windowTypeNames {
		if norm == name {
			return WindowType(i), nil
		}
	}
	return TypeNormal, fmt.Errorf("unknown window type %q", s)
}

// Borders holds per-edge frame extents in pixels.
type Borders struct {
	Left   int `yaml:"left" json:"left,omitempty"`
	Right  int `yaml:"right" json:"right,omitempty"`
	Top    int `yaml:"top" json:"top,omitempty"`
	Bottom int `yaml:"bottom" json:"bottom,omitempty"`
}

// FrameBorders separates the visible decoration from the total extents,
// which may include invisible resize handles or shadows.
type FrameBorders struct {
	Visible Borders `yaml:"visible" json:"visible"`
	Total   Borders `yaml:"total" json:"total,omitempty"`
}

// Frame is the decoration around a client window. Rect is the outer
// rectangle in root coordinates.
type Frame struct {
	Rect    geom.Rect
	Borders FrameBorders
}

// Aspect is a width:height ratio.
type Aspect struct {
	Num int `yaml:"num" json:"num"`
	Den int `yaml:"den" json:"den"`
}

// Ratio returns Num/Den and false when Den is zero.
func (a Aspect) Ratio() (float64, bool) {
	if a.Den == 0 {
		return 0, false
	}
	return float64(a.Num) / float64(a.Den), true
}

// SizeHints are the client's WM_NORMAL_HINTS, in client coordinates.
type SizeHints struct {
	MinWidth   int    `yaml:"min_width" json:"min_width,omitempty"`
	MinHeight  int    `yaml:"min_height" json:"min_height,omitempty"`
	MaxWidth   int    `yaml:"max_width" json:"max_width,omitempty"`
	MaxHeight  int    `yaml:"max_height" json:"max_height,omitempty"`
	BaseWidth  int    `yaml:"base_width" json:"base_width,omitempty"`
	BaseHeight int    `yaml:"base_height" json:"base_height,omitempty"`
	WidthInc   int    `yaml:"width_inc" json:"width_inc,omitempty"`
	HeightInc  int    `yaml:"height_inc" json:"height_inc,omitempty"`
	MinAspect  Aspect `yaml:"min_aspect" json:"min_aspect,omitempty"`
	MaxAspect  Aspect `yaml:"max_aspect" json:"max_aspect,omitempty"`
}

// DefaultSizeHints returns hints that constrain nothing.
func DefaultSizeHints() SizeHints {
	return SizeHints{
		MinWidth:  1,
		MinHeight: 1,
		MaxWidth:  math.MaxInt32,
		MaxHeight: math.MaxInt32,
		WidthInc:  1,
		HeightInc: 1,
		MinAspect: Aspect{Num: 1, Den: math.MaxInt32},
		MaxAspect: Aspect{Num: math.MaxInt32, Den: 1},
	}
}

// Normalize repairs hints a client may send in an unusable state: zero
// increments, non-positive minimums, unset maximums and max < min. Aspect
// hints with a zero denominator are kept; the aspect rule ignores them.
func (h *SizeHints) Normalize() {
	if h.WidthInc < 1 {
		h.WidthInc = 1
	}
	if h.HeightInc < 1 {
		h.HeightInc = 1
	}
	if h.MinWidth < 1 {
		h.MinWidth = 1
	}
	if h.MinHeight < 1 {
		h.MinHeight = 1
	}
	if h.MaxWidth <= 0 {
		h.MaxWidth = math.MaxInt32
	}
	if h.MaxHeight <= 0 {
		h.MaxHeight = math.MaxInt32
	}
	if h.MaxWidth < h.MinWidth {
		h.MaxWidth = h.MinWidth
	}
	if h.MaxHeight < h.MinHeight {
		h.MaxHeight = h.MinHeight
	}
	if h.BaseWidth < 0 {
		h.BaseWidth = 0
	}
	if h.BaseHeight < 0 {
		h.BaseHeight = 0
	}
}

// Unset entries in Window.FullscreenMonitors hold this value.
const NoMonitor = -1

// Window is the long-lived state of one managed window.
//
// RequireFullyOnscreen, RequireOnSingleMonitor and RequireTitlebarVisible
// are written only by Solver after each solve. They record what the window
// satisfied last time so later programmatic operations keep preserving it.
// Everything else belongs to the caller.
type Window struct {
	Desc         string
	Type         WindowType
	TransientFor *Window
	Decorated    bool
	// Frame is nil for undecorated windows.
	Frame *Frame
	// CustomFrameExtents are client-drawn shadows, used when Frame is nil.
	CustomFrameExtents Borders

	Rect                  geom.Rect
	Fullscreen            bool
	MaximizedHorizontally bool
	MaximizedVertically   bool
	Minimized             bool
	Placed                bool
	CalcPlacement         bool
	TileMode              tiling.Mode
	TileResized           bool
	// FullscreenMonitors are the top, bottom, left and right monitor
	// indexes of _NET_WM_FULLSCREEN_MONITORS.
	FullscreenMonitors [4]int
	SizeHints          SizeHints

	MaximizeHorizontallyAfterPlacement bool
	MaximizeVerticallyAfterPlacement   bool
	FullscreenAfterPlacement           bool
	MinimizeAfterPlacement             bool
	SavedRect                          geom.Rect
	UserRect                           geom.Rect

	RequireFullyOnscreen   bool
	RequireOnSingleMonitor bool
	RequireTitlebarVisible bool
}

// NewWindow returns a placed, decorated normal window at rect with default
// hints and all onscreen requirements set.
func NewWindow(desc string, rect geom.Rect) *Window {
	return &Window{
		Desc:                   desc,
		Type:                   TypeNormal,
		Decorated:              true,
		Rect:                   rect,
		Placed:                 true,
		TileMode:               tiling.ModeNone,
		FullscreenMonitors:     [4]int{NoMonitor, NoMonitor, NoMonitor, NoMonitor},
		SizeHints:              DefaultSizeHints(),
		SavedRect:              rect,
		UserRect:               rect,
		RequireFullyOnscreen:   true,
		RequireOnSingleMonitor: true,
		RequireTitlebarVisible: true,
	}
}

// Maximized reports whether both axes are maximized.
func (w *Window) Maximized() bool {
	return w.MaximizedHorizontally && w.MaximizedVertically
}

// Tiled reports whether the window is snapped to a tile area.
func (w *Window) Tiled() bool { return w.TileMode.Tiled() }

// SetTileMode snaps or unsnaps the window. Any size the user dragged the
// previous tile to is forgotten.
func (w *Window) SetTileMode(mode tiling.Mode) {
	w.TileMode = mode
	w.TileResized = false
}

// SetFrame decorates the window with borders, or removes the frame when
// borders is nil. The frame rectangle follows Rect.
func (w *Window) SetFrame(borders *FrameBorders) {
	if borders == nil {
		w.Frame = nil
		return
	}
	w.Frame = &Frame{Borders: *borders}
	w.SetRect(w.Rect)
}

// SetRect moves the client to r and keeps the frame rectangle around it.
func (w *Window) SetRect(r geom.Rect) {
	w.Rect = r
	if w.Frame == nil {
		return
	}
	v := w.Frame.Borders.Visible
	w.Frame.Rect = geom.Rect{
		X:      r.X - v.Left,
		Y:      r.Y - v.Top,
		Width:  r.Width + v.Left + v.Right,
		Height: r.Height + v.Top + v.Bottom,
	}
}

// maximize sets the maximized axes, remembering saved as the rectangle to
// restore to.
func (w *Window) maximize(horizontal, vertical bool, saved geom.Rect) {
	w.SavedRect = saved
	if horizontal {
		w.MaximizedHorizontally = true
	}
	if vertical {
		w.MaximizedVertically = true
	}
}
