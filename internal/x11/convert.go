package x11

import (
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
)

const (
	stateModal     = "_NET_WM_STATE_MODAL"
	stateMaxHorz   = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert   = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateFullscrn  = "_NET_WM_STATE_FULLSCREEN"
	stateHidden    = "_NET_WM_STATE_HIDDEN"
	typeAtomPrefix = "_NET_WM_WINDOW_TYPE_"
)

var windowTypes = map[string]constraints.WindowType{
	"NORMAL":        constraints.TypeNormal,
	"DESKTOP":       constraints.TypeDesktop,
	"DOCK":          constraints.TypeDock,
	"DIALOG":        constraints.TypeDialog,
	"MENU":          constraints.TypeMenu,
	"DROPDOWN_MENU": constraints.TypeMenu,
	"POPUP_MENU":    constraints.TypeMenu,
	"TOOLBAR":       constraints.TypeToolbar,
	"UTILITY":       constraints.TypeUtility,
	"SPLASH":        constraints.TypeSplash,
}

// windowTypeFromEWMH picks the first _NET_WM_WINDOW_TYPE the solver knows.
// Windows without one are dialogs when transient and normal otherwise.
// Dialogs in the modal state become modal dialogs.
func windowTypeFromEWMH(types, states []string, transient bool) constraints.WindowType {
	t := constraints.TypeNormal
	if transient {
		t = constraints.TypeDialog
	}
	for _, atom := range types {
		if len(atom) <= len(typeAtomPrefix) || atom[:len(typeAtomPrefix)] != typeAtomPrefix {
			continue
		}
		if known, ok := windowTypes[atom[len(typeAtomPrefix):]]; ok {
			t = known
			break
		}
	}
	if t == constraints.TypeDialog && hasState(states, stateModal) {
		t = constraints.TypeModalDialog
	}
	return t
}

func hasState(states []string, want string) bool {
	for _, s := range states {
		if s == want {
			return true
		}
	}
	return false
}

// applyStates copies the _NET_WM_STATE atoms the solver cares about.
func applyStates(w *constraints.Window, states []string) {
	w.MaximizedHorizontally = hasState(states, stateMaxHorz)
	w.MaximizedVertically = hasState(states, stateMaxVert)
	w.Fullscreen = hasState(states, stateFullscrn)
	w.Minimized = hasState(states, stateHidden)
}

// sizeHintsFromNormal converts WM_NORMAL_HINTS. As ICCCM prescribes, a
// missing minimum falls back to the base size and a missing base size to
// the minimum.
func sizeHintsFromNormal(nh *icccm.NormalHints) constraints.SizeHints {
	h := constraints.DefaultSizeHints()
	if nh == nil {
		return h
	}

	hasMin := nh.Flags&icccm.SizeHintPMinSize != 0
	hasBase := nh.Flags&icccm.SizeHintPBaseSize != 0

	switch {
	case hasMin:
		h.MinWidth, h.MinHeight = int(nh.MinWidth), int(nh.MinHeight)
	case hasBase:
		h.MinWidth, h.MinHeight = int(nh.BaseWidth), int(nh.BaseHeight)
	}
	switch {
	case hasBase:
		h.BaseWidth, h.BaseHeight = int(nh.BaseWidth), int(nh.BaseHeight)
	case hasMin:
		h.BaseWidth, h.BaseHeight = int(nh.MinWidth), int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		h.MaxWidth, h.MaxHeight = int(nh.MaxWidth), int(nh.MaxHeight)
	}
	if nh.Flags&icccm.SizeHintPResizeInc != 0 {
		h.WidthInc, h.HeightInc = int(nh.WidthInc), int(nh.HeightInc)
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 {
		h.MinAspect = constraints.Aspect{Num: int(nh.MinAspectNum), Den: int(nh.MinAspectDen)}
		h.MaxAspect = constraints.Aspect{Num: int(nh.MaxAspectNum), Den: int(nh.MaxAspectDen)}
	}

	h.Normalize()
	return h
}

// gravityFromNormal returns the window's win_gravity, NorthWest when unset.
func gravityFromNormal(nh *icccm.NormalHints) geom.Gravity {
	if nh == nil || nh.Flags&icccm.SizeHintPWinGravity == 0 {
		return geom.GravityNorthWest
	}
	g := geom.Gravity(nh.WinGravity)
	if g < geom.GravityNorthWest || g > geom.GravityStatic {
		return geom.GravityNorthWest
	}
	return g
}

// frameFromExtents builds frame borders from _NET_FRAME_EXTENTS. The WM
// reports one set of extents, so the visible and total borders match. It
// returns nil when the window has no frame.
func frameFromExtents(ext *ewmh.FrameExtents) *constraints.FrameBorders {
	if ext == nil {
		return nil
	}
	b := constraints.Borders{
		Left:   int(ext.Left),
		Right:  int(ext.Right),
		Top:    int(ext.Top),
		Bottom: int(ext.Bottom),
	}
	if b == (constraints.Borders{}) {
		return nil
	}
	return &constraints.FrameBorders{Visible: b, Total: b}
}

// frameFromDecor derives frame borders from the client rectangle and the
// rectangle of its outermost parent below the root.
func frameFromDecor(client, decor geom.Rect) *constraints.FrameBorders {
	b := constraints.Borders{
		Left:   max(client.X-decor.X, 0),
		Right:  max(decor.Right()-client.Right(), 0),
		Top:    max(client.Y-decor.Y, 0),
		Bottom: max(decor.Bottom()-client.Bottom(), 0),
	}
	if b == (constraints.Borders{}) {
		return nil
	}
	return &constraints.FrameBorders{Visible: b, Total: b}
}

// fullscreenMonitors converts _NET_WM_FULLSCREEN_MONITORS, which lists the
// top, bottom, left and right monitors in that order.
func fullscreenMonitors(fm *ewmh.WmFullscreenMonitors) [4]int {
	if fm == nil {
		return [4]int{constraints.NoMonitor, constraints.NoMonitor, constraints.NoMonitor, constraints.NoMonitor}
	}
	return [4]int{int(fm.Top), int(fm.Bottom), int(fm.Left), int(fm.Right)}
}
