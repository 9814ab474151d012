package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
)

// Snapshot is a live window read into the solver's model.
type Snapshot struct {
	ID     xproto.Window
	Window *constraints.Window
	// Gravity is the client's win_gravity from WM_NORMAL_HINTS.
	Gravity geom.Gravity
}

// ActiveWindow returns the focused window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// Snapshot reads the window's geometry, type, state, hints and frame. A
// WM_TRANSIENT_FOR parent is read as well, one level deep.
func (c *Connection) Snapshot(windowID xproto.Window) (*Snapshot, error) {
	w, nh, err := c.readWindow(windowID)
	if err != nil {
		return nil, err
	}

	if parent, err := icccm.WmTransientForGet(c.XUtil, windowID); err == nil && parent != 0 && parent != c.Root {
		if pw, _, err := c.readWindow(parent); err == nil {
			w.TransientFor = pw
		}
	}

	return &Snapshot{ID: windowID, Window: w, Gravity: gravityFromNormal(nh)}, nil
}

func (c *Connection) readWindow(windowID xproto.Window) (*constraints.Window, *icccm.NormalHints, error) {
	rect, err := c.clientRect(windowID)
	if err != nil {
		return nil, nil, err
	}

	name, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err != nil || name == "" {
		name, _ = icccm.WmNameGet(c.XUtil, windowID)
	}
	desc := fmt.Sprintf("0x%x", uint32(windowID))
	if name != "" {
		desc = fmt.Sprintf("0x%x (%s)", uint32(windowID), name)
	}

	w := constraints.NewWindow(desc, rect)

	states, _ := ewmh.WmStateGet(c.XUtil, windowID)
	types, _ := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	_, transErr := icccm.WmTransientForGet(c.XUtil, windowID)
	w.Type = windowTypeFromEWMH(types, states, transErr == nil)
	applyStates(w, states)

	nh, err := icccm.WmNormalHintsGet(c.XUtil, windowID)
	if err != nil {
		nh = nil
	}
	w.SizeHints = sizeHintsFromNormal(nh)

	if fm, err := ewmh.WmFullscreenMonitorsGet(c.XUtil, windowID); err == nil {
		w.FullscreenMonitors = fullscreenMonitors(fm)
	}

	if mh, err := motif.WmHintsGet(c.XUtil, windowID); err == nil {
		w.Decorated = motif.Decor(mh)
	}
	if w.Decorated {
		if ext, err := ewmh.FrameExtentsGet(c.XUtil, windowID); err == nil {
			w.SetFrame(frameFromExtents(ext))
		} else if decor, err := xwindow.New(c.XUtil, windowID).DecorGeometry(); err == nil {
			// Reparenting WMs without _NET_FRAME_EXTENTS.
			w.SetFrame(frameFromDecor(rect, geom.FromXRect(decor)))
		}
	}

	return w, nh, nil
}

// clientRect returns the client window's rectangle in root coordinates.
func (c *Connection) clientRect(windowID xproto.Window) (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to get geometry of 0x%x: %w", uint32(windowID), err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to translate coordinates of 0x%x: %w", uint32(windowID), err)
	}
	return geom.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(g.Width),
		Height: int(g.Height),
	}, nil
}

// MoveResize asks the window manager to give the client rect, in root
// coordinates. _NET_MOVERESIZE_WINDOW positions the frame under NorthWest
// gravity, so the origin is shifted by the visible borders.
func (c *Connection) MoveResize(s *Snapshot, rect geom.Rect) error {
	x, y := rect.X, rect.Y
	if s.Window.Frame != nil {
		v := s.Window.Frame.Borders.Visible
		x -= v.Left
		y -= v.Top
	}

	err := ewmh.MoveresizeWindow(c.XUtil, s.ID, x, y, rect.Width, rect.Height)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, s.ID).MoveResize(x, y, rect.Width, rect.Height)
	}
	s.Window.SetRect(rect)
	return nil
}
