package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xinerama"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
	"github.com/1broseidon/winfit/internal/geom"
)

// Monitor represents a physical display
type Monitor struct {
	ID   int
	Name string
	Rect geom.Rect
}

// Monitors lists the active monitors through RandR, falling back to
// Xinerama when RandR is unavailable or reports nothing.
func (c *Connection) Monitors() ([]Monitor, error) {
	monitors, err := c.randrMonitors()
	if err == nil && len(monitors) > 0 {
		return monitors, nil
	}

	heads, xerr := xinerama.PhysicalHeads(c.XUtil)
	if xerr != nil {
		if err != nil {
			return nil, fmt.Errorf("randr: %v; xinerama: %w", err, xerr)
		}
		return nil, fmt.Errorf("xinerama: %w", xerr)
	}
	for i, head := range heads {
		monitors = append(monitors, Monitor{
			ID:   i,
			Name: fmt.Sprintf("Head%d", i),
			Rect: geom.FromXRect(head),
		})
	}
	if len(monitors) == 0 {
		return nil, desktop.ErrNoMonitors
	}
	return monitors, nil
}

func (c *Connection) randrMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:   len(monitors),
			Name: outputName,
			Rect: geom.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}
	return monitors, nil
}

// Struts collects the panel reservations of every dock visible on the
// current desktop, in root coordinates.
func (c *Connection) Struts() ([]geom.Strut, error) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get root geometry: %w", err)
	}
	root := geom.Rect{Width: int(rootGeom.Width), Height: int(rootGeom.Height)}

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	current, curErr := c.CurrentDesktop()

	var struts []geom.Strut
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil || windowTypeFromEWMH(types, nil, false) != constraints.TypeDock {
			continue
		}
		if curErr == nil && !c.onDesktop(windowID, current) {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			struts = append(struts, partialStrut(sp).Struts(root)...)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			full := desktop.FullStrut(root, int(s.Left), int(s.Right), int(s.Top), int(s.Bottom))
			struts = append(struts, full.Struts(root)...)
		}
	}
	return struts, nil
}

// Layout snapshots the monitors and struts of the current desktop.
func (c *Connection) Layout() (*desktop.Layout, []Monitor, error) {
	monitors, err := c.Monitors()
	if err != nil {
		return nil, nil, err
	}
	struts, err := c.Struts()
	if err != nil {
		// A desktop without EWMH clients still has usable monitors.
		struts = nil
	}

	rects := make([]geom.Rect, len(monitors))
	for i, m := range monitors {
		rects[i] = m.Rect
	}
	layout, err := desktop.New(rects, struts)
	if err != nil {
		return nil, nil, err
	}
	return layout, monitors, nil
}

func partialStrut(sp *ewmh.WmStrutPartial) desktop.PartialStrut {
	return desktop.PartialStrut{
		Left:         int(sp.Left),
		Right:        int(sp.Right),
		Top:          int(sp.Top),
		Bottom:       int(sp.Bottom),
		LeftStartY:   int(sp.LeftStartY),
		LeftEndY:     int(sp.LeftEndY),
		RightStartY:  int(sp.RightStartY),
		RightEndY:    int(sp.RightEndY),
		TopStartX:    int(sp.TopStartX),
		TopEndX:      int(sp.TopEndX),
		BottomStartX: int(sp.BottomStartX),
		BottomEndX:   int(sp.BottomEndX),
	}
}
