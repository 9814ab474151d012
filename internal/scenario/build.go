package scenario

import (
	"fmt"
	"strings"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

// Build converts the scenario into solver inputs.
func (s *Scenario) Build() (*constraints.Window, constraints.Request, *desktop.Layout, error) {
	layout, err := s.Layout()
	if err != nil {
		return nil, constraints.Request{}, nil, err
	}

	w, err := buildWindow(s.Window.WindowState, "window")
	if err != nil {
		return nil, constraints.Request{}, nil, err
	}
	if s.Window.Parent != nil {
		parent, err := buildWindow(*s.Window.Parent, "window.parent")
		if err != nil {
			return nil, constraints.Request{}, nil, err
		}
		w.TransientFor = parent
	}

	req, err := buildRequest(s.Request, w)
	if err != nil {
		return nil, constraints.Request{}, nil, err
	}
	return w, req, layout, nil
}

// Layout builds the desktop described by the monitors and struts.
func (s *Scenario) Layout() (*desktop.Layout, error) {
	struts := make([]geom.Strut, 0, len(s.Struts))
	for i, st := range s.Struts {
		side, err := geom.ParseSide(st.Side)
		if err != nil {
			return nil, fmt.Errorf("%w: struts[%d]: %v", ErrInvalid, i, err)
		}
		if st.Rect.Empty() {
			return nil, fmt.Errorf("%w: struts[%d]: empty rectangle %v", ErrInvalid, i, st.Rect)
		}
		struts = append(struts, geom.Strut{Rect: st.Rect, Side: side})
	}

	layout, err := desktop.New(s.Monitors, struts)
	if err != nil {
		return nil, fmt.Errorf("%w: monitors: %v", ErrInvalid, err)
	}
	return layout, nil
}

// SolverOptions returns the options the scenario's preferences imply.
func (s *Scenario) SolverOptions(layout *desktop.Layout) []constraints.Option {
	prefs := constraints.StaticPrefs{AttachModal: true}
	var opts []constraints.Option
	if p := s.Preferences; p != nil {
		if p.AttachModalDialogs != nil {
			prefs.AttachModal = *p.AttachModalDialogs
		}
		if p.CenterNewWindows != nil && *p.CenterNewWindows {
			opts = append(opts, constraints.WithPlacer(constraints.CenterPlacer{Screen: layout}))
		}
	}
	return append(opts, constraints.WithPrefs(prefs))
}

func buildWindow(ws WindowState, field string) (*constraints.Window, error) {
	if ws.Rect.Empty() {
		return nil, fmt.Errorf("%w: %s.rect must have a positive size, got %v", ErrInvalid, field, ws.Rect)
	}

	typ, err := constraints.ParseWindowType(ws.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.type: %v", ErrInvalid, field, err)
	}
	mode, err := tiling.ParseMode(ws.TileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.tile_mode: %v", ErrInvalid, field, err)
	}

	desc := ws.Desc
	if desc == "" {
		desc = field
	}
	w := constraints.NewWindow(desc, ws.Rect)
	w.Type = typ
	if ws.Decorated != nil {
		w.Decorated = *ws.Decorated
	}
	if ws.Frame != nil {
		w.SetFrame(ws.Frame)
	} else if ws.CustomFrameExtents != nil {
		w.CustomFrameExtents = *ws.CustomFrameExtents
	}

	w.MaximizedHorizontally = ws.Maximized.Horizontal
	w.MaximizedVertically = ws.Maximized.Vertical
	w.Fullscreen = ws.Fullscreen
	w.Minimized = ws.Minimized
	w.SetTileMode(mode)
	w.TileResized = ws.TileResized

	switch len(ws.FullscreenMonitors) {
	case 0:
	case 4:
		copy(w.FullscreenMonitors[:], ws.FullscreenMonitors)
	default:
		return nil, fmt.Errorf("%w: %s.fullscreen_monitors needs 4 entries, got %d", ErrInvalid, field, len(ws.FullscreenMonitors))
	}

	if ws.Placed != nil {
		w.Placed = *ws.Placed
	}
	w.CalcPlacement = ws.CalcPlacement
	if p := ws.Pending; p != nil {
		w.MaximizeHorizontallyAfterPlacement = p.MaximizeHorizontally
		w.MaximizeVerticallyAfterPlacement = p.MaximizeVertically
		w.FullscreenAfterPlacement = p.Fullscreen
		w.MinimizeAfterPlacement = p.Minimize
	}

	if ws.SizeHints != nil {
		w.SizeHints = mergeHints(constraints.DefaultSizeHints(), *ws.SizeHints)
	}

	if r := ws.Require; r != nil {
		setFlag(&w.RequireFullyOnscreen, r.FullyOnscreen)
		setFlag(&w.RequireOnSingleMonitor, r.SingleMonitor)
		setFlag(&w.RequireTitlebarVisible, r.TitlebarVisible)
	}
	return w, nil
}

// mergeHints overlays the non-zero fields of h on base.
func mergeHints(base, h constraints.SizeHints) constraints.SizeHints {
	overlay := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	overlay(&base.MinWidth, h.MinWidth)
	overlay(&base.MinHeight, h.MinHeight)
	overlay(&base.MaxWidth, h.MaxWidth)
	overlay(&base.MaxHeight, h.MaxHeight)
	overlay(&base.BaseWidth, h.BaseWidth)
	overlay(&base.BaseHeight, h.BaseHeight)
	overlay(&base.WidthInc, h.WidthInc)
	overlay(&base.HeightInc, h.HeightInc)
	if h.MinAspect != (constraints.Aspect{}) {
		base.MinAspect = h.MinAspect
	}
	if h.MaxAspect != (constraints.Aspect{}) {
		base.MaxAspect = h.MaxAspect
	}
	return base
}

func setFlag(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func buildRequest(rs RequestSpec, w *constraints.Window) (constraints.Request, error) {
	req := constraints.Request{
		UserAction: rs.User,
		FrameGrab:  rs.FrameGrab,
		Orig:       w.Rect,
		New:        rs.New,
	}

	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(rs.Action)), "_", "-") {
	case "move":
		req.Move = true
	case "resize":
		req.Resize = true
	case "move-resize", "moveresize":
		req.Move, req.Resize = true, true
	case "":
		return req, fmt.Errorf("%w: request.action is required", ErrInvalid)
	default:
		return req, fmt.Errorf("%w: request.action must be move, resize or move-resize, got %q", ErrInvalid, rs.Action)
	}

	g, err := geom.ParseGravity(rs.Gravity)
	if err != nil {
		return req, fmt.Errorf("%w: request.gravity: %v", ErrInvalid, err)
	}
	req.Gravity = g

	if rs.Orig != nil {
		req.Orig = *rs.Orig
	}
	if req.New.Empty() {
		return req, fmt.Errorf("%w: request.new must have a positive size, got %v", ErrInvalid, req.New)
	}

	if w.Frame != nil {
		borders := w.Frame.Borders
		req.Borders = &borders
	}
	return req, nil
}
