package constraints

import "github.com/1broseidon/winfit/internal/geom"

// CenterPlacer centers new windows on the work area of the monitor they were
// requested on.
type CenterPlacer struct {
	Screen Screen
}

func (p CenterPlacer) Place(w *Window, borders FrameBorders, x, y int) (int, int) {
	v := borders.Visible
	outer := geom.Rect{
		X:      x - v.Left,
		Y:      y - v.Top,
		Width:  w.Rect.Width + v.Left + v.Right,
		Height: w.Rect.Height + v.Top + v.Bottom,
	}
	wa := p.Screen.WorkArea(p.Screen.MonitorForRect(outer))

	ox, oy := centerOver(outer, wa)
	return ox + v.Left, oy + v.Top
}

// CascadePlacer keeps the requested origin but pulls the frame's top-left
// corner into the work area. Transient windows open one titlebar below and
// to the right of their parent.
type CascadePlacer struct {
	Screen Screen
}

func (p CascadePlacer) Place(w *Window, borders FrameBorders, x, y int) (int, int) {
	v := borders.Visible
	if parent := w.TransientFor; parent != nil && parent != w {
		x = parent.Rect.X + v.Top
		y = parent.Rect.Y + v.Top
	}

	outer := geom.Rect{
		X:      x - v.Left,
		Y:      y - v.Top,
		Width:  w.Rect.Width + v.Left + v.Right,
		Height: w.Rect.Height + v.Top + v.Bottom,
	}
	wa := p.Screen.WorkArea(p.Screen.MonitorForRect(outer))

	if outer.Right() > wa.Right() {
		outer.X = wa.Right() - outer.Width
	}
	if outer.Bottom() > wa.Bottom() {
		outer.Y = wa.Bottom() - outer.Height
	}
	outer.X = max(outer.X, wa.X)
	outer.Y = max(outer.Y, wa.Y)

	return outer.X + v.Left, outer.Y + v.Top
}

// centerOver returns the origin that centers a over b.
func centerOver(a, b geom.Rect) (x, y int) {
	x = b.X + b.Width/2 - a.Width/2
	y = b.Y + b.Height/2 - a.Height/2
	return
}
