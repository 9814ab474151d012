package desktop

import "github.com/1broseidon/winfit/internal/geom"

// PartialStrut is a _NET_WM_STRUT_PARTIAL value: a thickness per root
// window edge and the inclusive span along that edge it covers.
type PartialStrut struct {
	Left, Right, Top, Bottom int

	LeftStartY, LeftEndY     int
	RightStartY, RightEndY   int
	TopStartX, TopEndX       int
	BottomStartX, BottomEndX int
}

// FullStrut turns a legacy _NET_WM_STRUT into a partial strut spanning each
// edge of root completely.
func FullStrut(root geom.Rect, left, right, top, bottom int) PartialStrut {
	return PartialStrut{
		Left: left, Right: right, Top: top, Bottom: bottom,
		LeftStartY: root.Y, LeftEndY: root.Bottom() - 1,
		RightStartY: root.Y, RightEndY: root.Bottom() - 1,
		TopStartX: root.X, TopEndX: root.Right() - 1,
		BottomStartX: root.X, BottomEndX: root.Right() - 1,
	}
}

// Struts converts the non-zero edges of p into strut rectangles inside root.
func (p PartialStrut) Struts(root geom.Rect) []geom.Strut {
	var out []geom.Strut
	if p.Left > 0 {
		out = append(out, geom.Strut{
			Side: geom.SideLeft,
			Rect: geom.Rect{X: root.X, Y: p.LeftStartY, Width: p.Left, Height: p.LeftEndY - p.LeftStartY + 1},
		})
	}
	if p.Right > 0 {
		out = append(out, geom.Strut{
			Side: geom.SideRight,
			Rect: geom.Rect{X: root.Right() - p.Right, Y: p.RightStartY, Width: p.Right, Height: p.RightEndY - p.RightStartY + 1},
		})
	}
	if p.Top > 0 {
		out = append(out, geom.Strut{
			Side: geom.SideTop,
			Rect: geom.Rect{X: p.TopStartX, Y: root.Y, Width: p.TopEndX - p.TopStartX + 1, Height: p.Top},
		})
	}
	if p.Bottom > 0 {
		out = append(out, geom.Strut{
			Side: geom.SideBottom,
			Rect: geom.Rect{X: p.BottomStartX, Y: root.Bottom() - p.Bottom, Width: p.BottomEndX - p.BottomStartX + 1, Height: p.Bottom},
		})
	}
	return out
}
