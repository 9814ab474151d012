// Package geom holds the rectangle and region algebra used by the window
// constraint solver.
//
// A Region is a list of maximal spanning rectangles whose union approximates a
// non-rectangular usable area (a monitor or the whole desktop minus the areas
// reserved by panel struts). Tests against a region are approximations: a
// rectangle is "contained in" a region when one spanning rectangle contains it.
package geom

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/xrect"
)

// Rect represents a window position and size
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns Width*Height.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Equal reports whether both rectangles have the same position and size.
func (r Rect) Equal(o Rect) bool { return r == o }

// Contains reports whether inner lies entirely within r.
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.Right() <= r.Right() &&
		inner.Bottom() <= r.Bottom()
}

// Overlaps reports whether the two rectangles share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// CouldFit reports whether inner's size fits in r's size, ignoring position.
func (r Rect) CouldFit(inner Rect) bool {
	return r.Width >= inner.Width && r.Height >= inner.Height
}

// Intersect returns the overlapping area of r and o and whether there is one.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Union returns the bounding box of r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d +%d,%d", r.X, r.Y, r.Width, r.Height)
}

// XRect converts r for use with the xgbutil xrect helpers.
func (r Rect) XRect() xrect.Rect {
	return xrect.New(r.X, r.Y, r.Width, r.Height)
}

// FromXRect converts an xgbutil rectangle.
func FromXRect(xr xrect.Rect) Rect {
	x, y, w, h := xr.Pieces()
	return Rect{X: x, Y: y, Width: w, Height: h}
}
