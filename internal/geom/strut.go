package geom

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgbutil/xrect"
)

// Side names the screen edge a strut is attached to.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

var sideNames = [...]string{"left", "right", "top", "bottom"}

func (s Side) String() string {
	if s >= 0 && int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// ParseSide converts "left", "right", "top" or "bottom".
func ParseSide(s string) (Side, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, name := range sideNames {
		if norm == name {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strut side %q", s)
}

// Strut is an area reserved along one screen edge, usually by a panel.
type Strut struct {
	Rect Rect
	Side Side
}

// Direction selects the axis ExpandAvoidingStruts grows along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// SpanningSet returns the maximal rectangles covering base minus every strut.
// Rectangles fully contained in another one are dropped.
func SpanningSet(base Rect, struts []Strut) Region {
	holes := make([]Rect, 0, len(struts))
	for _, strut := range struts {
		holes = append(holes, strut.Rect)
	}
	return SubtractAll(base, holes)
}

// SubtractAll cuts every hole out of base and returns the maximal spanning
// rectangles of what is left.
func SubtractAll(base Rect, holes []Rect) Region {
	if base.Empty() {
		return Region{}
	}

	pieces := []xrect.Rect{base.XRect()}
	for _, hole := range holes {
		if hole.Empty() {
			continue
		}
		cut := hole.XRect()
		next := make([]xrect.Rect, 0, len(pieces)+4)
		for _, piece := range pieces {
			// xrect.Valid only rejects zero sizes, so negative pieces
			// from a hole hanging past the piece are filtered here.
			for _, sub := range xrect.Subtract(piece, cut) {
				if sub.Width() > 0 && sub.Height() > 0 {
					next = append(next, sub)
				}
			}
		}
		pieces = next
	}

	out := make(Region, 0, len(pieces))
	for _, piece := range pieces {
		out = append(out, FromXRect(piece))
	}
	return pruneContained(out)
}

// pruneContained removes duplicates and rectangles covered by a sibling,
// keeping the first occurrence.
func pruneContained(rg Region) Region {
	out := make(Region, 0, len(rg))
	for i, r := range rg {
		covered := false
		for j, other := range rg {
			if i == j || !other.Contains(r) {
				continue
			}
			// Identical rectangles: keep the earliest one.
			if other.Equal(r) && j > i {
				continue
			}
			covered = true
			break
		}
		if !covered {
			out = append(out, r)
		}
	}
	return out
}

// ExpandAvoidingStruts stretches r along direction to the extent of bounds,
// then pulls it back from every strut on that axis that overlaps the result.
func ExpandAvoidingStruts(r, bounds Rect, direction Direction, struts []Strut) Rect {
	if direction == Horizontal {
		r.X = bounds.X
		r.Width = bounds.Width
	} else {
		r.Y = bounds.Y
		r.Height = bounds.Height
	}

	for _, strut := range struts {
		if !strut.Rect.Overlaps(r) {
			continue
		}
		switch {
		case direction == Horizontal && strut.Side == SideLeft:
			offset := strut.Rect.Right() - r.X
			r.X += offset
			r.Width -= offset
		case direction == Horizontal && strut.Side == SideRight:
			r.Width -= r.Right() - strut.Rect.X
		case direction == Vertical && strut.Side == SideTop:
			offset := strut.Rect.Bottom() - r.Y
			r.Y += offset
			r.Height -= offset
		case direction == Vertical && strut.Side == SideBottom:
			r.Height -= r.Bottom() - strut.Rect.Y
		}
	}
	return r
}
