package geom

import (
	"math"
	"strings"
)

// FixedDirections marks axes whose span must not change when a rectangle is
// moved into a region.
type FixedDirections int

const (
	FixedNone FixedDirections = 0
	FixedX    FixedDirections = 1 << 0
	FixedY    FixedDirections = 1 << 1
)

func (f FixedDirections) String() string {
	switch f {
	case FixedNone:
		return "none"
	case FixedX:
		return "x fixed"
	case FixedY:
		return "y fixed"
	}
	return "x+y fixed"
}

// Region is a set of maximal spanning rectangles.
type Region []Rect

// Clone returns an independent copy.
func (rg Region) Clone() Region {
	if rg == nil {
		return nil
	}
	out := make(Region, len(rg))
	copy(out, rg)
	return out
}

// ContainsRect reports whether some spanning rectangle contains r.
func (rg Region) ContainsRect(r Rect) bool {
	for _, span := range rg {
		if span.Contains(r) {
			return true
		}
	}
	return false
}

// OverlapsRect reports whether r overlaps any spanning rectangle.
func (rg Region) OverlapsRect(r Rect) bool {
	for _, span := range rg {
		if span.Overlaps(r) {
			return true
		}
	}
	return false
}

// CouldFit reports whether r's size fits inside some spanning rectangle.
func (rg Region) CouldFit(r Rect) bool {
	for _, span := range rg {
		if span.CouldFit(r) {
			return true
		}
	}
	return false
}

// spansFixed reports whether span covers r entirely along every fixed axis.
func spansFixed(span, r Rect, fixed FixedDirections) bool {
	if fixed&FixedX != 0 && (span.X > r.X || span.Right() < r.Right()) {
		return false
	}
	if fixed&FixedY != 0 && (span.Y > r.Y || span.Bottom() < r.Bottom()) {
		return false
	}
	return true
}

// ClampToFit shrinks r so that it could fit in the spanning rectangle that
// allows the largest overlap, skipping spans smaller than minSize. The
// position is left alone. When no span qualifies, non-fixed axes fall back to
// minSize.
func (rg Region) ClampToFit(fixed FixedDirections, r Rect, minSize Rect) Rect {
	var best *Rect
	bestOverlap := 0

	for i := range rg {
		span := rg[i]
		if !spansFixed(span, r, fixed) {
			continue
		}
		if span.Width < minSize.Width || span.Height < minSize.Height {
			continue
		}
		overlap := min(r.Width, span.Width) * min(r.Height, span.Height)
		if overlap > bestOverlap {
			best = &rg[i]
			bestOverlap = overlap
		}
	}

	if best == nil {
		if fixed&FixedX == 0 {
			r.Width = minSize.Width
		}
		if fixed&FixedY == 0 {
			r.Height = minSize.Height
		}
		return r
	}

	r.Width = min(r.Width, best.Width)
	r.Height = min(r.Height, best.Height)
	return r
}

// ClipTo cuts r down to the spanning rectangle it overlaps most. Parts of r
// that are already inside that span never move.
func (rg Region) ClipTo(fixed FixedDirections, r Rect) Rect {
	var best *Rect
	bestOverlap := 0

	for i := range rg {
		span := rg[i]
		if !spansFixed(span, r, fixed) {
			continue
		}
		overlap, ok := r.Intersect(span)
		if !ok {
			continue
		}
		if overlap.Area() > bestOverlap {
			best = &rg[i]
			bestOverlap = overlap.Area()
		}
	}

	if best == nil {
		return r
	}

	if fixed&FixedX == 0 {
		newX := max(r.X, best.X)
		r.Width = min(r.Right()-newX, best.Right()-newX)
		r.X = newX
	}
	if fixed&FixedY == 0 {
		newY := max(r.Y, best.Y)
		r.Height = min(r.Bottom()-newY, best.Bottom()-newY)
		r.Y = newY
	}
	return r
}

// ShoveInto translates r, without resizing it, into the spanning rectangle
// allowing the largest overlap, preferring the closest one on ties.
func (rg Region) ShoveInto(fixed FixedDirections, r Rect) Rect {
	var best *Rect
	bestOverlap := 0
	shortest := math.MaxInt

	for i := range rg {
		span := rg[i]
		if !spansFixed(span, r, fixed) {
			continue
		}
		overlap := min(r.Width, span.Width) * min(r.Height, span.Height)

		dist := 0
		if span.X > r.X {
			dist += span.X - r.X
		}
		if span.Right() < r.Right() {
			dist += r.Right() - span.Right()
		}
		if span.Y > r.Y {
			dist += span.Y - r.Y
		}
		if span.Bottom() < r.Bottom() {
			dist += r.Bottom() - span.Bottom()
		}

		if overlap > bestOverlap || (overlap == bestOverlap && dist < shortest) {
			best = &rg[i]
			bestOverlap = overlap
			shortest = dist
		}
	}

	if best == nil {
		return r
	}

	if fixed&FixedX == 0 {
		if best.X > r.X {
			r.X = best.X
		}
		if best.Right() < r.Right() {
			r.X = best.Right() - r.Width
		}
	}
	if fixed&FixedY == 0 {
		if best.Y > r.Y {
			r.Y = best.Y
		}
		if best.Bottom() < r.Bottom() {
			r.Y = best.Bottom() - r.Height
		}
	}
	return r
}

// ExpandConditionally returns a copy of the region where every span at least
// minX wide grows by left/right and every span at least minY tall grows by
// top/bottom. The receiver is not modified.
func (rg Region) ExpandConditionally(left, right, top, bottom, minX, minY int) Region {
	out := rg.Clone()
	for i := range out {
		if out[i].Width >= minX {
			out[i].X -= left
			out[i].Width += left + right
		}
		if out[i].Height >= minY {
			out[i].Y -= top
			out[i].Height += top + bottom
		}
	}
	return out
}

func (rg Region) String() string {
	parts := make([]string, 0, len(rg))
	for _, r := range rg {
		parts = append(parts, "["+r.String()+"]")
	}
	return strings.Join(parts, ", ")
}
