package constraints

import (
	"math"

	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

// A rule checks its condition on c.current and, unless check is set,
// enforces it. It returns whether the condition holds; a rule that does not
// apply holds trivially.
type ruleFunc func(c *Context, check bool) bool

type rule struct {
	name     RuleName
	priority Priority
	// gated rules are dropped once the threshold passes their priority.
	gated bool
	fn    ruleFunc
}

// ruleTable is in evaluation order. The order is part of the behavior: the
// check pass stops at the first failing rule.
var ruleTable = []rule{
	{RuleModalDialog, PriorityMaximum, false, constrainModalDialog},
	{RuleMaximization, PriorityMaximization, true, constrainMaximization},
	{RuleTiling, PriorityTiling, true, constrainTiling},
	{RuleFullscreen, PriorityFullscreen, true, constrainFullscreen},
	{RuleSizeIncrements, PrioritySizeIncrements, true, constrainSizeIncrements},
	{RuleSizeLimits, PrioritySizeLimits, true, constrainSizeLimits},
	{RuleAspectRatio, PriorityAspectRatio, true, constrainAspectRatio},
	{RuleSingleMonitor, PrioritySingleMonitor, true, constrainToSingleMonitor},
	{RuleFullyOnscreen, PriorityFullyOnscreen, true, constrainFullyOnscreen},
	{RuleTitlebarVisible, PriorityTitlebarVisible, true, constrainTitlebarVisible},
	{RulePartiallyOnscreen, PriorityPartiallyOnscreen, true, constrainPartiallyOnscreen},
}

// RuleInfo describes one rule for listings.
type RuleInfo struct {
	Name     RuleName `json:"name"`
	Priority Priority `json:"priority"`
	// Gated is false for rules that are never dropped.
	Gated bool `json:"gated"`
}

// Rules lists the rules in evaluation order.
func Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(ruleTable))
	for _, r := range ruleTable {
		out = append(out, RuleInfo{Name: r.name, Priority: r.priority, Gated: r.gated})
	}
	return out
}

// active reports whether r still takes part at threshold.
func (r rule) active(threshold Priority) bool {
	return !r.gated || r.priority >= threshold
}

// constrainModalDialog keeps a modal dialog centered horizontally over its
// parent, just below the parent's titlebar. It is never dropped.
func constrainModalDialog(c *Context, check bool) bool {
	w := c.win
	parent := w.TransientFor
	if !c.attachModal || w.Type != TypeModalDialog || parent == nil || parent == w {
		return true
	}

	parentOuter := parent.Rect
	parentTop := 0
	if parent.Frame != nil {
		parentOuter = parent.Frame.Rect
		parentTop = c.parentBorders.Visible.Top
	}

	x := parentOuter.X + parentOuter.Width/2 - c.current.Width/2
	y := parentOuter.Y + parentTop + c.visible().Top

	satisfied := x == c.current.X && y == c.current.Y
	if check || satisfied {
		return satisfied
	}

	c.current.X = x
	c.current.Y = y
	return true
}

// constrainMaximization fills the work area on each maximized axis. Max size
// hints are ignored; only a min size that cannot fit blocks it.
func constrainMaximization(c *Context, check bool) bool {
	w := c.win
	if (!w.MaximizedHorizontally && !w.MaximizedVertically) || w.Tiled() {
		return true
	}

	var target geom.Rect
	if w.Maximized() {
		target = c.inner(screenRect(c.workArea))
	} else {
		// A single axis only avoids the struts the window could actually
		// run into at its current position.
		direction := geom.Horizontal
		if !w.MaximizedHorizontally {
			direction = geom.Vertical
		}
		expanded := geom.ExpandAvoidingStruts(c.outer(c.current).Rect, c.entireMonitor, direction, c.struts)
		target = c.inner(frameRect{expanded})
	}

	minSize, _ := c.sizeLimits(false)
	hMinBad := target.Width < minSize.Width && w.MaximizedHorizontally
	vMinBad := target.Height < minSize.Height && w.MaximizedVertically
	if hMinBad || vMinBad {
		return true
	}

	hEqual := target.X == c.current.X && target.Width == c.current.Width
	vEqual := target.Y == c.current.Y && target.Height == c.current.Height
	satisfied := (hEqual || !w.MaximizedHorizontally) && (vEqual || !w.MaximizedVertically)
	if check || satisfied {
		return satisfied
	}

	if w.MaximizedHorizontally {
		c.current.X = target.X
		c.current.Width = target.Width
	}
	if w.MaximizedVertically {
		c.current.Y = target.Y
		c.current.Height = target.Height
	}
	return true
}

// constrainTiling snaps a tiled window to its tile area. A user resize may
// move the edges facing the middle of the screen, after which the
// user-chosen size sticks until the window is retiled.
func constrainTiling(c *Context, check bool) bool {
	w := c.win
	if !w.Tiled() {
		return true
	}

	area := c.inner(screenRect(tiling.Area(c.workArea, w.TileMode)))

	minSize, _ := c.sizeLimits(false)
	if area.Width < minSize.Width || area.Height < minSize.Height {
		return true
	}

	var allowH, allowV bool
	if c.userAction && c.action != ActionMove {
		allowH, allowV = tiling.CanResize(w.TileMode, c.gravity)
		if !check {
			w.TileResized = true
		}
	}

	target := area
	if w.TileResized {
		target = c.orig
	}

	hEqual := target.X == c.current.X && target.Width == c.current.Width
	vEqual := target.Y == c.current.Y && target.Height == c.current.Height
	satisfied := (allowH || hEqual) && (allowV || vEqual)
	if check || satisfied {
		return satisfied
	}

	if !allowV {
		c.current.Y = target.Y
		c.current.Height = target.Height
	}
	if !allowH {
		c.current.X = target.X
		c.current.Width = target.Width
	}
	return true
}

// constrainFullscreen covers the assigned monitors exactly, unless the size
// hints forbid that size.
func constrainFullscreen(c *Context, check bool) bool {
	w := c.win
	if !w.Fullscreen || !c.entireMonitorValid {
		return true
	}

	target := c.entireMonitor
	minSize, maxSize := c.sizeLimits(false)
	tooBig := !target.CouldFit(minSize)
	tooSmall := !maxSize.CouldFit(target)
	if tooBig || tooSmall {
		return true
	}

	satisfied := c.current == target
	if check || satisfied {
		return satisfied
	}

	c.current = target
	return true
}

// constrainSizeIncrements rounds the size down to base + n*increment, or up
// by one increment when rounding down would go below the minimum.
func constrainSizeIncrements(c *Context, check bool) bool {
	w := c.win
	if w.Maximized() || w.Fullscreen || w.Tiled() || c.action == ActionMove {
		return true
	}

	h := c.hints
	extraWidth := (c.current.Width - h.BaseWidth) % h.WidthInc
	extraHeight := (c.current.Height - h.BaseHeight) % h.HeightInc
	if w.MaximizedHorizontally {
		extraWidth = 0
	}
	if w.MaximizedVertically {
		extraHeight = 0
	}

	satisfied := extraWidth == 0 && extraHeight == 0
	if check || satisfied {
		return satisfied
	}

	newWidth := c.current.Width - extraWidth
	newHeight := c.current.Height - extraHeight
	if newWidth < h.MinWidth {
		newWidth += ((h.MinWidth-newWidth)/h.WidthInc + 1) * h.WidthInc
	}
	if newHeight < h.MinHeight {
		newHeight += ((h.MinHeight-newHeight)/h.HeightInc + 1) * h.HeightInc
	}

	c.current = geom.ResizeWithGravity(c.resizeAnchor(), c.gravity, newWidth, newHeight)
	return true
}

// constrainSizeLimits clamps the size into the min/max hints. A maximized
// axis is never shrunk by the max hint.
func constrainSizeLimits(c *Context, check bool) bool {
	w := c.win
	if c.action == ActionMove {
		return true
	}

	minSize, maxSize := c.sizeLimits(false)
	if w.MaximizedHorizontally {
		maxSize.Width = max(maxSize.Width, c.current.Width)
	}
	if w.MaximizedVertically {
		maxSize.Height = max(maxSize.Height, c.current.Height)
	}

	tooSmall := !c.current.CouldFit(minSize)
	tooBig := !maxSize.CouldFit(c.current)
	satisfied := !tooSmall && !tooBig
	if check || satisfied {
		return satisfied
	}

	newWidth := clampInt(c.current.Width, minSize.Width, maxSize.Width)
	newHeight := clampInt(c.current.Height, minSize.Height, maxSize.Height)

	c.current = geom.ResizeWithGravity(c.resizeAnchor(), c.gravity, newWidth, newHeight)
	return true
}

// constrainAspectRatio keeps width/height between the aspect hints, allowing
// a pixel or two of rounding slack.
func constrainAspectRatio(c *Context, check bool) bool {
	w := c.win
	minr, okMin := c.hints.MinAspect.Ratio()
	maxr, okMax := c.hints.MaxAspect.Ratio()
	if !okMin || !okMax || maxr <= 0 || minr > maxr {
		return true
	}
	if w.Maximized() || w.Fullscreen || w.TileMode.Sided() || c.action == ActionMove {
		return true
	}

	// One-sided resizes round as if they had a resize increment.
	fudge := 1.0
	if c.gravity.IsEdge() {
		fudge = 2
	}

	width := float64(c.current.Width)
	height := float64(c.current.Height)
	satisfied := width-height*minr > -minr*fudge && width-height*maxr < maxr*fudge
	if check || satisfied {
		return satisfied
	}

	newWidth, newHeight := width, height
	switch c.gravity {
	case geom.GravityWest, geom.GravityEast:
		newHeight = clampFloat(newHeight, newWidth/maxr, newWidth/minr)
	case geom.GravityNorth, geom.GravitySouth:
		newWidth = clampFloat(newWidth, newHeight*minr, newHeight*maxr)
	default:
		// (altWidth, height) and (width, altHeight) both satisfy the
		// ratio; take the point between them closest to the request.
		altWidth := clampFloat(newWidth, newHeight*minr, newHeight*maxr)
		altHeight := clampFloat(newHeight, newWidth/maxr, newWidth/minr)
		bestWidth, bestHeight := geom.ClosestPointOnSegment(
			altWidth, newHeight, newWidth, altHeight, newWidth, newHeight)
		newWidth = math.Round(bestWidth)
		newHeight = math.Round(bestHeight)
	}

	c.current = geom.ResizeWithGravity(c.resizeAnchor(), c.gravity, int(newWidth), int(newHeight))
	return true
}

// clampInt returns high when v > high, then low when v < low.
func clampInt(v, low, high int) int {
	if v > high {
		return high
	}
	if v < low {
		return low
	}
	return v
}

func clampFloat(v, low, high float64) float64 {
	if v > high {
		return high
	}
	if v < low {
		return low
	}
	return v
}
