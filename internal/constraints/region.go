package constraints

import "github.com/1broseidon/winfit/internal/geom"

// constrainToRegion keeps the outer rectangle inside region. It gives up
// (reporting success) when even the smallest allowed size could not fit.
//
// Resizes first shrink to fit; interactive resizes are then clipped so
// parts already onscreen never move, everything else is shoved in by
// translation.
func (c *Context) constrainToRegion(region geom.Region, check bool) bool {
	minSize, _ := c.sizeLimits(true)
	outer := c.outer(c.current)

	smallest := outer.Rect
	if c.action != ActionMove {
		if c.fixed&geom.FixedX == 0 {
			smallest.Width = minSize.Width
		}
		if c.fixed&geom.FixedY == 0 {
			smallest.Height = minSize.Height
		}
	}
	if !region.CouldFit(smallest) {
		return true
	}

	satisfied := region.ContainsRect(outer.Rect)
	if check || satisfied {
		return satisfied
	}

	r := outer.Rect
	if c.action != ActionMove {
		r = region.ClampToFit(c.fixed, r, minSize)
	}
	if c.userAction && c.action == ActionResize {
		r = region.ClipTo(c.fixed, r)
	} else {
		r = region.ShoveInto(c.fixed, r)
	}

	c.current = c.inner(frameRect{r})
	return true
}

func constrainToSingleMonitor(c *Context, check bool) bool {
	w := c.win
	// Frameless windows are exempt so that they can still be dragged
	// across monitors.
	if w.Type == TypeDesktop || w.Type == TypeDock ||
		c.monitorCount <= 1 ||
		!w.RequireOnSingleMonitor ||
		w.Frame == nil ||
		c.userAction {
		return true
	}
	return c.constrainToRegion(c.monitorRegion, check)
}

// constrainFullyOnscreen keeps the window inside the desktop minus struts.
// Interactive moves are exempt; interactive resizes are clipped instead.
func constrainFullyOnscreen(c *Context, check bool) bool {
	w := c.win
	if w.Type == TypeDesktop || w.Type == TypeDock ||
		w.Fullscreen ||
		!w.RequireFullyOnscreen ||
		(c.userAction && c.action != ActionResize) {
		return true
	}
	return c.constrainToRegion(c.screenRegion, check)
}

// onscreenMargins returns how much of the window must stay visible on each
// axis (a quarter of the size, within 10..75 pixels) and how much may
// therefore hang off.
func onscreenMargins(r geom.Rect) (hOn, vOn, hOff, vOff int) {
	hOn = clampInt(r.Width/4, 10, 75)
	vOn = clampInt(r.Height/4, 10, 75)
	hOff = max(r.Width-hOn, 0)
	vOff = max(r.Height-vOn, 0)
	return hOn, vOn, hOff, vOff
}

// bottomMargin lets a framed window's titlebar touch a bottom panel. Without
// a titlebar the usual vertical margin applies.
func (c *Context) bottomMargin(vOn, vOff int) (bottom, verticalOnscreen int) {
	if c.win.Frame != nil {
		v := c.visible()
		return c.current.Height + v.Bottom, v.Top
	}
	return vOff, vOn
}

// constrainTitlebarVisible keeps the titlebar reachable: never above the top
// of the usable area and never entirely off the sides or bottom.
func constrainTitlebarVisible(c *Context, check bool) bool {
	w := c.win
	unconstrainedUserAction := c.userAction && !c.frameGrab
	if w.Type == TypeDesktop || w.Type == TypeDock ||
		w.Fullscreen ||
		!w.RequireTitlebarVisible ||
		unconstrainedUserAction {
		return true
	}

	hOn, vOn, hOff, vOff := onscreenMargins(c.current)
	bottom, vOn := c.bottomMargin(vOn, vOff)

	region := c.screenRegion.ExpandConditionally(hOff, hOff, 0, bottom, hOn, vOn)
	return c.constrainToRegion(region, check)
}

// constrainPartiallyOnscreen keeps a sliver of the window visible on every
// edge, for every action.
func constrainPartiallyOnscreen(c *Context, check bool) bool {
	w := c.win
	if w.Type == TypeDesktop || w.Type == TypeDock {
		return true
	}

	hOn, vOn, hOff, vOff := onscreenMargins(c.current)
	top := vOff
	bottom, vOn := c.bottomMargin(vOn, vOff)

	region := c.screenRegion.ExpandConditionally(hOff, hOff, top, bottom, hOn, vOn)
	return c.constrainToRegion(region, check)
}
