package constraints

import (
	"math"
	"sync"

	"github.com/1broseidon/winfit/internal/geom"
)

// frameRect is a rectangle in outer (frame-inclusive) coordinates. It only
// comes from Context.outer or from screen geometry, and only goes back to
// client coordinates through Context.inner.
type frameRect struct {
	geom.Rect
}

// screenRect marks screen geometry (work areas, tile areas) as outer
// coordinates.
func screenRect(r geom.Rect) frameRect { return frameRect{r} }

var borderPool = sync.Pool{
	New: func() any { return new(FrameBorders) },
}

// borderRecord is either borrowed from the request or owned by the
// context. Owned records go back to the pool on release.
type borderRecord struct {
	fb    *FrameBorders
	owned bool
}

func borrowBorders(fb *FrameBorders) borderRecord {
	return borderRecord{fb: fb}
}

func ownBorders() borderRecord {
	fb := borderPool.Get().(*FrameBorders)
	*fb = FrameBorders{}
	return borderRecord{fb: fb, owned: true}
}

func (b *borderRecord) release() {
	if b.owned && b.fb != nil {
		borderPool.Put(b.fb)
	}
	b.fb = nil
	b.owned = false
}

// Context is the state of one solve. Rules mutate only current.
type Context struct {
	win *Window

	orig    geom.Rect
	current geom.Rect
	borders borderRecord
	hints   SizeHints

	action     Action
	userAction bool
	frameGrab  bool
	gravity    geom.Gravity
	fixed      geom.FixedDirections

	monitorIndex       int
	monitorCount       int
	workArea           geom.Rect
	entireMonitor      geom.Rect
	entireMonitorValid bool
	screenRegion       geom.Region
	monitorRegion      geom.Region
	struts             []geom.Strut

	attachModal   bool
	parentBorders FrameBorders
}

// newContext snapshots everything a solve needs. The caller must release
// the context.
func newContext(w *Window, req Request, screen Screen, theme Theme, prefs Prefs) *Context {
	c := &Context{
		win:        w,
		orig:       req.Orig,
		current:    req.New,
		action:     req.Action(),
		userAction: req.UserAction,
		frameGrab:  req.FrameGrab,
		gravity:    req.Gravity,
		hints:      w.SizeHints,
	}
	c.hints.Normalize()

	if req.Borders != nil && !w.Fullscreen {
		c.borders = borrowBorders(req.Borders)
	} else {
		c.borders = ownBorders()
	}

	c.fixed = fixedDirections(req.Orig, req.New)
	if !c.userAction {
		c.fixed = geom.FixedNone
	}

	c.monitorCount = screen.MonitorCount()
	c.struts = screen.Struts()
	c.screenRegion = screen.ScreenRegion()
	c.resolveMonitor(screen, c.current)

	if w.Fullscreen && fullscreenMonitorsSet(w.FullscreenMonitors) {
		c.entireMonitor, c.entireMonitorValid = unionMonitors(screen, w.FullscreenMonitors)
	}

	c.attachModal = prefs.AttachModalDialogs()
	if parent := w.TransientFor; parent != nil && parent != w && parent.Frame != nil {
		c.parentBorders = theme.Borders(parent)
	}
	return c
}

// resolveMonitor points the monitor fields at the monitor r overlaps most.
func (c *Context) resolveMonitor(screen Screen, r geom.Rect) {
	c.monitorIndex = screen.MonitorForRect(r)
	c.workArea = screen.WorkArea(c.monitorIndex)
	c.entireMonitor, c.entireMonitorValid = screen.MonitorRect(c.monitorIndex)
	c.monitorRegion = screen.MonitorRegion(c.monitorIndex)
}

func (c *Context) release() {
	c.borders.release()
}

// fixedDirections reports the axis whose span a change leaves untouched
// while the other axis changes.
func fixedDirections(orig, next geom.Rect) geom.FixedDirections {
	xSame := orig.X == next.X && orig.Right() == next.Right()
	ySame := orig.Y == next.Y && orig.Bottom() == next.Bottom()
	switch {
	case xSame && !ySame:
		return geom.FixedX
	case ySame && !xSame:
		return geom.FixedY
	}
	return geom.FixedNone
}

func fullscreenMonitorsSet(monitors [4]int) bool {
	for _, m := range monitors {
		if m == NoMonitor {
			return false
		}
	}
	return true
}

func unionMonitors(screen Screen, monitors [4]int) (geom.Rect, bool) {
	var out geom.Rect
	for i, m := range monitors {
		r, ok := screen.MonitorRect(m)
		if !ok {
			return geom.Rect{}, false
		}
		if i == 0 {
			out = r
		} else {
			out = out.Union(r)
		}
	}
	return out, true
}

func (c *Context) visible() Borders {
	if c.borders.fb == nil {
		return Borders{}
	}
	return c.borders.fb.Visible
}

// outer converts a client rectangle to frame coordinates. Undecorated
// windows shrink by their client-side shadow instead.
func (c *Context) outer(r geom.Rect) frameRect {
	if c.win.Frame != nil {
		v := c.visible()
		r.X -= v.Left
		r.Y -= v.Top
		r.Width += v.Left + v.Right
		r.Height += v.Top + v.Bottom
	} else {
		e := c.win.CustomFrameExtents
		r.X += e.Left
		r.Y += e.Top
		r.Width -= e.Left + e.Right
		r.Height -= e.Top + e.Bottom
	}
	return frameRect{r}
}

// inner is the inverse of outer.
func (c *Context) inner(fr frameRect) geom.Rect {
	r := fr.Rect
	if c.win.Frame != nil {
		v := c.visible()
		r.X += v.Left
		r.Y += v.Top
		r.Width -= v.Left + v.Right
		r.Height -= v.Top + v.Bottom
	} else {
		e := c.win.CustomFrameExtents
		r.X -= e.Left
		r.Y -= e.Top
		r.Width += e.Left + e.Right
		r.Height += e.Top + e.Bottom
	}
	return r
}

// sizeLimits returns the minimum and maximum sizes as width/height-only
// rectangles. With includeFrame the limits describe the outer rectangle;
// maximums saturate at math.MaxInt32.
func (c *Context) sizeLimits(includeFrame bool) (minSize, maxSize geom.Rect) {
	minSize = geom.Rect{Width: c.hints.MinWidth, Height: c.hints.MinHeight}
	maxSize = geom.Rect{Width: c.hints.MaxWidth, Height: c.hints.MaxHeight}
	if !includeFrame {
		return minSize, maxSize
	}

	if c.win.Frame != nil {
		v := c.visible()
		fw := v.Left + v.Right
		fh := v.Top + v.Bottom
		minSize.Width += fw
		minSize.Height += fh
		maxSize.Width = saturatingAdd(maxSize.Width, fw)
		maxSize.Height = saturatingAdd(maxSize.Height, fh)
	} else {
		e := c.win.CustomFrameExtents
		fw := e.Left + e.Right
		fh := e.Top + e.Bottom
		minSize.Width -= fw
		minSize.Height -= fh
		maxSize.Width -= fw
		maxSize.Height -= fh
	}
	return minSize, maxSize
}

func saturatingAdd(v, extra int) int {
	if v < math.MaxInt32-extra {
		return v + extra
	}
	return math.MaxInt32
}

// resizeAnchor is the rectangle a gravity resize is anchored to.
func (c *Context) resizeAnchor() geom.Rect {
	if c.action == ActionMoveAndResize {
		return c.current
	}
	return c.orig
}
