// Package desktop models the monitors and panel struts of a workspace and
// derives the usable regions and work areas the solver consumes.
package desktop

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgbutil/xrect"

	"github.com/1broseidon/winfit/internal/geom"
)

// ErrNoMonitors is returned when a layout is built without any monitor.
var ErrNoMonitors = errors.New("no monitors")

// Layout is an immutable snapshot of monitors and struts.
type Layout struct {
	monitors []geom.Rect
	struts   []geom.Strut
	bounds   geom.Rect

	screenRegion   geom.Region
	monitorRegions []geom.Region
	workAreas      []geom.Rect
}

// New builds a layout. Areas of the bounding box no monitor covers are kept
// out of the screen region, like struts.
func New(monitors []geom.Rect, struts []geom.Strut) (*Layout, error) {
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}
	for i, m := range monitors {
		if m.Empty() {
			return nil, fmt.Errorf("monitor %d has empty geometry %v", i, m)
		}
	}

	l := &Layout{
		monitors: append([]geom.Rect(nil), monitors...),
		struts:   append([]geom.Strut(nil), struts...),
	}

	l.bounds = monitors[0]
	for _, m := range monitors[1:] {
		l.bounds = l.bounds.Union(m)
	}

	holes := make([]geom.Rect, 0, len(struts)+4)
	for _, s := range struts {
		holes = append(holes, s.Rect)
	}
	holes = append(holes, geom.SubtractAll(l.bounds, monitors)...)
	l.screenRegion = geom.SubtractAll(l.bounds, holes)

	l.monitorRegions = make([]geom.Region, len(monitors))
	l.workAreas = make([]geom.Rect, len(monitors))
	for i, m := range monitors {
		l.monitorRegions[i] = geom.SpanningSet(m, struts)
		l.workAreas[i] = workArea(m, l.monitorRegions[i])
	}

	return l, nil
}

// workArea is the part of the monitor left after clipping it into its
// usable region. A monitor swallowed by struts keeps its full rectangle.
func workArea(monitor geom.Rect, region geom.Region) geom.Rect {
	if len(region) == 0 {
		return monitor
	}
	return region.ClipTo(geom.FixedNone, monitor)
}

// Bounds is the bounding box of all monitors.
func (l *Layout) Bounds() geom.Rect { return l.bounds }

// Monitors returns a copy of the monitor rectangles.
func (l *Layout) Monitors() []geom.Rect {
	return append([]geom.Rect(nil), l.monitors...)
}

func (l *Layout) MonitorCount() int { return len(l.monitors) }

// MonitorForRect returns the monitor r overlaps most, or 0 when it overlaps
// none.
func (l *Layout) MonitorForRect(r geom.Rect) int {
	heads := make([]xrect.Rect, len(l.monitors))
	for i, m := range l.monitors {
		heads[i] = m.XRect()
	}
	if i := xrect.LargestOverlap(r.XRect(), heads); i >= 0 {
		return i
	}
	return 0
}

func (l *Layout) MonitorRect(index int) (geom.Rect, bool) {
	if index < 0 || index >= len(l.monitors) {
		return geom.Rect{}, false
	}
	return l.monitors[index], true
}

// WorkArea returns the work area of a monitor, or of monitor 0 for an
// unknown index.
func (l *Layout) WorkArea(index int) geom.Rect {
	if index < 0 || index >= len(l.workAreas) {
		index = 0
	}
	return l.workAreas[index]
}

func (l *Layout) Struts() []geom.Strut { return l.struts }

func (l *Layout) ScreenRegion() geom.Region { return l.screenRegion }

func (l *Layout) MonitorRegion(index int) geom.Region {
	if index < 0 || index >= len(l.monitorRegions) {
		index = 0
	}
	return l.monitorRegions[index]
}
