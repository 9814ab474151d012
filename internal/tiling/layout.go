// Package tiling computes the half and quarter screen areas a tiled window is
// snapped to, and which edges a user may still drag while tiled.
package tiling

import (
	"fmt"
	"strings"

	"github.com/1broseidon/winfit/internal/geom"
)

// Mode is a half or quarter screen docking position.
type Mode string

const (
	ModeNone        Mode = "none"
	ModeLeft        Mode = "left"
	ModeRight       Mode = "right"
	ModeTopLeft     Mode = "top-left"
	ModeTopRight    Mode = "top-right"
	ModeBottomLeft  Mode = "bottom-left"
	ModeBottomRight Mode = "bottom-right"
)

// Modes lists every mode in cycling order, starting with ModeNone.
var Modes = []Mode{
	ModeNone,
	ModeLeft,
	ModeRight,
	ModeTopLeft,
	ModeTopRight,
	ModeBottomLeft,
	ModeBottomRight,
}

// ParseMode accepts the mode names; an empty string means ModeNone.
func ParseMode(s string) (Mode, error) {
	norm := Mode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if norm == "" {
		return ModeNone, nil
	}
	for _, m := range Modes {
		if m == norm {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("invalid tile mode %q", s)
}

// Tiled reports whether the mode is any docking position.
func (m Mode) Tiled() bool { return m != ModeNone && m != "" }

// Sided reports whether the mode is a full-height half.
func (m Mode) Sided() bool { return m == ModeLeft || m == ModeRight }

// Next returns the following mode in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeNone
}

// Area returns the outer rectangle a window tiled with mode occupies inside
// workArea. ModeNone returns the work area itself.
func Area(workArea geom.Rect, mode Mode) geom.Rect {
	adjusted := workArea

	switch mode {
	case ModeLeft:
		adjusted.Width = workArea.Width / 2

	case ModeRight:
		adjusted.X = workArea.X + workArea.Width/2
		adjusted.Width = workArea.Width / 2

	case ModeTopLeft:
		adjusted.Width = workArea.Width / 2
		adjusted.Height = workArea.Height / 2

	case ModeTopRight:
		adjusted.X = workArea.X + workArea.Width/2
		adjusted.Width = workArea.Width / 2
		adjusted.Height = workArea.Height / 2

	case ModeBottomLeft:
		adjusted.Y = workArea.Y + workArea.Height/2
		adjusted.Width = workArea.Width / 2
		adjusted.Height = workArea.Height / 2

	case ModeBottomRight:
		adjusted.X = workArea.X + workArea.Width/2
		adjusted.Y = workArea.Y + workArea.Height/2
		adjusted.Width = workArea.Width / 2
		adjusted.Height = workArea.Height / 2
	}

	if adjusted.Width < 1 {
		adjusted.Width = 1
	}
	if adjusted.Height < 1 {
		adjusted.Height = 1
	}

	return adjusted
}

// CanResize reports which axes a user may drag freely on a window tiled with
// mode when resizing about gravity. Only the edges facing the middle of the
// screen are draggable.
func CanResize(mode Mode, gravity geom.Gravity) (horizontal, vertical bool) {
	switch mode {
	case ModeRight:
		horizontal = gravity == geom.GravityEast
	case ModeLeft:
		horizontal = gravity == geom.GravityWest
	case ModeTopRight:
		return cornerResize(gravity, geom.GravityEast, geom.GravityNorth, geom.GravityNorthEast)
	case ModeTopLeft:
		return cornerResize(gravity, geom.GravityWest, geom.GravityNorth, geom.GravityNorthWest)
	case ModeBottomRight:
		return cornerResize(gravity, geom.GravityEast, geom.GravitySouth, geom.GravitySouthEast)
	case ModeBottomLeft:
		return cornerResize(gravity, geom.GravityWest, geom.GravitySouth, geom.GravitySouthWest)
	}
	return horizontal, vertical
}

func cornerResize(gravity, side, edge, corner geom.Gravity) (bool, bool) {
	switch gravity {
	case side:
		return true, false
	case edge:
		return false, true
	case corner:
		return true, true
	}
	return false, false
}
