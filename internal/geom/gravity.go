package geom

import (
	"fmt"
	"strings"
)

// Gravity is the anchor held fixed while a rectangle is resized. Values match
// the X11 window gravity constants.
type Gravity int

const (
	GravityNorthWest Gravity = 1
	GravityNorth     Gravity = 2
	GravityNorthEast Gravity = 3
	GravityWest      Gravity = 4
	GravityCenter    Gravity = 5
	GravityEast      Gravity = 6
	GravitySouthWest Gravity = 7
	GravitySouth     Gravity = 8
	GravitySouthEast Gravity = 9
	GravityStatic    Gravity = 10
)

var gravityNames = map[Gravity]string{
	GravityNorthWest: "north-west",
	GravityNorth:     "north",
	GravityNorthEast: "north-east",
	GravityWest:      "west",
	GravityCenter:    "center",
	GravityEast:      "east",
	GravitySouthWest: "south-west",
	GravitySouth:     "south",
	GravitySouthEast: "south-east",
	GravityStatic:    "static",
}

func (g Gravity) String() string {
	if name, ok := gravityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gravity(%d)", int(g))
}

// IsEdge reports whether the gravity anchors a single edge, i.e. a one-sided
// resize along one axis.
func (g Gravity) IsEdge() bool {
	switch g {
	case GravityNorth, GravitySouth, GravityEast, GravityWest:
		return true
	}
	return false
}

// ParseGravity accepts the names produced by Gravity.String, with or without
// the hyphen, case-insensitively.
func ParseGravity(s string) (Gravity, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if norm == "" {
		return GravityNorthWest, nil
	}
	for g, name := range gravityNames {
		if norm == name || norm == strings.ReplaceAll(name, "-", "") {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown gravity %q", s)
}

// ResizeWithGravity returns a rectangle of the given size positioned so that
// the point named by gravity stays where it was in old.
//
// Center anchors drop one pixel from odd size changes so that repeated
// resizes never drift the rectangle.
func ResizeWithGravity(old Rect, gravity Gravity, width, height int) Rect {
	r := old

	switch gravity {
	case GravityNorthWest, GravityWest, GravitySouthWest:
		r.X = old.X
	case GravityNorth, GravityCenter, GravitySouth:
		width -= (old.Width - width) % 2
		r.X = old.X + (old.Width-width)/2
	case GravityNorthEast, GravityEast, GravitySouthEast:
		r.X = old.X + (old.Width - width)
	default:
		r.X = old.X
	}
	r.Width = width

	switch gravity {
	case GravityNorthWest, GravityNorth, GravityNorthEast:
		r.Y = old.Y
	case GravityWest, GravityCenter, GravityEast:
		height -= (old.Height - height) % 2
		r.Y = old.Y + (old.Height-height)/2
	case GravitySouthWest, GravitySouth, GravitySouthEast:
		r.Y = old.Y + (old.Height - height)
	default:
		r.Y = old.Y
	}
	r.Height = height

	return r
}
