package constraints

import (
	"testing"

	"github.com/1broseidon/winfit/internal/geom"
)

func TestCenterPlacer_CentersFrameOnWorkArea(t *testing.T) {
	layout := newLayout(t, []geom.Rect{fullHD}, topPanel(24))
	p := CenterPlacer{Screen: layout}

	w := NewWindow("fresh", geom.Rect{Width: 400, Height: 300})
	x, y := p.Place(w, FrameBorders{Visible: Borders{Top: 20}}, 0, 0)
	if x != 760 || y != 412 {
		t.Fatalf("expected 760,412, got %d,%d", x, y)
	}
}

func TestCascadePlacer(t *testing.T) {
	layout := newLayout(t, []geom.Rect{fullHD}, topPanel(24))
	p := CascadePlacer{Screen: layout}

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 300, 200, 300, 200},
		{"past bottom right", 1800, 900, 1520, 780},
		{"under panel", -50, 0, 0, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow("app", geom.Rect{Width: 400, Height: 300})
			x, y := p.Place(w, FrameBorders{}, tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("expected %d,%d, got %d,%d", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestCascadePlacer_TransientBelowParent(t *testing.T) {
	layout := newLayout(t, []geom.Rect{fullHD})
	p := CascadePlacer{Screen: layout}

	parent := NewWindow("parent", geom.Rect{X: 100, Y: 100, Width: 800, Height: 600})
	child := NewWindow("child", geom.Rect{Width: 400, Height: 300})
	child.TransientFor = parent

	x, y := p.Place(child, FrameBorders{Visible: Borders{Top: 20}}, 0, 0)
	if x != 120 || y != 120 {
		t.Fatalf("expected 120,120, got %d,%d", x, y)
	}
}
