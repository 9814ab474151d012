package geom

import "testing"

func TestRegionContainsAndOverlaps(t *testing.T) {
	rg := Region{
		{X: 0, Y: 0, Width: 100, Height: 50},
		{X: 0, Y: 0, Width: 50, Height: 100},
	}

	if !rg.ContainsRect(Rect{X: 10, Y: 60, Width: 30, Height: 30}) {
		t.Fatalf("expected rect inside the tall span to be contained")
	}
	// Inside the union but not inside a single span.
	if rg.ContainsRect(Rect{X: 40, Y: 40, Width: 20, Height: 20}) {
		t.Fatalf("expected rect straddling both spans not to be contained")
	}
	if !rg.OverlapsRect(Rect{X: 90, Y: 40, Width: 50, Height: 50}) {
		t.Fatalf("expected overlap with the wide span")
	}
	if rg.OverlapsRect(Rect{X: 60, Y: 60, Width: 10, Height: 10}) {
		t.Fatalf("expected no overlap in the missing corner")
	}
}

func TestRegionCouldFit(t *testing.T) {
	rg := Region{{X: 0, Y: 0, Width: 100, Height: 50}}
	if !rg.CouldFit(Rect{X: 500, Y: 500, Width: 100, Height: 50}) {
		t.Fatalf("expected same-size rect to fit regardless of position")
	}
	if rg.CouldFit(Rect{Width: 101, Height: 10}) {
		t.Fatalf("expected too-wide rect not to fit")
	}
}

func TestClampToFit(t *testing.T) {
	rg := Region{{X: 0, Y: 0, Width: 1920, Height: 1080}}
	minSize := Rect{Width: 200, Height: 200}

	got := rg.ClampToFit(FixedNone, Rect{X: 100, Y: 100, Width: 5000, Height: 300}, minSize)
	want := Rect{X: 100, Y: 100, Width: 1920, Height: 300}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// A span too small for min size falls back to min size.
	small := Region{{X: 0, Y: 0, Width: 100, Height: 100}}
	got = small.ClampToFit(FixedNone, Rect{X: 0, Y: 0, Width: 500, Height: 500}, minSize)
	if got.Width != 200 || got.Height != 200 {
		t.Fatalf("expected fallback to 200x200, got %v", got)
	}

	got = small.ClampToFit(FixedX, Rect{X: 0, Y: 0, Width: 500, Height: 500}, minSize)
	if got.Width != 500 || got.Height != 200 {
		t.Fatalf("expected fixed x axis preserved, got %v", got)
	}
}

func TestClipTo(t *testing.T) {
	rg := Region{{X: 0, Y: 0, Width: 1920, Height: 1080}}

	got := rg.ClipTo(FixedY, Rect{X: 100, Y: 100, Width: 1920, Height: 300})
	want := Rect{X: 100, Y: 100, Width: 1820, Height: 300}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = rg.ClipTo(FixedNone, Rect{X: -50, Y: -20, Width: 200, Height: 100})
	want = Rect{X: 0, Y: 0, Width: 150, Height: 80}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// No overlap leaves the rectangle alone.
	far := Rect{X: 5000, Y: 5000, Width: 10, Height: 10}
	if got := rg.ClipTo(FixedNone, far); got != far {
		t.Fatalf("expected unchanged rect, got %v", got)
	}
}

func TestShoveInto(t *testing.T) {
	rg := Region{{X: 0, Y: 24, Width: 1920, Height: 1056}}

	tests := []struct {
		name  string
		fixed FixedDirections
		in    Rect
		want  Rect
	}{
		{"past right edge", FixedNone, Rect{X: 1800, Y: 100, Width: 300, Height: 200}, Rect{X: 1620, Y: 100, Width: 300, Height: 200}},
		{"above top", FixedNone, Rect{X: 10, Y: 0, Width: 300, Height: 200}, Rect{X: 10, Y: 24, Width: 300, Height: 200}},
		{"already inside", FixedNone, Rect{X: 10, Y: 30, Width: 300, Height: 200}, Rect{X: 10, Y: 30, Width: 300, Height: 200}},
		{"y fixed only moves x", FixedY, Rect{X: -100, Y: 50, Width: 300, Height: 200}, Rect{X: 0, Y: 50, Width: 300, Height: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rg.ShoveInto(tt.fixed, tt.in)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShoveIntoPrefersClosestOnTie(t *testing.T) {
	rg := Region{
		{X: 0, Y: 0, Width: 500, Height: 500},
		{X: 1000, Y: 0, Width: 500, Height: 500},
	}
	got := rg.ShoveInto(FixedNone, Rect{X: 900, Y: 0, Width: 100, Height: 100})
	if got.X != 1000 {
		t.Fatalf("expected shove into the nearer span at x=1000, got %v", got)
	}
}

func TestExpandConditionallyReturnsCopy(t *testing.T) {
	rg := Region{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 0, Y: 0, Width: 5, Height: 100},
	}
	expanded := rg.ExpandConditionally(10, 20, 0, 30, 50, 50)

	if expanded[0] != (Rect{X: -10, Y: 0, Width: 130, Height: 130}) {
		t.Fatalf("unexpected expansion: %v", expanded[0])
	}
	// Too narrow to expand horizontally.
	if expanded[1] != (Rect{X: 0, Y: 0, Width: 5, Height: 130}) {
		t.Fatalf("unexpected expansion of narrow span: %v", expanded[1])
	}
	if rg[0] != (Rect{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Fatalf("receiver was modified: %v", rg[0])
	}
}
