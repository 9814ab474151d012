package geom

import "testing"

func TestSpanningSetNoStruts(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	rg := SpanningSet(base, nil)
	if len(rg) != 1 || rg[0] != base {
		t.Fatalf("expected the base rect only, got %v", rg)
	}
}

func TestSpanningSetTopPanel(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	struts := []Strut{{Rect: Rect{X: 0, Y: 0, Width: 1920, Height: 24}, Side: SideTop}}

	rg := SpanningSet(base, struts)
	want := Rect{X: 0, Y: 24, Width: 1920, Height: 1056}
	if len(rg) != 1 || rg[0] != want {
		t.Fatalf("expected [%v], got %v", want, rg)
	}
}

func TestSpanningSetPartialStrut(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	// Left dock covering only the middle third of the edge.
	struts := []Strut{{Rect: Rect{X: 0, Y: 300, Width: 50, Height: 300}, Side: SideLeft}}

	rg := SpanningSet(base, struts)
	wantPieces := []Rect{
		{X: 0, Y: 0, Width: 1000, Height: 300},
		{X: 0, Y: 600, Width: 1000, Height: 400},
		{X: 50, Y: 0, Width: 950, Height: 1000},
	}
	if len(rg) != len(wantPieces) {
		t.Fatalf("expected %d spans, got %v", len(wantPieces), rg)
	}
	for _, w := range wantPieces {
		found := false
		for _, r := range rg {
			if r == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing span %v in %v", w, rg)
		}
	}
}

func TestSpanningSetDropsContained(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	struts := []Strut{
		{Rect: Rect{X: 0, Y: 0, Width: 1000, Height: 20}, Side: SideTop},
		{Rect: Rect{X: 0, Y: 0, Width: 1000, Height: 30}, Side: SideTop},
	}
	rg := SpanningSet(base, struts)
	if len(rg) != 1 || rg[0] != (Rect{X: 0, Y: 30, Width: 1000, Height: 970}) {
		t.Fatalf("unexpected spans %v", rg)
	}
}

func TestExpandAvoidingStruts(t *testing.T) {
	monitor := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	struts := []Strut{
		{Rect: Rect{X: 0, Y: 0, Width: 1920, Height: 24}, Side: SideTop},
		{Rect: Rect{X: 1870, Y: 500, Width: 50, Height: 580}, Side: SideRight},
	}

	// The right dock only covers the lower part of the screen.
	high := ExpandAvoidingStruts(Rect{X: 300, Y: 100, Width: 400, Height: 200}, monitor, Horizontal, struts)
	if high != (Rect{X: 0, Y: 100, Width: 1920, Height: 200}) {
		t.Fatalf("unexpected horizontal expansion above dock: %v", high)
	}
	low := ExpandAvoidingStruts(Rect{X: 300, Y: 600, Width: 400, Height: 200}, monitor, Horizontal, struts)
	if low != (Rect{X: 0, Y: 600, Width: 1870, Height: 200}) {
		t.Fatalf("unexpected horizontal expansion beside dock: %v", low)
	}

	vert := ExpandAvoidingStruts(Rect{X: 300, Y: 600, Width: 400, Height: 200}, monitor, Vertical, struts)
	if vert != (Rect{X: 300, Y: 24, Width: 400, Height: 1056}) {
		t.Fatalf("unexpected vertical expansion: %v", vert)
	}
}

func TestParseSide(t *testing.T) {
	if s, err := ParseSide("Bottom"); err != nil || s != SideBottom {
		t.Fatalf("expected bottom, got %v, %v", s, err)
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Fatalf("expected error for unknown side")
	}
}
