package x11

import (
	"math"
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
)

func TestWindowTypeFromEWMH(t *testing.T) {
	tests := []struct {
		name      string
		types     []string
		states    []string
		transient bool
		want      constraints.WindowType
	}{
		{name: "untyped", want: constraints.TypeNormal},
		{name: "untyped transient", transient: true, want: constraints.TypeDialog},
		{name: "dock", types: []string{"_NET_WM_WINDOW_TYPE_DOCK"}, want: constraints.TypeDock},
		{name: "popup menu", types: []string{"_NET_WM_WINDOW_TYPE_POPUP_MENU"}, want: constraints.TypeMenu},
		{
			name:  "first known wins",
			types: []string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE", "_NET_WM_WINDOW_TYPE_UTILITY", "_NET_WM_WINDOW_TYPE_DIALOG"},
			want:  constraints.TypeUtility,
		},
		{
			name:   "modal dialog",
			types:  []string{"_NET_WM_WINDOW_TYPE_DIALOG"},
			states: []string{"_NET_WM_STATE_MODAL"},
			want:   constraints.TypeModalDialog,
		},
		{
			name:   "modal state on normal window",
			types:  []string{"_NET_WM_WINDOW_TYPE_NORMAL"},
			states: []string{"_NET_WM_STATE_MODAL"},
			want:   constraints.TypeNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTypeFromEWMH(tt.types, tt.states, tt.transient); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyStates(t *testing.T) {
	w := constraints.NewWindow("w", geom.Rect{Width: 10, Height: 10})
	applyStates(w, []string{"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_HIDDEN"})
	if w.MaximizedHorizontally || !w.MaximizedVertically || !w.Minimized || w.Fullscreen {
		t.Fatalf("unexpected state %+v", w)
	}
}

func TestSizeHintsFromNormal(t *testing.T) {
	t.Run("nil hints", func(t *testing.T) {
		if got := sizeHintsFromNormal(nil); got != constraints.DefaultSizeHints() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})

	t.Run("base stands in for min", func(t *testing.T) {
		h := sizeHintsFromNormal(&icccm.NormalHints{
			Flags:      icccm.SizeHintPBaseSize | icccm.SizeHintPResizeInc,
			BaseWidth:  20,
			BaseHeight: 10,
			WidthInc:   8,
			HeightInc:  16,
			MinWidth:   500,
		})
		if h.MinWidth != 20 || h.MinHeight != 10 || h.BaseWidth != 20 || h.BaseHeight != 10 {
			t.Fatalf("unexpected min/base %+v", h)
		}
		if h.WidthInc != 8 || h.HeightInc != 16 {
			t.Fatalf("unexpected increments %+v", h)
		}
		if h.MaxWidth != math.MaxInt32 {
			t.Fatalf("expected unbounded max width, got %d", h.MaxWidth)
		}
	})

	t.Run("min stands in for base", func(t *testing.T) {
		h := sizeHintsFromNormal(&icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			MinWidth:  300,
			MinHeight: 200,
			MaxWidth:  100,
			MaxHeight: 900,
		})
		if h.BaseWidth != 300 || h.BaseHeight != 200 {
			t.Fatalf("expected base from min, got %+v", h)
		}
		// max below min is repaired
		if h.MaxWidth != 300 || h.MaxHeight != 900 {
			t.Fatalf("unexpected max %+v", h)
		}
	})

	t.Run("aspect", func(t *testing.T) {
		h := sizeHintsFromNormal(&icccm.NormalHints{
			Flags:        icccm.SizeHintPAspect,
			MinAspectNum: 4, MinAspectDen: 3,
			MaxAspectNum: 16, MaxAspectDen: 9,
		})
		if h.MinAspect != (constraints.Aspect{Num: 4, Den: 3}) || h.MaxAspect != (constraints.Aspect{Num: 16, Den: 9}) {
			t.Fatalf("unexpected aspect %+v %+v", h.MinAspect, h.MaxAspect)
		}
	})
}

func TestGravityFromNormal(t *testing.T) {
	if g := gravityFromNormal(nil); g != geom.GravityNorthWest {
		t.Fatalf("expected north-west, got %v", g)
	}
	nh := &icccm.NormalHints{Flags: icccm.SizeHintPWinGravity, WinGravity: 9}
	if g := gravityFromNormal(nh); g != geom.GravitySouthEast {
		t.Fatalf("expected south-east, got %v", g)
	}
	nh.WinGravity = 0
	if g := gravityFromNormal(nh); g != geom.GravityNorthWest {
		t.Fatalf("expected forget gravity to map to north-west, got %v", g)
	}
}

func TestFrameFromExtents(t *testing.T) {
	if fb := frameFromExtents(&ewmh.FrameExtents{}); fb != nil {
		t.Fatalf("expected no frame for zero extents, got %+v", fb)
	}
	fb := frameFromExtents(&ewmh.FrameExtents{Left: 1, Right: 1, Top: 28, Bottom: 1})
	if fb == nil || fb.Visible.Top != 28 || fb.Total != fb.Visible {
		t.Fatalf("unexpected frame %+v", fb)
	}
}

func TestFullscreenMonitors(t *testing.T) {
	got := fullscreenMonitors(&ewmh.WmFullscreenMonitors{Top: 0, Bottom: 1, Left: 0, Right: 1})
	if got != [4]int{0, 1, 0, 1} {
		t.Fatalf("unexpected monitors %v", got)
	}
	if got := fullscreenMonitors(nil); got[0] != constraints.NoMonitor {
		t.Fatalf("expected unset monitors, got %v", got)
	}
}

func TestPartialStrut(t *testing.T) {
	root := geom.Rect{Width: 3840, Height: 1080}
	struts := partialStrut(&ewmh.WmStrutPartial{Top: 32, TopStartX: 0, TopEndX: 1919}).Struts(root)
	if len(struts) != 1 {
		t.Fatalf("expected one strut, got %v", struts)
	}
	want := geom.Rect{X: 0, Y: 0, Width: 1920, Height: 32}
	if struts[0].Side != geom.SideTop || struts[0].Rect != want {
		t.Fatalf("expected top strut %v, got %+v", want, struts[0])
	}
}

func TestFrameFromDecor(t *testing.T) {
	client := geom.Rect{X: 102, Y: 130, Width: 800, Height: 600}
	fb := frameFromDecor(client, geom.Rect{X: 100, Y: 100, Width: 804, Height: 632})
	want := constraints.Borders{Left: 2, Right: 2, Top: 30, Bottom: 2}
	if fb == nil || fb.Visible != want {
		t.Fatalf("expected %+v, got %+v", want, fb)
	}

	if fb := frameFromDecor(client, client); fb != nil {
		t.Fatalf("expected no frame for an unparented client, got %+v", fb)
	}
}
