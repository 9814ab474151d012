package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/tiling"
)

func TestTestdataScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no scenarios found")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if sc.Expect == nil {
				t.Fatalf("scenario has no expectation")
			}
			out, err := sc.Run()
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if err := out.Check(); err != nil {
				t.Fatalf("check: %v", err)
			}
		})
	}
}

func TestLoad_NameDefaultsToFileName(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "clip.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "clip" {
		t.Fatalf("expected name clip, got %q", sc.Name)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("monitors: []\nwindows: {}\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected empty document to be invalid, got %v", err)
	}
}

func baseScenario() *Scenario {
	return &Scenario{
		Monitors: []geom.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		Window: WindowSpec{WindowState: WindowState{
			Rect: geom.Rect{X: 100, Y: 100, Width: 300, Height: 300},
		}},
		Request: RequestSpec{
			Action: "move",
			New:    geom.Rect{X: 200, Y: 200, Width: 300, Height: 300},
		},
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		want   string
	}{
		{"no monitors", func(s *Scenario) { s.Monitors = nil }, "monitors"},
		{"bad strut side", func(s *Scenario) {
			s.Struts = []Strut{{Side: "middle", Rect: geom.Rect{Width: 10, Height: 10}}}
		}, "struts[0]"},
		{"empty window", func(s *Scenario) { s.Window.Rect.Width = 0 }, "window.rect"},
		{"bad type", func(s *Scenario) { s.Window.Type = "popup" }, "window.type"},
		{"bad tile mode", func(s *Scenario) { s.Window.TileMode = "center" }, "window.tile_mode"},
		{"short fullscreen monitors", func(s *Scenario) { s.Window.FullscreenMonitors = []int{0, 1} }, "fullscreen_monitors"},
		{"missing action", func(s *Scenario) { s.Request.Action = "" }, "request.action"},
		{"bad action", func(s *Scenario) { s.Request.Action = "teleport" }, "request.action"},
		{"bad gravity", func(s *Scenario) { s.Request.Gravity = "up" }, "request.gravity"},
		{"bad parent", func(s *Scenario) {
			s.Window.Parent = &WindowState{Type: "bogus", Rect: geom.Rect{Width: 10, Height: 10}}
		}, "window.parent.type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := baseScenario()
			tt.mutate(sc)
			_, _, _, err := sc.Build()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestBuild_WindowState(t *testing.T) {
	falseVal := false
	sc := baseScenario()
	sc.Window = WindowSpec{WindowState: WindowState{
		Desc:               "player",
		Type:               "utility",
		Rect:               geom.Rect{X: 10, Y: 20, Width: 300, Height: 200},
		Frame:              &constraints.FrameBorders{Visible: constraints.Borders{Top: 20}},
		Fullscreen:         true,
		FullscreenMonitors: []int{0, 0, 0, 0},
		TileMode:           "top_left",
		SizeHints:          &constraints.SizeHints{MinWidth: 50, WidthInc: 8},
		Require:            &Require{SingleMonitor: &falseVal},
		Placed:             &falseVal,
		CalcPlacement:      true,
	}}
	sc.Request = RequestSpec{Action: "move_resize", User: true, Gravity: "south-east", New: sc.Window.Rect}

	w, req, layout, err := sc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if w.Desc != "player" || w.Type != constraints.TypeUtility {
		t.Fatalf("unexpected identity %q %v", w.Desc, w.Type)
	}
	if w.Frame == nil || w.Frame.Rect != (geom.Rect{X: 10, Y: 0, Width: 300, Height: 220}) {
		t.Fatalf("unexpected frame %+v", w.Frame)
	}
	if w.TileMode != tiling.ModeTopLeft {
		t.Fatalf("expected top-left tile, got %v", w.TileMode)
	}
	if w.FullscreenMonitors != [4]int{0, 0, 0, 0} {
		t.Fatalf("unexpected fullscreen monitors %v", w.FullscreenMonitors)
	}
	if w.SizeHints.MinWidth != 50 || w.SizeHints.WidthInc != 8 || w.SizeHints.HeightInc != 1 {
		t.Fatalf("expected hints merged onto defaults, got %+v", w.SizeHints)
	}
	if w.RequireOnSingleMonitor || !w.RequireFullyOnscreen || !w.RequireTitlebarVisible {
		t.Fatalf("unexpected requirements %+v", w)
	}
	if w.Placed || !w.CalcPlacement {
		t.Fatalf("expected unplaced window")
	}

	if !req.Move || !req.Resize || !req.UserAction || req.Gravity != geom.GravitySouthEast {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Orig != w.Rect {
		t.Fatalf("expected orig to default to the window rect, got %v", req.Orig)
	}
	if req.Borders == nil || req.Borders.Visible.Top != 20 {
		t.Fatalf("expected request borders from the frame, got %+v", req.Borders)
	}
	if layout.MonitorCount() != 1 {
		t.Fatalf("expected 1 monitor")
	}
}

func TestRun_PreferencesAndRequirements(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "modal.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	off := false
	sc.Preferences = &Preferences{AttachModalDialogs: &off}

	out, err := sc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// Without attaching, the dialog is only shoved below the top edge.
	want := geom.Rect{X: 0, Y: 24, Width: 400, Height: 200}
	if out.Result.Rect != want {
		t.Fatalf("expected %v, got %v", want, out.Result.Rect)
	}
	if err := out.Check(); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}

	req := out.Requirements()
	if !req.FullyOnscreen || !req.SingleMonitor || !req.TitlebarVisible {
		t.Fatalf("expected all requirements kept, got %+v", req)
	}
}

func TestRun_CenterNewWindows(t *testing.T) {
	on := true
	unplaced := false
	sc := baseScenario()
	sc.Preferences = &Preferences{CenterNewWindows: &on}
	sc.Window.Placed = &unplaced
	sc.Window.CalcPlacement = true
	sc.Window.Rect = geom.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	sc.Request = RequestSpec{Action: "move-resize", New: sc.Window.Rect}

	out, err := sc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := geom.Rect{X: 760, Y: 390, Width: 400, Height: 300}
	if out.Result.Rect != want {
		t.Fatalf("expected %v, got %v", want, out.Result.Rect)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "maximize.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data, err := sc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "copy.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	out, err := again.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := out.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestOutcome_Report(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "clip.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := sc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	r := out.Report()
	want := geom.Rect{X: 100, Y: 100, Width: 1820, Height: 300}
	if r.Name != "clip" || r.Rect != want || !r.Satisfied {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Violated == nil || len(r.Violated) != 0 {
		t.Fatalf("expected empty, non-nil violations, got %#v", r.Violated)
	}
	if r.Matches == nil || !*r.Matches {
		t.Fatalf("expected matching expectation")
	}

	out.Expect = &geom.Rect{Width: 1, Height: 1}
	if r := out.Report(); r.Matches == nil || *r.Matches {
		t.Fatalf("expected mismatch to be reported")
	}

	out.Expect = nil
	if r := out.Report(); r.Matches != nil || r.Expected != nil {
		t.Fatalf("expected no expectation fields, got %+v", r)
	}
}
