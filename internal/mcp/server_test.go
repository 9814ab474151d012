package mcp

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
	"github.com/1broseidon/winfit/internal/scenario"
)

func newTestServer(cfg *config.Config) *Server {
	return NewServer(cfg, log.New(io.Discard))
}

func modalInput() ConstrainWindowInput {
	return ConstrainWindowInput{
		Monitors: []geom.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		Window: scenario.WindowSpec{
			WindowState: scenario.WindowState{
				Type:  "modal-dialog",
				Rect:  geom.Rect{X: 0, Y: 0, Width: 400, Height: 200},
				Frame: &constraints.FrameBorders{Visible: constraints.Borders{Top: 24}},
			},
			Parent: &scenario.WindowState{
				Rect:  geom.Rect{X: 50, Y: 80, Width: 800, Height: 570},
				Frame: &constraints.FrameBorders{Visible: constraints.Borders{Top: 30}},
			},
		},
		Request: scenario.RequestSpec{
			Action: "move",
			New:    geom.Rect{X: 0, Y: 0, Width: 400, Height: 200},
		},
	}
}

func TestHandleConstrainWindow_Modal(t *testing.T) {
	s := newTestServer(nil)

	want := geom.Rect{X: 250, Y: 104, Width: 400, Height: 200}
	in := modalInput()
	in.Expect = &want

	_, out, err := s.handleConstrainWindow(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rect != want {
		t.Fatalf("expected %v, got %v", want, out.Rect)
	}
	if !out.Satisfied || out.Priority != constraints.PriorityMinimum {
		t.Fatalf("expected satisfied at priority 0, got %+v", out)
	}
	if out.Matches == nil || !*out.Matches {
		t.Fatalf("expected matches=true")
	}
	if len(out.Violated) != 0 {
		t.Fatalf("expected no violated rules, got %v", out.Violated)
	}
	if !out.Requirements.FullyOnscreen {
		t.Fatalf("expected fully onscreen requirement, got %+v", out.Requirements)
	}
}

func TestHandleConstrainWindow_ConfigPreferences(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preferences.AttachModal = false
	s := newTestServer(cfg)

	_, out, err := s.handleConstrainWindow(context.Background(), nil, modalInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rect.X == 250 {
		t.Fatalf("expected config to disable modal attachment, got %v", out.Rect)
	}
	if out.Matches != nil {
		t.Fatalf("expected no match result without expect")
	}

	// Explicit preferences win over the config.
	on := true
	in := modalInput()
	in.Preferences = &ConstrainWindowPreferences{AttachModalDialogs: &on}
	_, out, err = s.handleConstrainWindow(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rect.X != 250 || out.Rect.Y != 104 {
		t.Fatalf("expected attached dialog, got %v", out.Rect)
	}
}

func TestHandleConstrainWindow_Invalid(t *testing.T) {
	s := newTestServer(nil)

	in := modalInput()
	in.Request.Action = "jump"
	_, _, err := s.handleConstrainWindow(context.Background(), nil, in)
	if !errors.Is(err, scenario.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestHandleConstrainWindow_Violations(t *testing.T) {
	s := newTestServer(nil)

	in := ConstrainWindowInput{
		Monitors: []geom.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		Window: scenario.WindowSpec{WindowState: scenario.WindowState{
			Rect:      geom.Rect{X: 100, Y: 100, Width: 300, Height: 300},
			Maximized: scenario.Maximized{Horizontal: true},
			SizeHints: &constraints.SizeHints{
				MinAspect: constraints.Aspect{Num: 1, Den: 1},
				MaxAspect: constraints.Aspect{Num: 1, Den: 1},
			},
		}},
		Request: scenario.RequestSpec{
			Action: "move-resize",
			New:    geom.Rect{X: 100, Y: 100, Width: 300, Height: 300},
		},
	}

	_, out, err := s.handleConstrainWindow(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Violated) != 1 || out.Violated[0] != string(constraints.RuleAspectRatio) {
		t.Fatalf("expected aspect-ratio violated, got %v", out.Violated)
	}
	if out.Priority != constraints.PriorityFullyOnscreen {
		t.Fatalf("expected priority 1, got %d", out.Priority)
	}
}

func TestHandleListRules(t *testing.T) {
	s := newTestServer(nil)

	_, out, err := s.handleListRules(context.Background(), nil, ListRulesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Rules) != 11 {
		t.Fatalf("expected 11 rules, got %d", len(out.Rules))
	}
	if out.Rules[0].Name != constraints.RuleModalDialog || out.Rules[0].Gated {
		t.Fatalf("expected ungated modal-dialog rule first, got %+v", out.Rules[0])
	}
}
