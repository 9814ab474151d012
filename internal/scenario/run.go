package scenario

import (
	"fmt"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
)

// Requirements are the window's onscreen flags after a solve.
type Requirements struct {
	FullyOnscreen   bool `json:"fully_onscreen"`
	SingleMonitor   bool `json:"single_monitor"`
	TitlebarVisible bool `json:"titlebar_visible"`
}

// Outcome is the result of running a scenario.
type Outcome struct {
	Name   string
	Result constraints.Result
	// Window is the solved window, with its updated requirements.
	Window *constraints.Window
	Expect *geom.Rect
}

// Run builds the scenario and solves it once. opts are applied after the
// options derived from the scenario's preferences.
func (s *Scenario) Run(opts ...constraints.Option) (Outcome, error) {
	w, req, layout, err := s.Build()
	if err != nil {
		return Outcome{}, err
	}

	solverOpts := append(s.SolverOptions(layout), opts...)
	solver := constraints.New(layout, solverOpts...)
	res := solver.Solve(w, req)

	return Outcome{
		Name:   s.Name,
		Result: res,
		Window: w,
		Expect: s.Expect,
	}, nil
}

// Requirements reports the window's flags after the solve.
func (o Outcome) Requirements() Requirements {
	if o.Window == nil {
		return Requirements{}
	}
	return Requirements{
		FullyOnscreen:   o.Window.RequireFullyOnscreen,
		SingleMonitor:   o.Window.RequireOnSingleMonitor,
		TitlebarVisible: o.Window.RequireTitlebarVisible,
	}
}

// Check compares the result with the expectation, if any.
func (o Outcome) Check() error {
	if o.Expect == nil || *o.Expect == o.Result.Rect {
		return nil
	}
	return fmt.Errorf("%w: expected %v, got %v", ErrMismatch, *o.Expect, o.Result.Rect)
}

// Report is the serializable summary of an Outcome.
type Report struct {
	Name         string               `json:"name,omitempty"`
	Rect         geom.Rect            `json:"rect"`
	Priority     constraints.Priority `json:"priority"`
	Satisfied    bool                 `json:"satisfied"`
	Violated     []string             `json:"violated"`
	Requirements Requirements         `json:"requirements"`
	Expected     *geom.Rect           `json:"expected,omitempty"`
	// Matches is set only when an expectation was given.
	Matches *bool `json:"matches,omitempty"`
}

// Report summarizes the outcome.
func (o Outcome) Report() Report {
	res := o.Result
	violated := make([]string, 0, len(res.Violated))
	for _, v := range res.Violated {
		violated = append(violated, string(v))
	}

	r := Report{
		Name:         o.Name,
		Rect:         res.Rect,
		Priority:     res.Priority,
		Satisfied:    res.Satisfied,
		Violated:     violated,
		Requirements: o.Requirements(),
		Expected:     o.Expect,
	}
	if o.Expect != nil {
		matches := o.Check() == nil
		r.Matches = &matches
	}
	return r
}
