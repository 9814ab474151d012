package constraints

import (
	"github.com/1broseidon/winfit/internal/geom"
)

// Request describes one move and/or resize of a window, in client
// coordinates.
type Request struct {
	// Borders are precomputed frame metrics. Nil means none are known.
	Borders *FrameBorders

	Move   bool
	Resize bool

	// UserAction marks an interactive, pointer-driven operation.
	UserAction bool
	// FrameGrab marks a user drag that started on the frame, which keeps
	// the titlebar-visible rule in force.
	FrameGrab bool

	Gravity geom.Gravity
	Orig    geom.Rect
	New     geom.Rect
}

// Action classifies a request.
type Action int

const (
	ActionMove Action = iota
	ActionResize
	ActionMoveAndResize
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionResize:
		return "resize"
	case ActionMoveAndResize:
		return "move-resize"
	}
	return "invalid"
}

// Action returns the request's action. It panics when the request neither
// moves nor resizes.
func (r Request) Action() Action {
	switch {
	case r.Move && r.Resize:
		return ActionMoveAndResize
	case r.Resize:
		return ActionResize
	case r.Move:
		return ActionMove
	}
	panic("constraints: request must move, resize or both")
}

// Priority orders rules by importance. Rules with a lower priority are
// dropped first when not every rule can hold.
type Priority int

const (
	PriorityAspectRatio       Priority = 0
	PrioritySingleMonitor     Priority = 0
	PriorityFullyOnscreen     Priority = 1
	PrioritySizeIncrements    Priority = 1
	PriorityMaximization      Priority = 2
	PriorityTiling            Priority = 2
	PriorityFullscreen        Priority = 2
	PrioritySizeLimits        Priority = 3
	PriorityTitlebarVisible   Priority = 4
	PriorityPartiallyOnscreen Priority = 4

	PriorityMinimum Priority = 0
	PriorityMaximum Priority = 4
)

// RuleName identifies a rule in logs and results.
type RuleName string

const (
	RuleModalDialog       RuleName = "modal-dialog"
	RuleMaximization      RuleName = "maximization"
	RuleTiling            RuleName = "tiling"
	RuleFullscreen        RuleName = "fullscreen"
	RuleSizeIncrements    RuleName = "size-increments"
	RuleSizeLimits        RuleName = "size-limits"
	RuleAspectRatio       RuleName = "aspect-ratio"
	RuleSingleMonitor     RuleName = "single-monitor"
	RuleFullyOnscreen     RuleName = "fully-onscreen"
	RuleTitlebarVisible   RuleName = "titlebar-visible"
	RulePartiallyOnscreen RuleName = "partially-onscreen"
)

// Result is the outcome of one solve.
type Result struct {
	Rect geom.Rect
	// Priority is the threshold at which the loop stopped.
	Priority Priority
	// Satisfied is false when even the most important rules could not be
	// met together.
	Satisfied bool
	// Violated lists the rules that do not hold on Rect, in evaluation
	// order. These are the rules that were dropped.
	Violated []RuleName
}
