// Package scenario describes a single solve in YAML (or JSON): the monitors
// and struts of a desktop, a window with its state and hints, and the move or
// resize requested for it. Scenarios drive the CLI, the MCP server, the
// playground and the solver tests.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/geom"
)

var (
	// ErrInvalid wraps every problem found while building a scenario.
	ErrInvalid = errors.New("invalid scenario")
	// ErrMismatch is returned by Outcome.Check when the result differs from
	// the expectation.
	ErrMismatch = errors.New("unexpected result")
)

// Scenario is one solver invocation.
type Scenario struct {
	Name        string       `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"Label used in reports"`
	Monitors    []geom.Rect  `yaml:"monitors" json:"monitors" jsonschema:"Monitor rectangles in root coordinates; index 0 is the primary"`
	Struts      []Strut      `yaml:"struts,omitempty" json:"struts,omitempty" jsonschema:"Areas reserved by panels and docks"`
	Preferences *Preferences `yaml:"preferences,omitempty" json:"preferences,omitempty"`
	Window      WindowSpec   `yaml:"window" json:"window"`
	Request     RequestSpec  `yaml:"request" json:"request"`
	Expect      *geom.Rect   `yaml:"expect,omitempty" json:"expect,omitempty" jsonschema:"Expected client rectangle"`
}

// Strut is a reserved rectangle and the screen edge it is attached to.
type Strut struct {
	Side      string `yaml:"side" json:"side" jsonschema:"left, right, top or bottom"`
	geom.Rect `yaml:",inline"`
}

type Preferences struct {
	AttachModalDialogs *bool `yaml:"attach_modal_dialogs,omitempty" json:"attach_modal_dialogs,omitempty"`
	CenterNewWindows   *bool `yaml:"center_new_windows,omitempty" json:"center_new_windows,omitempty"`
}

type Maximized struct {
	Horizontal bool `yaml:"horizontal" json:"horizontal,omitempty"`
	Vertical   bool `yaml:"vertical" json:"vertical,omitempty"`
}

// Require seeds the window's onscreen requirements. Unset entries default
// to true, like a freshly mapped window.
type Require struct {
	FullyOnscreen   *bool `yaml:"fully_onscreen,omitempty" json:"fully_onscreen,omitempty"`
	SingleMonitor   *bool `yaml:"single_monitor,omitempty" json:"single_monitor,omitempty"`
	TitlebarVisible *bool `yaml:"titlebar_visible,omitempty" json:"titlebar_visible,omitempty"`
}

// Pending holds states requested before the window was first placed.
type Pending struct {
	MaximizeHorizontally bool `yaml:"maximize_horizontally" json:"maximize_horizontally,omitempty"`
	MaximizeVertically   bool `yaml:"maximize_vertically" json:"maximize_vertically,omitempty"`
	Fullscreen           bool `yaml:"fullscreen" json:"fullscreen,omitempty"`
	Minimize             bool `yaml:"minimize" json:"minimize,omitempty"`
}

// WindowSpec describes a window and, optionally, its transient parent.
type WindowSpec struct {
	WindowState `yaml:",inline"`
	Parent      *WindowState `yaml:"parent,omitempty" json:"parent,omitempty" jsonschema:"Transient parent"`
}

// WindowState is everything about one window except its parent.
type WindowState struct {
	Desc               string                    `yaml:"desc,omitempty" json:"desc,omitempty"`
	Type               string                    `yaml:"type,omitempty" json:"type,omitempty" jsonschema:"normal, desktop, dock, dialog, modal-dialog, menu, toolbar, utility or splash"`
	Rect               geom.Rect                 `yaml:"rect" json:"rect" jsonschema:"Client rectangle"`
	Frame              *constraints.FrameBorders `yaml:"frame,omitempty" json:"frame,omitempty" jsonschema:"Frame borders; omit for an undecorated window"`
	CustomFrameExtents *constraints.Borders      `yaml:"custom_frame_extents,omitempty" json:"custom_frame_extents,omitempty"`
	Decorated          *bool                     `yaml:"decorated,omitempty" json:"decorated,omitempty"`
	Maximized          Maximized                 `yaml:"maximized,omitempty" json:"maximized,omitempty"`
	Fullscreen         bool                      `yaml:"fullscreen,omitempty" json:"fullscreen,omitempty"`
	FullscreenMonitors []int                     `yaml:"fullscreen_monitors,omitempty" json:"fullscreen_monitors,omitempty" jsonschema:"Top, bottom, left and right monitor indexes"`
	TileMode           string                    `yaml:"tile_mode,omitempty" json:"tile_mode,omitempty" jsonschema:"none, left, right, top-left, top-right, bottom-left or bottom-right"`
	TileResized        bool                      `yaml:"tile_resized,omitempty" json:"tile_resized,omitempty"`
	Minimized          bool                      `yaml:"minimized,omitempty" json:"minimized,omitempty"`
	Placed             *bool                     `yaml:"placed,omitempty" json:"placed,omitempty" jsonschema:"Defaults to true"`
	CalcPlacement      bool                      `yaml:"calc_placement,omitempty" json:"calc_placement,omitempty"`
	Pending            *Pending                  `yaml:"pending,omitempty" json:"pending,omitempty"`
	SizeHints          *constraints.SizeHints    `yaml:"size_hints,omitempty" json:"size_hints,omitempty"`
	Require            *Require                  `yaml:"require,omitempty" json:"require,omitempty"`
}

// RequestSpec is the requested change.
type RequestSpec struct {
	Action    string     `yaml:"action" json:"action" jsonschema:"move, resize or move-resize"`
	User      bool       `yaml:"user,omitempty" json:"user,omitempty" jsonschema:"Whether the user is dragging"`
	FrameGrab bool       `yaml:"frame_grab,omitempty" json:"frame_grab,omitempty"`
	Gravity   string     `yaml:"gravity,omitempty" json:"gravity,omitempty" jsonschema:"Fixed point of a resize, e.g. north-west or east"`
	Orig      *geom.Rect `yaml:"orig,omitempty" json:"orig,omitempty" jsonschema:"Defaults to the window rect"`
	New       geom.Rect  `yaml:"new" json:"new"`
}

// Load reads a scenario file. The name defaults to the file name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario, rejecting unknown keys.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &sc, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return data, nil
}
