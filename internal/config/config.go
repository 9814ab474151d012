package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winfit/internal/geom"
)

// Log levels accepted by log_level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Preferences are the window manager preferences the solver consults.
type Preferences struct {
	// AttachModal keeps modal dialogs centered over their parent.
	AttachModal bool `yaml:"attach_modal_dialogs"`
	// CenterNewWindows places unplaced windows in the middle of their
	// monitor instead of cascading them.
	CenterNewWindows bool `yaml:"center_new_windows"`
}

// AttachModalDialogs implements constraints.Prefs.
func (p Preferences) AttachModalDialogs() bool { return p.AttachModal }

// Playground configures `winfit play`.
type Playground struct {
	// Monitors is the default monitor layout when no scenario is given.
	Monitors []geom.Rect `yaml:"monitors"`
}

// Config represents the effective winfit configuration.
type Config struct {
	Preferences Preferences `yaml:"preferences"`
	LogLevel    string      `yaml:"log_level"`
	Display     string      `yaml:"display,omitempty"`
	Playground  Playground  `yaml:"playground"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Preferences: Preferences{
			AttachModal:      true,
			CenterNewWindows: false,
		},
		LogLevel: "warn",
		Playground: Playground{
			Monitors: []geom.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		},
	}
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if !validLogLevel(c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: %s", strings.Join(logLevels, ", "))}
	}
	if len(c.Playground.Monitors) == 0 {
		return &ValidationError{Path: "playground.monitors", Err: fmt.Errorf("playground.monitors must not be empty")}
	}
	for i, m := range c.Playground.Monitors {
		if m.Width <= 0 || m.Height <= 0 {
			return &ValidationError{
				Path: "playground.monitors",
				Err:  fmt.Errorf("monitor %d must have a positive size, got %dx%d", i, m.Width, m.Height),
			}
		}
	}

	if warnings := c.validationWarnings(); len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}
	return nil
}

func (c *Config) validationWarnings() []string {
	if c == nil {
		return nil
	}

	var warnings []string
	monitors := c.Playground.Monitors
	for i := range monitors {
		for j := i + 1; j < len(monitors); j++ {
			if monitors[i].Overlaps(monitors[j]) {
				warnings = append(warnings, fmt.Sprintf("playground monitors %d and %d overlap", i, j))
			}
		}
	}
	return warnings
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if level == l {
			return true
		}
	}
	return false
}
