package config

import (
	"fmt"
	"strings"
)

// ValidationError points at the config key that failed validation and,
// when known, where in the file it was set.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if p := raw.Preferences; p != nil {
		if p.AttachModalDialogs != nil {
			cfg.Preferences.AttachModal = *p.AttachModalDialogs
		}
		if p.CenterNewWindows != nil {
			cfg.Preferences.CenterNewWindows = *p.CenterNewWindows
		}
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.Playground != nil && raw.Playground.Monitors != nil {
		cfg.Playground.Monitors = append(cfg.Playground.Monitors[:0:0], raw.Playground.Monitors...)
	}

	return cfg
}
