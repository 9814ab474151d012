package config

import "github.com/1broseidon/winfit/internal/geom"

// RawPreferences mirrors Preferences with every key optional.
type RawPreferences struct {
	AttachModalDialogs *bool `yaml:"attach_modal_dialogs"`
	CenterNewWindows   *bool `yaml:"center_new_windows"`
}

type RawPlayground struct {
	Monitors []geom.Rect `yaml:"monitors"`
}

// RawConfig is the file as written. Nil fields fall back to defaults.
type RawConfig struct {
	Preferences *RawPreferences `yaml:"preferences"`
	LogLevel    *string         `yaml:"log_level"`
	Display     *string         `yaml:"display"`
	Playground  *RawPlayground  `yaml:"playground"`
}
