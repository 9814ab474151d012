package config

import (
	"fmt"
	"strings"
)

// Paths lists every key Explain accepts, in file order.
var Paths = []string{
	"preferences.attach_modal_dialogs",
	"preferences.center_new_windows",
	"log_level",
	"display",
	"playground.monitors",
}

// Explain returns the effective value at the given YAML-like path and its
// source.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch strings.TrimSpace(path) {
	case "preferences":
		return cfg.Preferences, nil
	case "preferences.attach_modal_dialogs":
		return cfg.Preferences.AttachModal, nil
	case "preferences.center_new_windows":
		return cfg.Preferences.CenterNewWindows, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "display":
		return cfg.Display, nil
	case "playground":
		return cfg.Playground, nil
	case "playground.monitors":
		return cfg.Playground.Monitors, nil
	}
	return nil, fmt.Errorf("unknown path: %s", path)
}
