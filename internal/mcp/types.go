package mcp

import (
	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/scenario"
)

// ConstrainWindowInput is the input for the constrain_window tool. It uses
// the scenario file schema.
type ConstrainWindowInput = scenario.Scenario

// ConstrainWindowPreferences overrides the server's configured preferences.
type ConstrainWindowPreferences = scenario.Preferences

// ConstrainWindowOutput is the output for the constrain_window tool.
type ConstrainWindowOutput = scenario.Report

// ListRulesInput is the input for the list_rules tool.
type ListRulesInput struct{}

// ListRulesOutput is the output for the list_rules tool.
type ListRulesOutput struct {
	Rules []constraints.RuleInfo `json:"rules"`
}
