package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfit/internal/constraints"
)

func (s *Server) handleConstrainWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ConstrainWindowInput) (*mcpsdk.CallToolResult, ConstrainWindowOutput, error) {
	sc := args
	if sc.Preferences == nil {
		attach := s.config.Preferences.AttachModal
		center := s.config.Preferences.CenterNewWindows
		sc.Preferences = &ConstrainWindowPreferences{
			AttachModalDialogs: &attach,
			CenterNewWindows:   &center,
		}
	}

	out, err := sc.Run(constraints.WithLogger(s.log))
	if err != nil {
		return nil, ConstrainWindowOutput{}, err
	}

	output := out.Report()

	s.log.Info("constrain_window",
		"window", out.Window.Desc,
		"rect", output.Rect,
		"priority", output.Priority,
		"violated", len(output.Violated),
	)
	return nil, output, nil
}

func (s *Server) handleListRules(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListRulesInput) (*mcpsdk.CallToolResult, ListRulesOutput, error) {
	return nil, ListRulesOutput{Rules: constraints.Rules()}, nil
}
