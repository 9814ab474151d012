// Package mcp exposes the constraint solver as MCP tools over stdio.
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfit/internal/config"
)

const (
	ServerName    = "winfit"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window constraint queries.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	log       *log.Logger
}

// NewServer creates a server. Scenarios without preferences fall back to
// cfg's.
func NewServer(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		config: cfg,
		log:    logger,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "constrain_window",
		Description: "Compute the geometry a window manager would give a window for a requested move or resize. Takes monitors, panel struts, the window (type, rect, frame borders, maximized/fullscreen/tile state, size hints, transient parent) and the request (action move|resize|move-resize, user, gravity, orig, new). Returns the final client rect, the relaxation priority reached, rules that could not be satisfied and the window's updated onscreen requirements. When expect is given, reports whether the result matches.",
	}, s.handleConstrainWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_rules",
		Description: "List the layout rules in evaluation order with their priority. Rules with lower priority are dropped first when rules conflict; ungated rules are never dropped.",
	}, s.handleListRules)
}
