// Package mcp exposes the feasibility engine to LLM agents as an MCP
// server with a single assess_feasibility tool plus a catalog resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/telluric-labs/matfeas"
	"github.com/telluric-labs/matfeas/pkg/domain"
)

// Engine is the surface this adapter needs from the feasibility core.
type Engine interface {
	Evaluate(ctx context.Context, formula string) (*domain.FeasibilityResult, error)
	KnownSystems() []string
}

// Server wraps the engine and exposes it over the Model Context Protocol.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server around the engine.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("matfeas-mcp", strings.TrimSpace(matfeas.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// assessArgs is the tool input, decoded from the raw argument map.
type assessArgs struct {
	Formula string `mapstructure:"formula"`
}

func (s *Server) registerTools() {
	assessTool := mcp.NewTool("assess_feasibility",
		mcp.WithDescription("Grade whether a hypothetical inorganic compound, given by chemical formula, is plausibly synthesizable. Returns a verdict (Feasible, Metastable, Not feasible, Uncertain) with a per-stage decision trail."),
		mcp.WithString("formula", mcp.Required(), mcp.Description("Chemical formula, e.g. Fe2O3 or CuCl")),
		mcp.WithOutputSchema[domain.FeasibilityResult](),
	)
	s.mcpServer.AddTool(assessTool, mcp.NewStructuredToolHandler(s.handleAssess))

	s.mcpServer.AddTool(mcp.NewTool("list_known_systems",
		mcp.WithDescription("List the chemical systems covered by the competing-phase library."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.engine.KnownSystems())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleAssess(ctx context.Context, request mcp.CallToolRequest, rawArgs map[string]interface{}) (domain.FeasibilityResult, error) {
	var args assessArgs
	if err := mapstructure.Decode(rawArgs, &args); err != nil {
		return domain.FeasibilityResult{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(args.Formula) == "" {
		return domain.FeasibilityResult{}, fmt.Errorf("formula is required")
	}

	result, err := s.engine.Evaluate(ctx, args.Formula)
	if err != nil {
		return domain.FeasibilityResult{}, fmt.Errorf("evaluation rejected: %w", err)
	}
	return *result, nil
}

func (s *Server) registerResources() {
	// EXPOSE: matfeas://systems
	s.mcpServer.AddResource(mcp.NewResource("matfeas://systems", "Known Chemical Systems",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.engine.KnownSystems())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "matfeas://systems",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
