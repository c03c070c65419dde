// Package mcp provides the Foreman MCP server: one tool per wrapped
// CLI, each returning rendered text plus the schema-validated canonical
// or compact result as the structured payload.
package mcp

import (
	"context"
	_ "embed"
	"net/url"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/foreman"
	"github.com/deixis/foreman/internal/config"
	"github.com/deixis/foreman/internal/runner"
)

//go:embed instructions.md
var Instructions string

// Runner executes one guarded command. *runner.Runner implements it;
// tests substitute doubles keyed by argv.
type Runner interface {
	Run(ctx context.Context, argv []string, cwd string) (*runner.Result, error)
}

// handler holds shared dependencies for all tool handlers.
type handler struct {
	cfg *config.Config
	run Runner
}

// NewServer creates an MCP server with every enabled wrapped tool
// registered. Tools named in the config's disabled list are not
// published.
func NewServer(cfg *config.Config, run Runner) *mcp.Server {
	h := &handler{cfg: cfg, run: run}

	opts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
		InitializedHandler: func(ctx context.Context, req *mcp.InitializedRequest) {
			h.updateWorkspaceFromRoots(ctx, req.Session)
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "foreman", Version: foreman.Version}, opts)

	for _, def := range toolDefs {
		if cfg.IsDisabled(def.name) {
			continue
		}
		d := def // capture for closure
		s.AddTool(&mcp.Tool{
			Name:        d.name,
			Description: d.description,
			InputSchema: toolSchema(d),
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return h.invokeTool(ctx, d, req.Params.Arguments)
		})
	}

	if !cfg.IsDisabled(condaToolName) {
		registerConda(s, h)
	}

	return s
}

// updateWorkspaceFromRoots queries the client for MCP roots and, when a
// valid file root is returned, reloads configuration from it and points
// the runner there. Called during session initialization, before any
// tool calls.
func (h *handler) updateWorkspaceFromRoots(ctx context.Context, session *mcp.ServerSession) {
	rr, ok := h.run.(*runner.Runner)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	roots, err := session.ListRoots(ctx, &mcp.ListRootsParams{})
	if err != nil || len(roots.Roots) == 0 {
		return
	}

	u, err := url.Parse(roots.Roots[0].URI)
	if err != nil || u.Scheme != "file" {
		return
	}
	workspace := u.Path

	loaded, err := config.Load(workspace)
	if err != nil {
		return
	}

	h.cfg = loaded.Config
	rr.Workspace = workspace
	rr.Timeout = loaded.Config.Timeout()
	rr.MaxOutput = loaded.Config.MaxOutputBytes()
}

// textResult builds a tool result carrying rendered text and the
// structured payload.
func textResult(text string, payload any) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: payload,
	}, nil
}

// errorResult builds an error tool result.
func errorResult(text string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil
}
