package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/marcelocantos/clish/internal/cap"
	"github.com/marcelocantos/clish/internal/pipeline"
)

// Server exposes the shell executor over MCP. Agents go through the
// same dispatch path as the prompt: tiers, rules and validation all
// apply, and the session working directory persists across calls.
type Server struct {
	reg       *cap.Registry
	wd        *cap.Workdir
	mcpServer *server.MCPServer
}

// NewServer builds the MCP surface over a registry and session workdir.
func NewServer(reg *cap.Registry, wd *cap.Workdir, version string) *Server {
	s := &Server{
		reg:       reg,
		wd:        wd,
		mcpServer: server.NewMCPServer("clish", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	runTool := mcp.NewTool("run_command",
		mcp.WithDescription("Execute one shell line (builtins, > and >> redirection, | piping) and return its captured output."),
		mcp.WithString("line", mcp.Required(), mcp.Description("The raw input line, e.g. \"ls -l | cat\"")),
	)
	s.mcpServer.AddTool(runTool, s.handleRunCommand)

	listTool := mcp.NewTool("list_commands",
		mcp.WithDescription("List the available builtin commands with their tier and description."),
	)
	s.mcpServer.AddTool(listTool, s.handleListCommands)
}

func (s *Server) handleRunCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	line, _ := args["line"].(string)
	line = strings.TrimSpace(line)
	if line == "" {
		return mcp.NewToolResultError("line must be a non-empty string"), nil
	}

	out, err := s.RunLine(ctx, line)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleListCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, c := range s.reg.All() {
		fmt.Fprintf(&b, "%-8s %-10s %s\n", c.Name(), c.Tier(), c.Description())
	}
	return mcp.NewToolResultText(b.String()), nil
}

// RunLine executes one raw line against the server's session state and
// returns the captured output.
func (s *Server) RunLine(ctx context.Context, line string) (string, error) {
	ctx = cap.NewContext(ctx, s.wd)
	var out bytes.Buffer
	// MCP calls carry no input stream; a bare cat reads nothing.
	err := pipeline.Run(ctx, s.reg, line, strings.NewReader(""), &out)
	return out.String(), err
}
