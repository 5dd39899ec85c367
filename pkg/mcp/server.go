// Package mcp exposes the reconciliation engine over the Model Context
// Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/figbridge/pkg/consistency"
	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/match"
	"github.com/gnana997/figbridge/pkg/mcplog"
	"github.com/gnana997/figbridge/pkg/reconcile"
	"github.com/gnana997/figbridge/pkg/scanner"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for figbridge, exposing design/code
// reconciliation tools.
type Server struct {
	mcpServer  *server.MCPServer
	figma      *figma.Client // nil when no token is configured
	scanner    *scanner.Scanner
	reconciler *reconcile.Reconciler
	analyzer   *consistency.Analyzer
	toolLog    *mcplog.Logger // nil disables tool-call logging
	log        *slog.Logger
}

// NewServer creates an MCP server backed by the given collaborators. The
// figma client may be nil; tools that need the remote API then return a
// configuration error instead of failing at startup.
func NewServer(fc *figma.Client, sc *scanner.Scanner, toolLog *mcplog.Logger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		figma:      fc,
		scanner:    sc,
		reconciler: reconcile.NewReconciler(match.NewMatcher(4096), logger),
		analyzer:   consistency.NewAnalyzer(logger),
		toolLog:    toolLog,
		log:        logger,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("figbridge", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: parseFigmaURLTool(), Handler: s.handleParseFigmaURL},
		server.ServerTool{Tool: getDesignComponentsTool(), Handler: s.handleGetDesignComponents},
		server.ServerTool{Tool: compareComponentsTool(), Handler: s.handleCompareComponents},
		server.ServerTool{Tool: checkConsistencyTool(), Handler: s.handleCheckConsistency},
		server.ServerTool{Tool: generateComponentStubsTool(), Handler: s.handleGenerateComponentStubs},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
