package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/figbridge/pkg/consistency"
	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/report"
	"github.com/gnana997/figbridge/pkg/scanner"
)

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// fetchDesigns resolves the "file" argument to a file key and fetches the
// design components. A non-nil CallToolResult means a user-facing error.
func (s *Server) fetchDesigns(ctx context.Context, req mcp.CallToolRequest) (string, []figma.DesignComponent, *mcp.CallToolResult) {
	file := req.GetString("file", "")
	if file == "" {
		return "", nil, mcp.NewToolResultError("file is required")
	}
	ref, err := figma.ParseFileURL(file)
	if err != nil {
		return "", nil, mcp.NewToolResultError(err.Error())
	}
	if s.figma == nil {
		return "", nil, mcp.NewToolResultError("no Figma access token configured: set FIGMA_TOKEN")
	}
	comps, err := s.figma.FileComponents(ctx, ref.FileKey)
	if err != nil {
		return "", nil, mcp.NewToolResultError(err.Error())
	}
	return ref.FileKey, comps, nil
}

// scanProject scans the project_path argument with the requested framework
// settings. A non-nil CallToolResult means a user-facing error.
func (s *Server) scanProject(req mcp.CallToolRequest) (*scanner.ScanResult, scanner.Framework, *mcp.CallToolResult) {
	root := req.GetString("project_path", "")
	if root == "" {
		return nil, "", mcp.NewToolResultError("project_path is required")
	}
	framework := scanner.ParseFramework(req.GetString("framework", "react"))

	cfg := scanner.DefaultScanConfig(framework)
	cfg.StrictReact = req.GetBool("strict_react", false)

	result, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, "", mcp.NewToolResultError(err.Error())
	}
	return result, framework, nil
}

func (s *Server) handleParseFigmaURL(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := req.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}
	ref, err := figma.ParseFileURL(url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(struct {
		FileKey string `json:"file_key"`
		NodeID  string `json:"node_id,omitempty"`
	}{FileKey: ref.FileKey, NodeID: ref.NodeID})
}

func (s *Server) handleGetDesignComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileKey, comps, errResult := s.fetchDesigns(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	out := map[string]any{"components": comps}
	if req.GetBool("include_styles", false) {
		styles, err := s.figma.FileStyles(ctx, fileKey)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out["styles"] = styles
	}
	return jsonResult(out)
}

func (s *Server) handleCompareComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, designs, errResult := s.fetchDesigns(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	scan, _, errResult := s.scanProject(req)
	if errResult != nil {
		return errResult, nil
	}

	mapping := s.reconciler.Reconcile(designs, scan.Components)

	if req.GetString("format", "json") == "markdown" {
		return mcp.NewToolResultText(report.RenderMapping(mapping)), nil
	}
	return jsonResult(mapping)
}

func (s *Server) handleCheckConsistency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileKey, designs, errResult := s.fetchDesigns(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	scan, _, errResult := s.scanProject(req)
	if errResult != nil {
		return errResult, nil
	}

	opts := consistency.Options{
		CheckComponents: req.GetBool("check_components", true),
		CheckStyles:     req.GetBool("check_styles", true),
	}

	var styles []figma.DesignStyle
	if opts.CheckStyles {
		var err error
		styles, err = s.figma.FileStyles(ctx, fileKey)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	tokens := req.GetStringSlice("tokens", nil)

	mapping := s.reconciler.Reconcile(designs, scan.Components)
	rep := s.analyzer.Analyze(mapping, styles, tokens, opts)

	if req.GetString("format", "json") == "markdown" {
		return mcp.NewToolResultText(report.RenderConsistency(rep)), nil
	}
	return jsonResult(rep)
}

func (s *Server) handleGenerateComponentStubs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, designs, errResult := s.fetchDesigns(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	scan, framework, errResult := s.scanProject(req)
	if errResult != nil {
		return errResult, nil
	}

	mapping := s.reconciler.Reconcile(designs, scan.Components)
	stubs := report.Stubs(mapping.MissingInCode, framework)
	return jsonResult(stubs)
}
