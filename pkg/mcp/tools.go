package mcp

import "github.com/mark3labs/mcp-go/mcp"

func parseFigmaURLTool() mcp.Tool {
	return mcp.NewTool("parse_figma_url",
		mcp.WithDescription("Extract the file key and optional node id from a Figma file or design URL."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Figma URL (/file/ or /design/ form) or a bare file key."),
		),
	)
}

func getDesignComponentsTool() mcp.Tool {
	return mcp.NewTool("get_design_components",
		mcp.WithDescription("Fetch the published components of a Figma file, in API order."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Figma URL or file key."),
		),
		mcp.WithBoolean("include_styles",
			mcp.Description("Also fetch the file's published styles."),
		),
	)
}

func compareComponentsTool() mcp.Tool {
	return mcp.NewTool("compare_components",
		mcp.WithDescription("Reconcile a Figma file's components against a local project: exact matches, "+
			"similar matches with suggestions, and the missing sets on both sides."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Figma URL or file key."),
		),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Root directory of the local source tree."),
		),
		mcp.WithString("framework",
			mcp.Description("Target framework: react, vue, angular, svelte, or vanilla. Default react."),
		),
		mcp.WithBoolean("strict_react",
			mcp.Description("Use AST-backed JSX detection instead of the text heuristics (react only)."),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or markdown."),
			mcp.Enum("json", "markdown"),
		),
	)
}

func checkConsistencyTool() mcp.Tool {
	return mcp.NewTool("check_consistency",
		mcp.WithDescription("Score design/code consistency for a Figma file and a local project, "+
			"with per-issue findings and recommendations."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Figma URL or file key."),
		),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Root directory of the local source tree."),
		),
		mcp.WithString("framework",
			mcp.Description("Target framework: react, vue, angular, svelte, or vanilla. Default react."),
		),
		mcp.WithBoolean("check_components",
			mcp.Description("Run the component sub-analysis. Default true."),
		),
		mcp.WithBoolean("check_styles",
			mcp.Description("Run the style sub-analysis. Default true."),
		),
		mcp.WithArray("tokens",
			mcp.Description("Code-side design token names to compare styles against. "+
				"Without tokens the style sub-analysis reports styles as unjudged-consistent."),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or markdown."),
			mcp.Enum("json", "markdown"),
		),
	)
}

func generateComponentStubsTool() mcp.Tool {
	return mcp.NewTool("generate_component_stubs",
		mcp.WithDescription("Generate starter source files for design components that have no code counterpart."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Figma URL or file key."),
		),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Root directory of the local source tree."),
		),
		mcp.WithString("framework",
			mcp.Description("Target framework for the generated stubs. Default react."),
		),
	)
}
