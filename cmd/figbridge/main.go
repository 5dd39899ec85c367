package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnana997/figbridge/pkg/consistency"
	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/match"
	mcpserver "github.com/gnana997/figbridge/pkg/mcp"
	"github.com/gnana997/figbridge/pkg/mcplog"
	"github.com/gnana997/figbridge/pkg/reconcile"
	"github.com/gnana997/figbridge/pkg/report"
	"github.com/gnana997/figbridge/pkg/scanner"
	"github.com/gnana997/figbridge/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		runServe(args)
	case "compare":
		runCompare(args)
	case "consistency":
		runConsistency(args)
	case "stubs":
		runStubs(args)
	case "version":
		fmt.Printf("figbridge %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: figbridge <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve        Start MCP server on stdin/stdout")
	fmt.Println("  compare      Reconcile a Figma file against a local project")
	fmt.Println("  consistency  Score design/code consistency")
	fmt.Println("  stubs        Generate starter files for missing components")
	fmt.Println("  version      Print version")
	fmt.Println("  help         Show this help message")
	fmt.Println()
	fmt.Println("Flags for compare/consistency/stubs:")
	fmt.Println("  <file>           Figma URL or file key (first positional argument)")
	fmt.Println("  --path DIR       Project root (default: . or .figbridge/config.yaml)")
	fmt.Println("  --framework F    react, vue, angular, svelte, vanilla (default react)")
	fmt.Println("  --strict         AST-backed JSX detection for react")
	fmt.Println("  --json           JSON output instead of markdown")
	fmt.Println("  --tokens LIST    Comma-separated code-side token names (consistency only)")
	fmt.Println("  --out DIR        Write generated stubs into DIR (stubs only)")
	fmt.Println("  --watch          Invalidate the scan cache on file changes (serve only)")
	fmt.Println("  --log PATH       JSONL tool-call log file (serve only)")
	fmt.Println()
	fmt.Println("FIGMA_TOKEN must be set for commands that call the Figma API.")
}

// flagValue returns the value following --name, or "".
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == "--"+name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// hasFlag reports whether --name is present.
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == "--"+name {
			return true
		}
	}
	return false
}

// positional returns the first non-flag argument, skipping flag values.
func positional(args []string) string {
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		if len(arg) > 2 && arg[:2] == "--" {
			if arg != "--strict" && arg != "--json" && arg != "--watch" {
				skip = true
			}
			continue
		}
		return arg
	}
	return ""
}

// splitList splits a comma-separated flag value, dropping empty entries.
// An empty value yields nil, which the analyzer treats as "no code-side
// tokens known".
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func buildClient() *figma.Client {
	token := os.Getenv("FIGMA_TOKEN")
	if token == "" {
		fatalf("FIGMA_TOKEN is not set")
	}
	return figma.NewClient(figma.Config{Token: token})
}

// resolveInputs fetches the design components and scans the project for
// the compare, consistency, and stubs commands.
func resolveInputs(ctx context.Context, args []string) (fileKey string, designs []figma.DesignComponent, scan *scanner.ScanResult, framework scanner.Framework, client *figma.Client) {
	file := positional(args)
	if file == "" {
		fatalf("a Figma URL or file key is required")
	}
	ref, err := figma.ParseFileURL(file)
	if err != nil {
		fatalf("%v", err)
	}

	client = buildClient()
	designs, err = client.FileComponents(ctx, ref.FileKey)
	if err != nil {
		fatalf("%v", err)
	}

	framework = scanner.ParseFramework(resolveFramework(flagValue(args, "framework")))
	cfg := scanner.DefaultScanConfig(framework)
	cfg.StrictReact = hasFlag(args, "strict")

	sc := scanner.NewScanner(nil)
	defer sc.Close()
	scan, err = sc.Scan(resolveProjectPath(flagValue(args, "path")), cfg)
	if err != nil {
		fatalf("%v", err)
	}
	return ref.FileKey, designs, scan, framework, client
}

func newReconciler() *reconcile.Reconciler {
	return reconcile.NewReconciler(match.NewMatcher(4096), nil)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("marshal output: %v", err)
	}
	fmt.Println(string(out))
}

func runCompare(args []string) {
	ctx := context.Background()
	_, designs, scan, _, _ := resolveInputs(ctx, args)

	mapping := newReconciler().Reconcile(designs, scan.Components)
	if hasFlag(args, "json") {
		printJSON(mapping)
		return
	}
	fmt.Print(report.RenderMapping(mapping))
}

func runConsistency(args []string) {
	ctx := context.Background()
	fileKey, designs, scan, _, client := resolveInputs(ctx, args)

	styles, err := client.FileStyles(ctx, fileKey)
	if err != nil {
		fatalf("%v", err)
	}

	mapping := newReconciler().Reconcile(designs, scan.Components)
	rep := consistency.NewAnalyzer(nil).Analyze(mapping, styles, splitList(flagValue(args, "tokens")), consistency.Options{
		CheckComponents: true,
		CheckStyles:     true,
	})

	if hasFlag(args, "json") {
		printJSON(rep)
		return
	}
	fmt.Print(report.RenderConsistency(rep))
}

func runStubs(args []string) {
	ctx := context.Background()
	_, designs, scan, framework, _ := resolveInputs(ctx, args)

	mapping := newReconciler().Reconcile(designs, scan.Components)
	stubs := report.Stubs(mapping.MissingInCode, framework)

	outDir := flagValue(args, "out")
	if outDir == "" {
		printJSON(stubs)
		return
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fatalf("create output directory: %v", err)
	}
	for _, stub := range stubs {
		path := filepath.Join(outDir, stub.FileName)
		if err := os.WriteFile(path, []byte(stub.Source), 0644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func runServe(args []string) {
	logger := util.NewLogger(util.DefaultLoggerConfig())

	toolLog, err := mcplog.NewLogger(resolveToolLogPath(flagValue(args, "log")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tool log disabled: %v\n", err)
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	// Without a token the server still starts; API-backed tools return a
	// configuration error per call.
	var client *figma.Client
	if token := os.Getenv("FIGMA_TOKEN"); token != "" {
		client = figma.NewClient(figma.Config{Token: token, Logger: logger})
	} else {
		logger.Warn("FIGMA_TOKEN not set, API tools will be unavailable")
	}

	sc := scanner.NewScanner(logger)
	defer sc.Close()

	// --watch keeps the scan cache coherent across tool calls by
	// invalidating records as the configured project tree changes.
	if hasFlag(args, "watch") {
		root := resolveProjectPath(flagValue(args, "path"))
		w, err := scanner.NewWatcher(sc, scanner.DefaultWatchOptions(), logger)
		if err != nil {
			logger.Warn("file watcher unavailable", "error", err)
		} else if err := w.Start(root); err != nil {
			logger.Warn("file watcher failed to start", "root", root, "error", err)
		} else {
			defer w.Stop()
		}
	}

	srv := mcpserver.NewServer(client, sc, toolLog, logger)
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
