// Package scanner discovers component source files under a project root
// and extracts code-component records from them using per-framework
// heuristics.
package scanner

import "strings"

// Framework identifies the UI framework whose detection rules apply to a
// scan.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkAngular Framework = "angular"
	FrameworkSvelte  Framework = "svelte"
	FrameworkVanilla Framework = "vanilla"
)

// frameworkExtensions maps each framework to its recognized file suffixes.
// Unknown frameworks fall back to plain JS/TS.
var frameworkExtensions = map[Framework][]string{
	FrameworkReact:   {".jsx", ".tsx", ".js", ".ts"},
	FrameworkVue:     {".vue", ".js", ".ts"},
	FrameworkAngular: {".component.ts", ".ts"},
	FrameworkSvelte:  {".svelte", ".js", ".ts"},
	FrameworkVanilla: {".js", ".ts"},
}

var fallbackExtensions = []string{".js", ".ts"}

// Extensions returns the file suffixes scanned for a framework.
func (f Framework) Extensions() []string {
	if exts, ok := frameworkExtensions[f]; ok {
		return exts
	}
	return fallbackExtensions
}

// ParseFramework normalizes a framework tag to lowercase. Unrecognized
// tags are kept as-is; discovery applies the JS/TS fallback for them.
func ParseFramework(s string) Framework {
	return Framework(strings.ToLower(strings.TrimSpace(s)))
}

// CodeComponent is one component discovered in the source tree. Records
// are created once per matching file and never mutated afterwards.
type CodeComponent struct {
	// Name is the file's base name with its extension stripped.
	Name string `json:"name"`
	// Path is the absolute file location, unique within a scan.
	Path string `json:"path"`
	// Framework the detection rules that produced this record.
	Framework Framework `json:"framework"`
	// SizeBytes is the byte length of the source text.
	SizeBytes int `json:"size_bytes"`
	// Exports lists captured export identifiers in source order.
	// Duplicates are kept; consumers rely on positional order for display.
	Exports []string `json:"exports"`
	// Props lists inferred property names. Only populated for frameworks
	// with extraction rules (currently react).
	Props []string `json:"props"`
}

// ScanConfig configures a scan run.
type ScanConfig struct {
	// Framework selects detection rules and file extensions.
	Framework Framework
	// Exclude glob patterns, relative to the scan root.
	Exclude []string
	// StrictReact enables the tree-sitter detector for react files:
	// a candidate must contain JSX inside a function to count.
	StrictReact bool
	// Workers overrides the extraction pool size (0 = auto).
	Workers int
}

// DefaultScanConfig returns the default configuration with the usual
// dependency and build directories excluded.
func DefaultScanConfig(framework Framework) ScanConfig {
	return ScanConfig{
		Framework: framework,
		Exclude: []string{
			"node_modules/**",
			".git/**",
			"dist/**",
			"build/**",
			".next/**",
			"coverage/**",
			"**/*.test.*",
			"**/*.spec.*",
			"**/*.stories.*",
		},
	}
}

// ScanStats tracks timing and counts for one scan run.
type ScanStats struct {
	FilesDiscovered  int
	FilesSkipped     int
	Components       int
	CacheHits        int
	DiscoveryTimeMs  int64
	ExtractionTimeMs int64
	TotalTimeMs      int64
}

// ScanResult is the ordered output of a scan: one record per detected
// component file, in discovery (scan) order.
type ScanResult struct {
	Components []CodeComponent
	Stats      ScanStats
}
