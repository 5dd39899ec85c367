package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Detection is heuristic pattern matching against raw source text, not
// parsing. A file that matches no pattern is silently skipped; false
// negatives on unconventional code styles are expected.

var (
	// Exported function/const/class declarations, shared by react
	// detection and export collection.
	reExport = regexp.MustCompile(`export\s+(?:default\s+)?(?:async\s+)?(?:function|const|class)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	reBareFunction = regexp.MustCompile(`(?m)^\s*(?:async\s+)?function\s+[A-Za-z_$][A-Za-z0-9_$]*\s*\(`)
	reBareClass    = regexp.MustCompile(`(?m)^\s*class\s+[A-Za-z_$][A-Za-z0-9_$]*`)

	reVueTemplate      = regexp.MustCompile(`<template[\s>]`)
	reVueDefaultExport = regexp.MustCompile(`export\s+default\s*\{`)

	reAngularComponent = regexp.MustCompile(`@Component\s*\(`)

	reSvelteScript = regexp.MustCompile(`<script[\s>]`)
	reSvelteStyle  = regexp.MustCompile(`<style[\s>]`)
	reHTMLTag      = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9-]*[\s>/]`)
)

// detectorFor returns the pattern-existence test for a framework.
// Unknown frameworks use the vanilla rules, mirroring the JS/TS extension
// fallback in discovery.
func detectorFor(framework Framework) func(text string) bool {
	switch framework {
	case FrameworkReact:
		return func(text string) bool {
			return reExport.MatchString(text) || reBareFunction.MatchString(text)
		}
	case FrameworkVue:
		return func(text string) bool {
			return reVueTemplate.MatchString(text) || reVueDefaultExport.MatchString(text)
		}
	case FrameworkAngular:
		return func(text string) bool {
			return reAngularComponent.MatchString(text)
		}
	case FrameworkSvelte:
		return func(text string) bool {
			return reSvelteScript.MatchString(text) ||
				reSvelteStyle.MatchString(text) ||
				reHTMLTag.MatchString(text)
		}
	default:
		return func(text string) bool {
			return reBareClass.MatchString(text) || reBareFunction.MatchString(text)
		}
	}
}

// collectExports returns every identifier captured by the export pattern,
// in source order. Duplicates are kept deliberately: consumers use the
// list positionally for display only.
func collectExports(text string) []string {
	matches := reExport.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	exports := make([]string, 0, len(matches))
	for _, m := range matches {
		exports = append(exports, m[1])
	}
	return exports
}

// componentName derives the record name from the file's base name with
// the framework extension stripped. Compound extensions like
// ".component.ts" are stripped whole.
func componentName(path string, framework Framework) string {
	base := filepath.Base(path)
	for _, ext := range framework.Extensions() {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExtractFile decides whether source defines a component for the given
// framework and builds its record. Returns nil when the detection pattern
// does not match; that is a heuristic filter, not an error.
func ExtractFile(path string, source []byte, framework Framework) *CodeComponent {
	text := string(source)
	if !detectorFor(framework)(text) {
		return nil
	}

	return &CodeComponent{
		Name:      componentName(path, framework),
		Path:      path,
		Framework: framework,
		SizeBytes: len(source),
		Exports:   collectExports(text),
		Props:     extractProps(text, framework),
	}
}
