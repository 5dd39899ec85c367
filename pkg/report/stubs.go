package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gnana997/figbridge/pkg/figma"
	"github.com/gnana997/figbridge/pkg/scanner"
)

// Stub is a generated starter source file for one design component.
type Stub struct {
	FileName string `json:"file_name"`
	Source   string `json:"source"`
}

// Stubs generates one starter file per design component, in input order.
func Stubs(missing []figma.DesignComponent, framework scanner.Framework) []Stub {
	stubs := make([]Stub, 0, len(missing))
	for _, d := range missing {
		stubs = append(stubs, ComponentStub(d, framework))
	}
	return stubs
}

// ComponentStub generates a starter source file for a design component in
// the given framework's conventions. Unknown frameworks get a plain
// JavaScript stub.
func ComponentStub(d figma.DesignComponent, framework scanner.Framework) Stub {
	name := componentIdent(d.Name)

	switch framework {
	case scanner.FrameworkVue:
		return Stub{
			FileName: name + ".vue",
			Source: header(d, "<!-- %s -->\n") + fmt.Sprintf(
				"<template>\n  <div class=%q></div>\n</template>\n\n<script setup lang=\"ts\">\n</script>\n",
				kebabCase(name)),
		}
	case scanner.FrameworkAngular:
		kebab := kebabCase(name)
		return Stub{
			FileName: kebab + ".component.ts",
			Source: header(d, "// %s\n") + fmt.Sprintf(
				"import { Component } from '@angular/core';\n\n"+
					"@Component({\n  selector: 'app-%s',\n  template: '<div></div>',\n})\n"+
					"export class %sComponent {}\n",
				kebab, name),
		}
	case scanner.FrameworkSvelte:
		return Stub{
			FileName: name + ".svelte",
			Source: header(d, "<!-- %s -->\n") + fmt.Sprintf(
				"<script lang=\"ts\">\n</script>\n\n<div class=%q></div>\n",
				kebabCase(name)),
		}
	case scanner.FrameworkReact:
		return Stub{
			FileName: name + ".tsx",
			Source: header(d, "// %s\n") + fmt.Sprintf(
				"export interface %sProps {}\n\n"+
					"export function %s(_props: %sProps) {\n  return null;\n}\n",
				name, name, name),
		}
	default:
		return Stub{
			FileName: name + ".js",
			Source: header(d, "// %s\n") + fmt.Sprintf(
				"export function %s() {\n  const el = document.createElement('div');\n"+
					"  el.className = %q;\n  return el;\n}\n",
				name, kebabCase(name)),
		}
	}
}

// header renders the design description as a leading comment when present.
func header(d figma.DesignComponent, format string) string {
	if d.Description == "" {
		return ""
	}
	return fmt.Sprintf(format, d.Description)
}

// componentIdent derives a PascalCase identifier from a design component
// name, which may contain spaces, slashes, or punctuation.
func componentIdent(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	if b.Len() == 0 {
		return "Component"
	}
	return b.String()
}

// kebabCase converts a PascalCase identifier to kebab-case.
func kebabCase(ident string) string {
	var b strings.Builder
	for i, r := range ident {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
