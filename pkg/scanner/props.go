package scanner

import "regexp"

var (
	// A type or interface whose name ends in "Props", capturing the body
	// up to the first closing brace. Nested object types truncate the
	// body; that limitation is inherent to the heuristic.
	rePropsDecl = regexp.MustCompile(`(?s)(?:interface|type)\s+[A-Za-z0-9_$]*Props\b[^{]*\{(.*?)\}`)

	// Property-name tokens of the form `name:` or `name?:`.
	rePropToken = regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)\s*\??:`)
)

// extractProps infers property names from source text. Extraction rules
// only exist for react (Props-suffixed interface/type bodies); every other
// framework returns nil. That gap is intentional: filling it would need
// per-framework prop models, not another regex.
func extractProps(text string, framework Framework) []string {
	if framework != FrameworkReact {
		return nil
	}

	decl := rePropsDecl.FindStringSubmatch(text)
	if decl == nil {
		return nil
	}

	tokens := rePropToken.FindAllStringSubmatch(decl[1], -1)
	if len(tokens) == 0 {
		return nil
	}

	props := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		props = append(props, tok[1])
	}
	return props
}
