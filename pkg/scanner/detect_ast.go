package scanner

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/gnana997/figbridge/pkg/parser"
)

// strictReactDetect confirms a regex-detected react candidate by parsing
// the file and requiring an actual JSX node somewhere in the tree. It is
// only consulted when ScanConfig.StrictReact is set; parse failures fall
// back to accepting the regex result so the strict mode never loses files
// the heuristic would have kept on unparseable dialects.
func strictReactDetect(pm *parser.Manager, path string, source []byte) bool {
	tree, err := pm.ParseFile(source, path)
	if err != nil {
		// Unknown extension or grammar failure: keep the regex result.
		return true
	}
	defer tree.Close()

	return containsJSX(tree.RootNode())
}

func containsJSX(node *ts.Node) bool {
	switch node.Kind() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		if containsJSX(node.Child(i)) {
			return true
		}
	}
	return false
}
