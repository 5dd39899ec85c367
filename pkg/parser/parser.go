// Package parser manages tree-sitter parsers for the JavaScript and
// TypeScript grammars used by the strict component detector.
package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

type grammarKey struct {
	lang  Language
	isTSX bool
}

// Manager owns one tree-sitter parser per grammar variant, created lazily.
// Parse calls are serialized per grammar; the scanner's extraction pool
// parallelizes across files, not within a parse, so a single parser per
// grammar is sufficient.
//
// Callers own returned Trees and must call tree.Close().
type Manager struct {
	mu      sync.Mutex
	parsers map[grammarKey]*ts.Parser
	logger  *slog.Logger
}

// NewManager creates a Manager. Close must be called to free parser
// resources.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		parsers: make(map[grammarKey]*ts.Parser),
		logger:  logger,
	}
}

// Parse parses source with the grammar for lang. isTSX selects the TSX
// grammar variant and is ignored for JavaScript. The returned tree must be
// closed by the caller. Trees with syntax errors are still returned;
// partial trees are useful for heuristic detection.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("cannot parse unknown language")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := grammarKey{lang: lang, isTSX: isTSX}
	p, ok := m.parsers[key]
	if !ok {
		ptr, err := grammarPointer(lang, isTSX)
		if err != nil {
			return nil, err
		}
		p = ts.NewParser()
		if p == nil {
			return nil, fmt.Errorf("failed to create parser")
		}
		if err := p.SetLanguage(ts.NewLanguage(ptr)); err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to set language %s: %w", lang, err)
		}
		m.parsers[key] = p
	}

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}
	if tree.RootNode().HasError() {
		m.logger.Debug("parse tree contains errors", "language", lang.String())
	}
	return tree, nil
}

// ParseFile parses source, detecting the grammar from the file path.
func (m *Manager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	return m.Parse(source, lang, IsTSXFile(filePath))
}

// Close frees all parsers. The Manager cannot be used afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parsers {
		p.Close()
	}
	m.parsers = make(map[grammarKey]*ts.Parser)
}

func grammarPointer(lang Language, isTSX bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang.String())
	}
}
