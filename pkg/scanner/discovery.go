package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles walks rootDir recursively and returns the absolute paths of
// files whose name ends in one of the framework's extensions, in a
// deterministic order (directory entries are visited sorted by name).
//
// Failure policy: a missing or unreadable root yields an empty slice, not
// an error; unreadable subdirectories are skipped and traversal continues
// with their siblings. Symlinked directories are followed, with a visited
// set of canonical paths so cyclic links terminate.
func DiscoverFiles(rootDir string, cfg ScanConfig) ([]string, error) {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	w := &walker{
		root:    absRoot,
		exts:    cfg.Framework.Extensions(),
		exclude: cfg.Exclude,
		visited: make(map[string]bool),
	}
	w.walk(absRoot)
	return w.files, nil
}

type walker struct {
	root    string
	exts    []string
	exclude []string
	visited map[string]bool
	files   []string
}

func (w *walker) walk(dir string) {
	// Guard against symlink cycles: never descend into a real path twice.
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if w.visited[real] {
		return
	}
	w.visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return // permission error or vanished directory: skip, keep going
	}
	// os.ReadDir returns entries sorted by filename, which makes the
	// traversal order reproducible across runs.

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.excluded(path) {
			continue
		}

		if entry.IsDir() {
			w.walk(path)
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				continue
			}
			if target.IsDir() {
				w.walk(path)
				continue
			}
		}

		if hasAnySuffix(entry.Name(), w.exts) {
			w.files = append(w.files, path)
		}
	}
}

// excluded matches the root-relative path against the exclude globs.
// A "dir/**" pattern also prunes the directory itself so the walker never
// descends into it.
func (w *walker) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.exclude {
		if matched, _ := doublestar.PathMatch(pattern, rel); matched {
			return true
		}
		if trimmed, ok := strings.CutSuffix(pattern, "/**"); ok {
			if matched, _ := doublestar.PathMatch(trimmed, rel); matched {
				return true
			}
		}
	}
	return false
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
