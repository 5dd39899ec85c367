package scanner

import (
	"log/slog"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/figbridge/pkg/parser"
	"github.com/gnana997/figbridge/pkg/util"
)

// defaultRecordCacheSize bounds the per-file record cache. One entry per
// scanned file; 8K covers typical component libraries several times over.
const defaultRecordCacheSize = 8192

// Scanner runs the discovery and extraction pipeline. It keeps an LRU
// cache of per-file records across runs so that repeated reconciliations
// of the same tree (e.g. successive MCP tool calls) only re-extract files
// that changed. A Watcher can invalidate entries eagerly; entries are also
// verified against file size, mtime, and the scan's framework and
// strictness on every hit.
type Scanner struct {
	pm      *parser.Manager
	records *lru.Cache[string, recordEntry]
	log     *slog.Logger
}

type recordEntry struct {
	framework Framework
	strict    bool
	comp      *CodeComponent // nil: file is known not to be a component
	size      int64
	modTime   time.Time
}

// NewScanner creates a Scanner with all required dependencies.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	records, _ := lru.New[string, recordEntry](defaultRecordCacheSize)
	return &Scanner{
		pm:      parser.NewManager(logger),
		records: records,
		log:     logger,
	}
}

// Scan discovers and extracts code components under rootDir. A missing or
// empty root yields an empty result, not an error; callers that need to
// distinguish the two must inspect counts.
func (s *Scanner) Scan(rootDir string, cfg ScanConfig) (*ScanResult, error) {
	totalStart := time.Now()
	stats := ScanStats{}

	discoveryStart := time.Now()
	files, err := DiscoverFiles(rootDir, cfg)
	if err != nil {
		return nil, err
	}
	stats.FilesDiscovered = len(files)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	s.log.Debug("discovery complete", "files", len(files), "ms", stats.DiscoveryTimeMs)

	if len(files) == 0 {
		stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
		return &ScanResult{Stats: stats}, nil
	}

	// Serve cached records where valid; extract the rest.
	extractionStart := time.Now()
	components := make([]CodeComponent, 0, len(files))
	var toExtract []string
	cached := make(map[string]*CodeComponent, len(files))

	for _, f := range files {
		if entry, ok := s.cachedRecord(f, cfg); ok {
			stats.CacheHits++
			cached[f] = entry
			continue
		}
		toExtract = append(toExtract, f)
	}

	fresh := make(map[string]*CodeComponent, len(toExtract))
	if len(toExtract) > 0 {
		fc := util.NewFileCache(&util.FileCacheConfig{Logger: s.log})
		extracted, skipped := extractAll(toExtract, cfg, fc, s.pm, s.log)
		_ = fc.Close()
		stats.FilesSkipped = skipped

		for i := range extracted {
			fresh[extracted[i].Path] = &extracted[i]
		}
		for _, f := range toExtract {
			s.storeRecord(f, cfg, fresh[f])
		}
	}

	// Reassemble in discovery order.
	for _, f := range files {
		if comp, ok := cached[f]; ok && comp != nil {
			components = append(components, *comp)
			continue
		}
		if comp, ok := fresh[f]; ok {
			components = append(components, *comp)
		}
	}

	stats.Components = len(components)
	stats.ExtractionTimeMs = time.Since(extractionStart).Milliseconds()
	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()

	s.log.Info("scan complete",
		"components", stats.Components,
		"files", stats.FilesDiscovered,
		"cache_hits", stats.CacheHits,
		"ms", stats.TotalTimeMs)

	return &ScanResult{Components: components, Stats: stats}, nil
}

// cachedRecord returns the cached component for a path if the entry is
// still valid for this scan's framework and strictness and the file has
// not changed on disk. Strictness is part of the validity check: relaxed
// and strict runs disagree on files without JSX, so a record produced by
// one must not serve the other.
// The component pointer is nil for cached "not a component" results.
func (s *Scanner) cachedRecord(path string, cfg ScanConfig) (*CodeComponent, bool) {
	entry, ok := s.records.Get(path)
	if !ok || entry.framework != cfg.Framework || entry.strict != cfg.StrictReact {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() != entry.size || !info.ModTime().Equal(entry.modTime) {
		s.records.Remove(path)
		return nil, false
	}
	return entry.comp, true
}

func (s *Scanner) storeRecord(path string, cfg ScanConfig, comp *CodeComponent) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	s.records.Add(path, recordEntry{
		framework: cfg.Framework,
		strict:    cfg.StrictReact,
		comp:      comp,
		size:      info.Size(),
		modTime:   info.ModTime(),
	})
}

// Invalidate drops the cached record for a path. Called by the Watcher.
func (s *Scanner) Invalidate(path string) {
	s.records.Remove(path)
}

// Close releases parser resources.
func (s *Scanner) Close() {
	s.pm.Close()
}
