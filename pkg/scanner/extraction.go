package scanner

import (
	"log/slog"
	"sync"

	"github.com/gnana997/figbridge/pkg/parser"
	"github.com/gnana997/figbridge/pkg/util"
)

// extractAll runs ExtractFile over files with a worker pool. Results come
// back in discovery order regardless of worker scheduling: the reconciler's
// exact-match tie-break is defined in scan order, so ordering is part of
// the contract, not cosmetics.
//
// Unreadable files and non-matching files both contribute nothing; only
// read failures are logged.
func extractAll(
	files []string,
	cfg ScanConfig,
	fc util.FileCache,
	pm *parser.Manager,
	logger *slog.Logger,
) ([]CodeComponent, int) {
	if len(files) == 0 {
		return nil, 0
	}

	numWorkers := util.GetOptimalPoolSizeWithOverride(cfg.Workers)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job, numWorkers*2)

	// Indexed result slots keep discovery order; nil means skipped.
	slots := make([]*CodeComponent, len(files))
	var skippedMu sync.Mutex
	skipped := 0

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				source, err := fc.Get(j.path)
				if err != nil {
					logger.Warn("skipping unreadable file", "file", j.path, "error", err)
					skippedMu.Lock()
					skipped++
					skippedMu.Unlock()
					continue
				}

				comp := ExtractFile(j.path, source, cfg.Framework)
				if comp != nil && cfg.StrictReact && cfg.Framework == FrameworkReact {
					if !strictReactDetect(pm, j.path, source) {
						comp = nil
					}
				}
				if comp == nil {
					skippedMu.Lock()
					skipped++
					skippedMu.Unlock()
					continue
				}
				slots[j.index] = comp
			}
		}()
	}

	for i, f := range files {
		jobs <- job{index: i, path: f}
	}
	close(jobs)
	wg.Wait()

	components := make([]CodeComponent, 0, len(files))
	for _, c := range slots {
		if c != nil {
			components = append(components, *c)
		}
	}
	return components, skipped
}
