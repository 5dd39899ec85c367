package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileCache provides read-only file access backed by memory-mapped files,
// with a plain os.ReadFile fallback when mmap fails. It is safe for
// concurrent use; reads do not block each other.
type FileCache interface {
	// Get returns the file's bytes, mapping it on first access.
	Get(filePath string) ([]byte, error)
	// Size returns the number of currently cached files.
	Size() int
	// Close unmaps all files and releases file descriptors.
	Close() error
}

// FileCacheConfig bounds cache growth. Zero values mean unlimited.
type FileCacheConfig struct {
	// MaxFiles caps the number of cached files. Get returns an error
	// once the cap is reached.
	MaxFiles int
	// Logger for mmap fallback warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultFileCacheConfig covers component libraries up to ~10K files.
func DefaultFileCacheConfig() *FileCacheConfig {
	return &FileCacheConfig{MaxFiles: 10000}
}

type mappedEntry struct {
	data mmap.MMap
	file *os.File // nil for fallback entries
}

type fileCache struct {
	config *FileCacheConfig
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*mappedEntry
}

// NewFileCache creates a FileCache. A nil config uses defaults.
func NewFileCache(config *FileCacheConfig) FileCache {
	if config == nil {
		config = DefaultFileCacheConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &fileCache{
		config:  config,
		logger:  logger,
		entries: make(map[string]*mappedEntry),
	}
}

func (fc *fileCache) Get(filePath string) ([]byte, error) {
	fc.mu.RLock()
	if e, ok := fc.entries[filePath]; ok {
		fc.mu.RUnlock()
		return e.data, nil
	}
	fc.mu.RUnlock()

	fc.mu.Lock()
	defer fc.mu.Unlock()

	// Another goroutine may have loaded it while we waited for the lock.
	if e, ok := fc.entries[filePath]; ok {
		return e.data, nil
	}

	if fc.config.MaxFiles > 0 && len(fc.entries) >= fc.config.MaxFiles {
		return nil, fmt.Errorf("file cache limit reached: %d files", fc.config.MaxFiles)
	}

	e, err := fc.load(filePath)
	if err != nil {
		return nil, err
	}
	fc.entries[filePath] = e
	return e.data, nil
}

func (fc *fileCache) load(filePath string) (*mappedEntry, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", filePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %q: %w", filePath, err)
	}

	// Zero-byte files cannot be mapped.
	if stat.Size() == 0 {
		f.Close()
		return &mappedEntry{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		fc.logger.Warn("mmap failed, using fallback read",
			"file", filePath, "error", err)
		f.Close()
		raw, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return nil, fmt.Errorf("read %q after mmap failure: %w", filePath, readErr)
		}
		return &mappedEntry{data: mmap.MMap(raw)}, nil
	}

	return &mappedEntry{data: data, file: f}, nil
}

func (fc *fileCache) Size() int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return len(fc.entries)
}

func (fc *fileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var errs []error
	for path, e := range fc.entries {
		if e.file != nil {
			if err := e.data.Unmap(); err != nil {
				errs = append(errs, fmt.Errorf("unmap %q: %w", path, err))
			}
			if err := e.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %q: %w", path, err))
			}
		}
	}
	fc.entries = make(map[string]*mappedEntry)

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}
