package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_GetAndReuse(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "button.tsx")
	require.NoError(t, os.WriteFile(path, []byte("export function Button() {}"), 0644))

	fc := NewFileCache(nil)
	defer fc.Close()

	data, err := fc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "export function Button() {}", string(data))
	assert.Equal(t, 1, fc.Size())

	// Second access serves the cached mapping.
	again, err := fc.Get(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
	assert.Equal(t, 1, fc.Size())
}

func TestFileCache_EmptyFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "empty.ts")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	fc := NewFileCache(nil)
	defer fc.Close()

	data, err := fc.Get(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileCache_MissingFile(t *testing.T) {
	fc := NewFileCache(nil)
	defer fc.Close()

	_, err := fc.Get(filepath.Join(t.TempDir(), "nope.ts"))
	assert.Error(t, err)
}

func TestFileCache_MaxFilesLimit(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.ts")
	b := filepath.Join(tmp, "b.ts")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0644))

	fc := NewFileCache(&FileCacheConfig{MaxFiles: 1})
	defer fc.Close()

	_, err := fc.Get(a)
	require.NoError(t, err)
	_, err = fc.Get(b)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit reached")
}
