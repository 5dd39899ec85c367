package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagValue(t *testing.T) {
	args := []string{"key123", "--path", "/tmp/proj", "--framework", "vue"}
	assert.Equal(t, "/tmp/proj", flagValue(args, "path"))
	assert.Equal(t, "vue", flagValue(args, "framework"))
	assert.Equal(t, "", flagValue(args, "out"))
}

func TestHasFlag(t *testing.T) {
	args := []string{"key123", "--strict", "--path", "x"}
	assert.True(t, hasFlag(args, "strict"))
	assert.False(t, hasFlag(args, "json"))
}

func TestPositional(t *testing.T) {
	assert.Equal(t, "key123", positional([]string{"key123", "--path", "x"}))
	assert.Equal(t, "key123", positional([]string{"--path", "x", "key123"}))
	assert.Equal(t, "key123", positional([]string{"--strict", "key123"}))
	assert.Equal(t, "", positional([]string{"--path", "x"}))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"colors-primary"}, splitList("colors-primary"))
	assert.Equal(t, []string{"colors-primary", "text-body"}, splitList("colors-primary, text-body"))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b,"))
}

func TestLoadProjectConfig_Missing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadProjectConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestResolveChain(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.MkdirAll(".figbridge", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".figbridge", "config.yaml"), []byte(
		"version: \"1\"\nframework: svelte\nproject_path: ./ui\n"), 0644))

	// Flag wins over the config file.
	assert.Equal(t, "vue", resolveFramework("vue"))
	// Config file wins over the default.
	assert.Equal(t, "svelte", resolveFramework(""))
	assert.Equal(t, "./ui", resolveProjectPath(""))
	// Default when the config file has no value.
	assert.Equal(t, "", resolveToolLogPath(""))
}
