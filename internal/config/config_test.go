package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.LibraryPath)
	assert.Equal(t, 0, cfg.MemLimit)
	assert.False(t, cfg.Trace)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "bok.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library_path: /opt/bok/lib\ntrace: true\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/opt/bok/lib", cfg.LibraryPath)
	assert.True(t, cfg.Trace)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "bok.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library_path: /opt/bok/lib\n"), 0o644))

	t.Setenv("BOK_LIBRARY_PATH", "/env/lib")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/lib", cfg.LibraryPath)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mem_limit: 1024\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MemLimit)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
