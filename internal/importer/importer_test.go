package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/importer"
)

func TestImportResolvesFromLibraryPath(t *testing.T) {
	dir := t.TempDir()
	libFile := filepath.Join(dir, "greet.bok")
	require.NoError(t, os.WriteFile(libFile, []byte(`(hello d"say hello" "hi" println)`), 0o644))

	imp := importer.New(dir)
	dict := builtins.New(os.Stdout, nil)

	require.NoError(t, imp.Import("greet", dict))

	_, ok := dict.Get("greet.hello")
	assert.True(t, ok)
	_, ok = dict.Get("hello")
	assert.False(t, ok, "unqualified name must not leak into the importing dictionary")
}

func TestImportMissingFileErrors(t *testing.T) {
	imp := importer.New(t.TempDir())
	dict := builtins.New(os.Stdout, nil)
	err := imp.Import("does-not-exist", dict)
	require.Error(t, err)
}

func TestImportIsNotTransitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.bok"), []byte(`(answer d"" 42)`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrapper.bok"), []byte(`import "base" (double d"" base.answer 2 *)`), 0o644))

	imp := importer.New(dir)
	dict := builtins.New(os.Stdout, nil)

	require.NoError(t, imp.Import("wrapper", dict))

	_, ok := dict.Get("wrapper.double")
	assert.True(t, ok)
	_, ok = dict.Get("wrapper.base.answer")
	assert.False(t, ok, "a transitive import's definitions must not cross a second boundary")
	_, ok = dict.Get("base.answer")
	assert.False(t, ok)
}
