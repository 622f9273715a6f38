// Package importer implements parser.Importer: resolving `import "name"`
// against the filesystem, parsing and lowering the named file against its
// own fresh dictionary, and re-exporting only its newly defined names back
// into the importing file's dictionary under a name.-prefixed namespace.
package importer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/parser"
	"github.com/boklang/bok/internal/source"
	"github.com/boklang/bok/internal/value"
)

// Importer locates and loads `.bok` files for the `import` statement.
// LibraryPath is searched after the current working directory when a file
// isn't found there.
type Importer struct {
	LibraryPath []string
}

// New returns an Importer searching the given library directories, in
// order, after the working directory.
func New(libraryPath ...string) *Importer {
	return &Importer{LibraryPath: libraryPath}
}

// Import loads name.bok (the .bok suffix is added if absent), parses and
// fully lowers it against a dictionary seeded only with Builtins, and
// injects every name the file newly defines into dict, prefixed by the
// file's base name and a dot. It is not transitive: only the imported
// file's own top-level definitions cross the boundary.
func (imp *Importer) Import(name string, dict *value.Dictionary) error {
	path, err := imp.resolve(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return value.ArgumentError{Message: "import: " + err.Error()}
	}
	defer f.Close()

	base := builtins.New(os.Stdout, nil)
	sub := base.Clone()

	var in source.Input
	in.Push(source.NamedReader{Reader: f, Name_: path})
	lex := lexer.New(&in)
	p := parser.New(lex)

	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}
	parser.ResolveScopes(prog)

	if _, err := parser.Lower(prog, sub, imp); err != nil {
		return err
	}

	prefix := strings.TrimSuffix(filepath.Base(path), ".bok") + "."
	// Names that this file's own imports injected into sub carry those
	// imports' prefixes; they are not re-exported.
	var nested []string
	for _, stmt := range prog.Statements {
		if node, ok := stmt.(*parser.ImportNode); ok {
			nested = append(nested, strings.TrimSuffix(filepath.Base(node.Path), ".bok")+".")
		}
	}
names:
	for _, n := range sub.Diff(base) {
		for _, p := range nested {
			if strings.HasPrefix(n, p) {
				continue names
			}
		}
		c, _ := sub.Get(n)
		dict.Set(prefix+n, c)
	}
	return nil
}

func (imp *Importer) resolve(name string) (string, error) {
	if !strings.HasSuffix(name, ".bok") {
		name += ".bok"
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		return "", value.ArgumentError{Message: "import: no such file: " + name}
	}
	candidates := append([]string{"."}, imp.LibraryPath...)
	for _, dir := range candidates {
		full := filepath.Join(dir, name)
		if _, err := os.Stat(full); err == nil {
			return full, nil
		}
	}
	return "", value.ArgumentError{Message: "import: " + name + " not found in working directory or library path"}
}
