package value

import "sort"

// Dictionary maps fully-qualified names to Callables. It is seeded with the
// Builtin table and mutated only by `word` definitions, first-occurrence
// `var` allocation, and `import`.
type Dictionary struct {
	entries map[string]Callable
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Callable)}
}

// Get looks up a qualified name.
func (d *Dictionary) Get(name string) (Callable, bool) {
	c, ok := d.entries[name]
	return c, ok
}

// Set binds a qualified name to a Callable, overwriting any prior binding —
// this is how re-`word`-ing a name or re-running an import refreshes it.
func (d *Dictionary) Set(name string, c Callable) {
	d.entries[name] = c
}

// Has reports whether name is bound.
func (d *Dictionary) Has(name string) bool {
	_, ok := d.entries[name]
	return ok
}

// Clone returns a Dictionary with an independent copy of the same bindings
// — a fresh dictionary seeded with Builtins, used before parsing an
// imported file.
func (d *Dictionary) Clone() *Dictionary {
	out := NewDictionary()
	for k, v := range d.entries {
		out.entries[k] = v
	}
	return out
}

// Names returns every bound name, unsorted (callers needing a stable order,
// like `bok words`, sort separately so they can choose natural-sort).
func (d *Dictionary) Names() []string {
	names := make([]string, 0, len(d.entries))
	for k := range d.entries {
		names = append(names, k)
	}
	return names
}

// SortedNames returns every bound name in plain lexical order.
func (d *Dictionary) SortedNames() []string {
	names := d.Names()
	sort.Strings(names)
	return names
}

// Diff returns the names present in d but absent from base — the set of
// newly defined names re-exported from an imported file's own dictionary
// against the Builtins it was seeded with.
func (d *Dictionary) Diff(base *Dictionary) []string {
	var out []string
	for name := range d.entries {
		if !base.Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
