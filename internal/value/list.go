package value

import "strings"

// List is the mutable, ordered sequence variant. It is held behind a
// pointer so that mutation (append/extend/prepend/assign) is observable
// through every shared reference — two names bound to the same *List see
// each other's writes, exactly like a Python list.
//
// A Quotation is not a distinct Go type: it is simply a *List that happens
// to contain one or more Callable elements, discovered dynamically by
// Stack.CallQuote when it iterates.
type List struct {
	Items []Value
}

// NewList builds a *List from the given items.
func NewList(items ...Value) *List { return &List{Items: items} }

func (l *List) Repr() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Repr())
	}
	b.WriteByte(']')
	return b.String()
}

// IsQuotation reports whether this list contains at least one Callable
// element — the structural test used instead of a sealed quotation type.
func (l *List) IsQuotation() bool {
	for _, v := range l.Items {
		if _, ok := v.(Callable); ok {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy whose Items slice is independent (so
// appending to the clone never aliases the original), matching the copy
// semantics list().
func (l *List) Clone() *List {
	items := make([]Value, len(l.Items))
	copy(items, l.Items)
	return &List{Items: items}
}

// Tuple is the immutable sequence variant.
type Tuple []Value

func (t Tuple) Repr() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Repr())
	}
	if len(t) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// Set is the unordered-collection variant. Membership is keyed by Repr
// (bok values are compared structurally, see Equal), with insertion order
// retained only to keep iteration and printing deterministic.
type Set struct {
	order []Value
	index map[string]int
}

// NewSet builds a Set from the given items, de-duplicating by Repr.
func NewSet(items ...Value) *Set {
	s := &Set{index: make(map[string]int, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v if not already present, returning whether it was added.
func (s *Set) Add(v Value) bool {
	key := v.Repr()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains reports set membership.
func (s *Set) Contains(v Value) bool {
	_, ok := s.index[v.Repr()]
	return ok
}

// Len returns the element count.
func (s *Set) Len() int { return len(s.order) }

// Items returns the elements in insertion order.
func (s *Set) Items() []Value { return s.order }

func (s *Set) Repr() string {
	if len(s.order) == 0 {
		return "set()"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Repr())
	}
	b.WriteByte('}')
	return b.String()
}

// Mapping is the key→value variant, insertion-ordered like a Python dict.
type Mapping struct {
	keys   []Value
	values map[string]Value
	lookup map[string]Value // repr(key) -> original key Value
}

// NewMapping builds an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value), lookup: make(map[string]Value)}
}

// Set assigns key -> val, appending key to iteration order on first write.
func (m *Mapping) Set(key, val Value) {
	k := key.Repr()
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, key)
		m.lookup[k] = key
	}
	m.values[k] = val
}

// Get looks up a key, reporting whether it was present.
func (m *Mapping) Get(key Value) (Value, bool) {
	v, ok := m.values[key.Repr()]
	return v, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []Value { return m.keys }

func (m *Mapping) Repr() string {
	if len(m.keys) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.Repr())
		b.WriteString(": ")
		b.WriteString(m.values[k.Repr()].Repr())
	}
	b.WriteByte('}')
	return b.String()
}

// Range is the `range` builtin's result: a lazily-iterable integer sequence.
type Range struct {
	Start, Stop, Step int64
}

func (r Range) Repr() string {
	return "range(" + Int(r.Start).Repr() + ", " + Int(r.Stop).Repr() + ", " + Int(r.Step).Repr() + ")"
}

// Len returns how many integers the range produces.
func (r Range) Len() int {
	if r.Step == 0 {
		return 0
	}
	if r.Step > 0 {
		if r.Stop <= r.Start {
			return 0
		}
		return int((r.Stop - r.Start + r.Step - 1) / r.Step)
	}
	if r.Stop >= r.Start {
		return 0
	}
	return int((r.Start - r.Stop - r.Step - 1) / -r.Step)
}

// Values materializes the range as a slice of Int values, the form every
// combinator that walks an iterable (map/filter/fold/foreach) consumes.
func (r Range) Values() []Value {
	n := r.Len()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = Int(r.Start + int64(i)*r.Step)
	}
	return out
}

// Slice is the `slice` builtin's result, a Python-style slice(start, stop,
// step) object used by `get`/`assign` for sub-range indexing.
type Slice struct {
	Start, Stop, Step *int64
}

func (s Slice) Repr() string {
	fmtPart := func(p *int64) string {
		if p == nil {
			return "None"
		}
		return Int(*p).Repr()
	}
	return "slice(" + fmtPart(s.Start) + ", " + fmtPart(s.Stop) + ", " + fmtPart(s.Step) + ")"
}

// Iterable returns the elements of a Value that can be walked by
// map/filter/fold/foreach/range/sum/etc, and whether v supports iteration
// at all — matching the breadth of Python's Iterable ABC as used by
// bok/stack.py's range_ and the combinator table.
func Iterable(v Value) ([]Value, bool) {
	switch t := v.(type) {
	case *List:
		return t.Items, true
	case Tuple:
		return []Value(t), true
	case *Set:
		return t.Items(), true
	case Range:
		return t.Values(), true
	case Str:
		runes := []rune(string(t))
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = Str(string(r))
		}
		return out, true
	default:
		return nil, false
	}
}
