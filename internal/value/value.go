// Package value implements the tagged value universe, the Dictionary, the
// Callable variants, and the operand Stack that together form the
// language's runtime data model. Value is deliberately a thin marker
// interface rather than a sealed enum: a Quotation and a List must be the
// same structural type with callability discovered dynamically at
// iteration, and a closed sum type would fight that requirement.
package value

import (
	"fmt"
	"strconv"
)

// Value is any first-class bok value: Integer, Float, Boolean, String, None,
// List, Tuple, Set, Mapping, Range, Slice, or a Callable. Every concrete
// variant in this package implements it.
type Value interface {
	// Repr returns the bok `repr` form (what `repr` and the REPL's `stack`
	// command print).
	Repr() string
}

// Int is the Integer variant.
type Int int64

// Float is the Float variant.
type Float float64

// Bool is the Boolean variant.
type Bool bool

// Str is the String variant.
type Str string

// NoneValue is the None variant; None is its canonical instance.
type NoneValue struct{}

// None is the sole value of the None variant.
var None = NoneValue{}

func (v Int) Repr() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) Repr() string { return formatFloat(float64(v)) }
func (v Bool) Repr() string {
	if v {
		return "True"
	}
	return "False"
}
func (v Str) Repr() string     { return strconv.Quote(string(v)) }
func (NoneValue) Repr() string { return "None" }

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return s
		}
	}
	return s + ".0"
}

// TypeName returns the bok type name of v, mirroring Python's
// type(val).__name__.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Str:
		return "str"
	case NoneValue:
		return "NoneType"
	case *List:
		return "list"
	case Tuple:
		return "tuple"
	case *Set:
		return "set"
	case *Mapping:
		return "dict"
	case Range:
		return "range"
	case Slice:
		return "slice"
	case *Vector:
		return "vector"
	default:
		if _, ok := v.(Callable); ok {
			return "callable"
		}
		return fmt.Sprintf("%T", v)
	}
}

// Truthy implements bok's truthiness: None, false, zero numbers, and empty
// strings/collections are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case NoneValue:
		return false
	case Bool:
		return bool(t)
	case Int:
		return t != 0
	case Float:
		return t != 0
	case Str:
		return t != ""
	case *List:
		return len(t.Items) != 0
	case Tuple:
		return len(t) != 0
	case *Set:
		return t.Len() != 0
	case *Mapping:
		return t.Len() != 0
	case Range:
		return t.Len() != 0
	default:
		return true
	}
}

// Equal implements bok's `==` for the value universe: numeric variants
// compare by value across Int/Float/Bool, everything else structurally via
// Repr (a pragmatic stand-in for Python's deep equality, sufficient for the
// hashable-by-repr Set/Mapping keys this package also uses).
func Equal(a, b Value) bool {
	if an, aIsNum := asFloat(a); aIsNum {
		if bn, bIsNum := asFloat(b); bIsNum {
			return an == bn
		}
	}
	return a.Repr() == b.Repr()
}

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	case Bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
