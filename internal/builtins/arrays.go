package builtins

import (
	"math"

	"github.com/boklang/bok/internal/value"
)

// registerArrays seeds the Dictionary with the `@name` array-literal
// backends: each resolves to an ArrayWrapper over a elementwise math
// function, dispatched against a Vector, a bare scalar, or any other
// iterable per ArrayWrapper.Call.
func registerArrays(d *value.Dictionary) {
	fns := map[string]value.ArrayFn{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"exp":   math.Exp,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"trunc": math.Trunc,
		"abs":   math.Abs,
	}
	for name, fn := range fns {
		d.Set("@"+name, &value.ArrayWrapper{Name: name, Doc: "elementwise " + name, Fn: fn})
	}
}
