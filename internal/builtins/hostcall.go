package builtins

import (
	"strings"

	"github.com/boklang/bok/internal/value"
)

// registerHostCalls wires PyCall-backed words: thin Go functions exposed to
// bok source through the args/kwargs buffers `>*`/`>**` populate. tpl is the
// reachable demonstration of that bridge — `>*` stages its template string,
// `>**` stages its substitution values, and tpl itself is a *value.PyCall
// whose Call sees ArgsLoaded true and dispatches through Fn instead of
// inspecting the stack top.
func registerHostCalls(d *value.Dictionary) {
	d.Set("tpl", &value.PyCall{
		Name: "tpl",
		Doc:  "( -- str ) format a template staged via >* against names staged via >**",
		Fn: func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, value.ArgumentError{Message: "tpl: expected exactly one template string staged via >*"}
			}
			tpl, ok := args[0].(value.Str)
			if !ok {
				return nil, value.TypeMismatchError{Op: "tpl", Got: args[0], Want: "str"}
			}
			out := string(tpl)
			for name, v := range kwargs {
				out = strings.ReplaceAll(out, "{"+name+"}", value.Display(v))
			}
			return value.Str(out), nil
		},
	})
}
