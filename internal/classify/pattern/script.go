package pattern

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/pageforge/recast/internal/dom"
)

// ScriptPredicate is a CSSPredicate authored as a JavaScript expression,
// compiled once at pattern load time and evaluated in a throwaway sandboxed
// VM per element. The script sees:
//
//	style    object of resolved CSS property -> value
//	tag      element tag name
//	classes  array of class tokens
//	text     trimmed subtree text
//	attr(k)  attribute lookup, "" when absent
//	count(s) number of subtree matches for a selector
//
// The last evaluated expression is coerced to boolean. Any thrown exception
// or runtime fault fails closed: the predicate reports an error and the
// pattern is treated as non-matching for that element.
type ScriptPredicate struct {
	name string
	prog *goja.Program
}

// CompileScript compiles src eagerly so authoring errors surface at load
// time, never during classification.
func CompileScript(name, src string) (*ScriptPredicate, error) {
	prog, err := goja.Compile(name, src, true)
	if err != nil {
		return nil, &MalformedPatternError{Pattern: name, Reason: fmt.Sprintf("script compile: %v", err)}
	}
	return &ScriptPredicate{name: name, prog: prog}, nil
}

// Predicate adapts the compiled script to the CSSPredicate interface.
func (s *ScriptPredicate) Predicate() CSSPredicate {
	return func(style dom.StyleSnapshot, el *dom.ElementNode) (bool, error) {
		vm := goja.New()

		// No host escape hatches inside predicate scripts.
		vm.Set("require", goja.Undefined())
		vm.Set("process", goja.Undefined())
		vm.Set("module", goja.Undefined())
		vm.Set("exports", goja.Undefined())

		styleObj := make(map[string]string, len(style))
		for k, v := range style {
			styleObj[k] = v
		}
		vm.Set("style", styleObj)
		vm.Set("tag", el.Tag)
		vm.Set("classes", el.Classes)
		vm.Set("text", el.Text())
		vm.Set("attr", func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue("")
			}
			v, _ := el.Attr(call.Arguments[0].String())
			return vm.ToValue(v)
		})
		vm.Set("count", func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return vm.ToValue(0)
			}
			return vm.ToValue(el.Count(call.Arguments[0].String()))
		})

		val, err := vm.RunProgram(s.prog)
		if err != nil {
			return false, fmt.Errorf("script predicate %q: %w", s.name, err)
		}
		if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
			return false, nil
		}
		return val.ToBoolean(), nil
	}
}
