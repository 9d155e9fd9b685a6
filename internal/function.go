package internal

import (
	"fmt"
	"strings"
)

// nativeFunction wraps a Go closure as a Callable (grounded on the teacher's
// grotskyGlobals.go native-function shape). NewInterpreter installs none,
// and nothing in this module constructs one.
type nativeFunction struct {
	name     string
	arity    int
	function func(interp *Interpreter, arguments []Value) Value
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(interp *Interpreter, arguments []Value, paren Token) Value {
	return n.function(interp, arguments)
}

func (n *nativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

// function is a user-defined function or method value: the declaration AST
// plus the environment it closed over. Grounded on the teacher's
// internal/function.go function/call shape, adapted to return through a
// *returnSignal instead of a recovered panic.
type function struct {
	declaration   *functionStmt
	closure       *environment
	isInitializer bool
}

func (f *function) Arity() int {
	return len(f.declaration.params)
}

func (f *function) Call(interp *Interpreter, arguments []Value, paren Token) Value {
	env := newEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.define(param.Lexeme, arguments[i])
	}

	sig := interp.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}

	if ret, ok := sig.(*returnSignal); ok {
		return ret.value
	}
	return nil
}

// bind returns a copy of f whose closure has "this" bound to instance and
// encloses f's own closure (where a subclass method finds "super") — used when a method is looked up off an
// instance, matching the teacher's function.bind.
func (f *function) bind(instance *Instance) *function {
	env := newEnvironment(f.closure)
	env.define("this", instance)
	return &function{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *function) String() string {
	params := make([]string, len(f.declaration.params))
	for i, p := range f.declaration.params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("<fn %s(%s)>", f.declaration.name.Lexeme, strings.Join(params, ","))
}
