package runtime

import (
	"fmt"

	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/token"
)

// Function is a user-defined callable: a named or anonymous function
// declaration closed over the environment active when it was declared.
type Function struct {
	Name          string // "" for an anonymous function
	Params        []token.Token
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "function" }

// String renders the function as "<fn name>". An anonymous function has no
// name, matching jlox's convention of printing an empty name slot.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity is the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Params)
}

// Call creates a fresh child frame, binds parameters positionally,
// executes the body, and returns the carried Signal's value. Initializers
// always yield `this` regardless of what (if anything) `init` returns.
func (f *Function) Call(ev Evaluator, args []Value) Value {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Params {
		env.Define(param.Lexeme, args[i])
	}

	sig := ev.ExecuteBlock(f.Body, env)

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	if sig.IsReturn {
		return sig.Value
	}
	return NilValue
}

// Bind produces a new closure whose enclosing frame defines `this` as
// instance, used when a method is looked up off an instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}
