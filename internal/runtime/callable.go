package runtime

import "github.com/sdcook/golox/internal/ast"

// Callable is the capability required to appear on the left of a call
// expression: functions, methods, classes, and native built-ins.
type Callable interface {
	Value
	Arity() int
	Call(ev Evaluator, args []Value) Value
}

// Signal carries a statement block's control-flow outcome upward: either
// "keep going" (IsReturn == false) or "a return statement fired, carrying
// Value". It is a non-local control-flow signal, not an error.
type Signal struct {
	IsReturn bool
	Value    Value
}

// Evaluator is the capability a Callable needs from the interpreter to
// run its body: execute a block of statements against a given
// environment and report how it left off. Defining this here (rather
// than importing internal/interp) keeps runtime a leaf package with no
// dependency on the interpreter, avoiding an import cycle.
type Evaluator interface {
	ExecuteBlock(body []ast.Stmt, env *Environment) Signal
}
