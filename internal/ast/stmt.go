package ast

import "github.com/sdcook/golox/internal/token"

// Stmt is the closed set of statement node types.
type Stmt interface {
	stmtNode()
}

// Expression evaluates expr and discards the result.
type Expression struct {
	Expr Expr
}

// Print evaluates expr and writes its stringified value followed by a
// newline.
type Print struct {
	Expr Expr
}

// Var declares a local or global binding, optionally initialized.
// Initializer is nil when the declaration has no `= expr`.
type Var struct {
	Name        token.Token
	Initializer Expr
}

// Block executes its statements in a fresh child environment.
type Block struct {
	Statements []Stmt
}

// If runs Then when Cond is truthy, else Else (nil when there is no
// `else` clause).
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// While repeatedly runs Body while Cond is truthy. `for` loops desugar
// into this node.
type While struct {
	Cond Expr
	Body Stmt
}

// Function declares a named function and binds it in the current frame.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Return unwinds to the nearest enclosing call, carrying Value (nil when
// the statement has no expression).
type Return struct {
	Keyword token.Token
	Value   Expr
}

// Class declares a class, its optional superclass, and its methods.
// Superclass is always either nil or a *Variable.
type Class struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*Function
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
