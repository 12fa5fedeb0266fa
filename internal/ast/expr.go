// Package ast defines golox's abstract syntax tree: the Expr and Stmt
// variant families produced by the parser and walked by the resolver and
// interpreter.
//
// Dispatch is external (a tagged-variant switch in the resolver and
// interpreter) rather than a method per node, so this package stays a
// leaf with no dependency on runtime or interp.
package ast

import "github.com/sdcook/golox/internal/token"

// Expr is the closed set of expression node types. Each concrete type's
// pointer identity is what the resolver keys its distance table on.
type Expr interface {
	exprNode()
}

// Literal holds a scanned constant: number, string, boolean, or nil.
type Literal struct {
	Value any // float64, string, bool, or nil
}

// Unary is a prefix operator application: `!x` or `-x`.
type Unary struct {
	Op      token.Token
	Operand Expr
}

// Binary is an infix operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is `and`/`or`, which short-circuit instead of eagerly
// evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized sub-expression, kept distinct from its
// inner expression so the canonical printer can round-trip it.
type Grouping struct {
	Inner Expr
}

// Variable is a read of a named binding.
type Variable struct {
	Name token.Token
}

// Assign writes a value to a named binding and yields that value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Call applies a callee to a list of evaluated arguments. Paren is kept
// for error reporting (it's the call-site token nearest the argument
// list).
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Get reads a property off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set writes a property on an instance and yields the assigned value.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// This is a `this` reference inside a method body.
type This struct {
	Keyword token.Token
}

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

// AnonymousFunction is a `fun (params) { body }` expression: a function
// value with no declared name.
type AnonymousFunction struct {
	Keyword token.Token
	Params  []token.Token
	Body    []Stmt
}

func (*Literal) exprNode()           {}
func (*Unary) exprNode()             {}
func (*Binary) exprNode()            {}
func (*Logical) exprNode()           {}
func (*Grouping) exprNode()          {}
func (*Variable) exprNode()          {}
func (*Assign) exprNode()            {}
func (*Call) exprNode()              {}
func (*Get) exprNode()               {}
func (*Set) exprNode()               {}
func (*This) exprNode()              {}
func (*Super) exprNode()             {}
func (*AnonymousFunction) exprNode() {}
