// Package resolver implements golox's static resolution pass: binding
// each variable reference to a scope-distance before the interpreter ever
// runs.
package resolver

import (
	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps each name declared in one local scope to whether it has
// merely been declared (false: the slot is reserved, used to catch
// `var x = x;`) or fully defined (true).
type scope map[string]bool

// Resolver performs a single walk over the program, populating Locals as
// it goes.
type Resolver struct {
	sink  *errors.Sink
	scopes []scope

	// Locals maps an expression node's identity to the number of
	// enclosing-environment hops the interpreter must skip to find its
	// binding. An absent entry means the reference is global.
	Locals map[ast.Expr]int

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver reporting errors to sink.
func New(sink *errors.Sink) *Resolver {
	return &Resolver{sink: sink, Locals: make(map[ast.Expr]int)}
}

// Resolve walks a whole program's statement list.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Expression:
		r.resolveExpr(n.Expr)
	case *ast.Print:
		r.resolveExpr(n.Expr)
	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.While:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)
	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n.Params, n.Body, functionFunction)
	case *ast.Return:
		if r.currentFunction == functionNone {
			r.sink.TokenError(n.Keyword.Line, n.Keyword.Lexeme, false, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == functionInitializer {
				r.sink.TokenError(n.Keyword.Line, n.Keyword.Lexeme, false, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}
	case *ast.Class:
		r.resolveClass(n)
	default:
		panic("resolver: unhandled statement node")
	}
}

func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.sink.TokenError(n.Superclass.Name.Line, n.Superclass.Name.Lexeme, false, "Class cannot inherit from itself")
		}
		r.currentClass = classSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range n.Methods {
		fnType := functionMethod
		if method.Name.Lexeme == "init" {
			fnType = functionInitializer
		}
		r.resolveFunction(method.Params, method.Body, fnType)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, fnType functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = fnType

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Grouping:
		r.resolveExpr(n.Inner)
	case *ast.Unary:
		r.resolveExpr(n.Operand)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; declared && !defined {
				r.sink.TokenError(n.Name.Line, n.Name.Lexeme, false, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name)
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.sink.TokenError(n.Keyword.Line, n.Keyword.Lexeme, false, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, n.Keyword)
	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.sink.TokenError(n.Keyword.Line, n.Keyword.Lexeme, false, "Can't use 'super' outside of a class.")
			return
		case classClass:
			r.sink.TokenError(n.Keyword.Line, n.Keyword.Lexeme, false, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(n, n.Keyword)
	case *ast.AnonymousFunction:
		r.resolveFunction(n.Params, n.Body, functionFunction)
	default:
		panic("resolver: unhandled expression node")
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare reserves name in the current local scope without marking it
// ready for reads yet. A duplicate declaration in the same scope is
// reported but does not abort resolution.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.sink.TokenError(name.Line, name.Lexeme, false, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches scopes innermost-out for name, recording the hop
// count on expr's identity. An unfound name is left unrecorded, meaning
// "global".
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
