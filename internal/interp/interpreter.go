// Package interp implements golox's tree-walking evaluator: the final
// pipeline stage that executes a resolved AST against a live environment.
package interp

import (
	"fmt"

	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/builtins"
	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/runtime"
	"github.com/sdcook/golox/internal/token"
)

// runtimeError is the single panic payload the interpreter ever raises
// for user-visible faults. It is recovered at the top of Interpret so a
// bad statement doesn't unwind past the program boundary: the whole
// program aborts at the first uncaught runtime error.
type runtimeError struct {
	tok     token.Token
	message string
}

func (e *runtimeError) Error() string { return e.message }

// Interpreter walks a resolved program, evaluating expressions and
// executing statements against a chain of Environments. It implements
// runtime.Evaluator so Callables (Function, Class) can run statement
// bodies without the runtime package importing interp.
type Interpreter struct {
	sink    *errors.Sink
	locals  map[ast.Expr]int
	globals *runtime.Environment
	env     *runtime.Environment
}

// New creates an Interpreter reporting to sink, with globals seeded with
// golox's native functions and locals taken from a prior resolver pass.
func New(sink *errors.Sink, locals map[ast.Expr]int) *Interpreter {
	globals := runtime.NewEnvironment()
	builtins.Seed(globals)
	return &Interpreter{
		sink:    sink,
		locals:  locals,
		globals: globals,
		env:     globals,
	}
}

// Interpret runs a whole program's statement list, reporting exactly one
// runtime error (if any) through the sink and then stopping.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(*runtimeError)
			if !ok {
				panic(r)
			}
			in.sink.RuntimeError(rerr.tok.Line, rerr.message)
		}
	}()
	for _, s := range stmts {
		in.execute(s)
	}
}

func (in *Interpreter) throw(tok token.Token, format string, args ...any) {
	panic(&runtimeError{tok: tok, message: fmt.Sprintf(format, args...)})
}

// execute dispatches a single statement.
func (in *Interpreter) execute(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Expression:
		in.eval(n.Expr)
	case *ast.Print:
		v := in.eval(n.Expr)
		in.sink.Print(runtime.Stringify(v))
	case *ast.Var:
		var v runtime.Value = runtime.NilValue
		if n.Initializer != nil {
			v = in.eval(n.Initializer)
		}
		in.env.Define(n.Name.Lexeme, v)
	case *ast.Block:
		if sig := in.ExecuteBlock(n.Statements, runtime.NewEnclosedEnvironment(in.env)); sig.IsReturn {
			panic(sig)
		}
	case *ast.If:
		if runtime.Truthy(in.eval(n.Cond)) {
			in.execute(n.Then)
		} else if n.Else != nil {
			in.execute(n.Else)
		}
	case *ast.While:
		for runtime.Truthy(in.eval(n.Cond)) {
			in.execute(n.Body)
		}
	case *ast.Function:
		fn := &runtime.Function{Name: n.Name.Lexeme, Params: n.Params, Body: n.Body, Closure: in.env}
		in.env.Define(n.Name.Lexeme, fn)
	case *ast.Return:
		var v runtime.Value = runtime.NilValue
		if n.Value != nil {
			v = in.eval(n.Value)
		}
		panic(runtime.Signal{IsReturn: true, Value: v})
	case *ast.Class:
		in.executeClass(n)
	default:
		panic("interp: unhandled statement node")
	}
}

func (in *Interpreter) executeClass(n *ast.Class) {
	var super *runtime.Class
	if n.Superclass != nil {
		v := in.eval(n.Superclass)
		sc, ok := v.(*runtime.Class)
		if !ok {
			in.throw(n.Superclass.Name, "Superclass must be a class.")
		}
		super = sc
	}

	in.env.Define(n.Name.Lexeme, runtime.NilValue)

	classEnv := in.env
	if n.Superclass != nil {
		classEnv = runtime.NewEnclosedEnvironment(in.env)
		classEnv.Define("super", super)
	}

	methods := make(map[string]*runtime.Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &runtime.Function{
			Name:          m.Name.Lexeme,
			Params:        m.Params,
			Body:          m.Body,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &runtime.Class{Name: n.Name.Lexeme, Superclass: super, Methods: methods}
	in.env.Assign(n.Name.Lexeme, class)
}

// ExecuteBlock runs stmts against env, restoring the interpreter's prior
// environment on every exit path (normal, return, or runtime-error
// panic), and reports the block's control-flow outcome as a Signal so a
// Callable's Call can distinguish "fell off the end" from "returned".
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *runtime.Environment) (sig runtime.Signal) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(runtime.Signal); ok {
				sig = s
				return
			}
			panic(r)
		}
	}()

	for _, s := range stmts {
		in.execute(s)
	}
	return runtime.Signal{}
}

// eval dispatches a single expression.
func (in *Interpreter) eval(e ast.Expr) runtime.Value {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value)
	case *ast.Grouping:
		return in.eval(n.Inner)
	case *ast.Variable:
		return in.lookupVariable(n.Name, n)
	case *ast.Assign:
		v := in.eval(n.Value)
		if hops, ok := in.locals[n]; ok {
			in.env.AssignAt(hops, n.Name.Lexeme, v)
		} else if err := in.globals.Assign(n.Name.Lexeme, v); err != nil {
			in.throw(n.Name, "%s", err.Error())
		}
		return v
	case *ast.Logical:
		left := in.eval(n.Left)
		if n.Op.Type == token.Or {
			if runtime.Truthy(left) {
				return left
			}
		} else if !runtime.Truthy(left) {
			return left
		}
		return in.eval(n.Right)
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Call:
		return in.evalCall(n)
	case *ast.Get:
		obj := in.eval(n.Object)
		inst, ok := obj.(*runtime.Instance)
		if !ok {
			in.throw(n.Name, "Only instances have properties.")
		}
		v, ok := inst.Get(n.Name.Lexeme)
		if !ok {
			in.throw(n.Name, "Undefined property '%s'.", n.Name.Lexeme)
		}
		return v
	case *ast.Set:
		obj := in.eval(n.Object)
		inst, ok := obj.(*runtime.Instance)
		if !ok {
			in.throw(n.Name, "Only instances have fields.")
		}
		v := in.eval(n.Value)
		inst.Set(n.Name.Lexeme, v)
		return v
	case *ast.This:
		return in.lookupVariable(n.Keyword, n)
	case *ast.Super:
		return in.evalSuper(n)
	case *ast.AnonymousFunction:
		return &runtime.Function{Params: n.Params, Body: n.Body, Closure: in.env}
	default:
		panic("interp: unhandled expression node")
	}
}

func literalValue(v any) runtime.Value {
	switch lv := v.(type) {
	case nil:
		return runtime.NilValue
	case bool:
		return runtime.Bool(lv)
	case float64:
		return runtime.Number(lv)
	case string:
		return runtime.String(lv)
	default:
		panic(fmt.Sprintf("interp: unexpected literal payload %T", v))
	}
}

func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) runtime.Value {
	if hops, ok := in.locals[expr]; ok {
		return in.env.GetAt(hops, name.Lexeme)
	}
	v, err := in.globals.Get(name.Lexeme)
	if err != nil {
		in.throw(name, "%s", err.Error())
	}
	return v
}

func (in *Interpreter) evalUnary(n *ast.Unary) runtime.Value {
	operand := in.eval(n.Operand)
	switch n.Op.Type {
	case token.Minus:
		num, ok := operand.(runtime.Number)
		if !ok {
			in.throw(n.Op, "Operand must be a number.")
		}
		return -num
	case token.Bang:
		return runtime.Bool(!runtime.Truthy(operand))
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalBinary(n *ast.Binary) runtime.Value {
	left := in.eval(n.Left)
	right := in.eval(n.Right)

	switch n.Op.Type {
	case token.Plus:
		if ln, ok := left.(runtime.Number); ok {
			if rn, ok := right.(runtime.Number); ok {
				return ln + rn
			}
		}
		if _, ok := left.(runtime.String); ok {
			return runtime.String(runtime.Stringify(left) + runtime.Stringify(right))
		}
		if _, ok := right.(runtime.String); ok {
			return runtime.String(runtime.Stringify(left) + runtime.Stringify(right))
		}
		in.throw(n.Op, "Operands must be two numbers or two strings.")
	case token.Minus:
		ln, rn := in.numberOperands(n.Op, left, right)
		return ln - rn
	case token.Star:
		ln, rn := in.numberOperands(n.Op, left, right)
		return ln * rn
	case token.Slash:
		ln, rn := in.numberOperands(n.Op, left, right)
		if rn == 0 {
			in.throw(n.Op, "Value cannot be zero")
		}
		return ln / rn
	case token.Greater:
		ln, rn := in.numberOperands(n.Op, left, right)
		return runtime.Bool(ln > rn)
	case token.GreaterEqual:
		ln, rn := in.numberOperands(n.Op, left, right)
		return runtime.Bool(ln >= rn)
	case token.Less:
		ln, rn := in.numberOperands(n.Op, left, right)
		return runtime.Bool(ln < rn)
	case token.LessEqual:
		ln, rn := in.numberOperands(n.Op, left, right)
		return runtime.Bool(ln <= rn)
	case token.EqualEqual:
		return runtime.Bool(runtime.Equal(left, right))
	case token.BangEqual:
		return runtime.Bool(!runtime.Equal(left, right))
	}
	panic("interp: unhandled binary operator")
}

func (in *Interpreter) numberOperands(op token.Token, left, right runtime.Value) (runtime.Number, runtime.Number) {
	ln, lok := left.(runtime.Number)
	rn, rok := right.(runtime.Number)
	if !lok || !rok {
		in.throw(op, "Operands must be numbers.")
	}
	return ln, rn
}

func (in *Interpreter) evalCall(n *ast.Call) runtime.Value {
	callee := in.eval(n.Callee)

	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = in.eval(a)
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		in.throw(n.Paren, "Can only call functions and classes")
	}
	if len(args) != callable.Arity() {
		in.throw(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(n *ast.Super) runtime.Value {
	hops := in.locals[n]
	superVal := in.env.GetAt(hops, "super")
	super, ok := superVal.(*runtime.Class)
	if !ok {
		panic("interp: 'super' binding is not a class")
	}
	thisVal := in.env.GetAt(hops-1, "this")
	instance, ok := thisVal.(*runtime.Instance)
	if !ok {
		panic("interp: 'this' binding is not an instance")
	}

	method := super.FindMethod(n.Method.Lexeme)
	if method == nil {
		in.throw(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.Bind(instance)
}
