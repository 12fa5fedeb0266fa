package resolver

import (
	"bytes"
	"testing"

	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/lexer"
	"github.com/sdcook/golox/internal/parser"
)

func resolve(t *testing.T, source string) ([]ast.Stmt, *Resolver, *errors.Sink) {
	t.Helper()
	var out, errOut bytes.Buffer
	sink := errors.NewSink(&out, &errOut)
	toks := lexer.New(source, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	res := New(sink)
	res.Resolve(stmts)
	return stmts, res, sink
}

func TestResolveLocalRecordsHopDistance(t *testing.T) {
	stmts, res, sink := resolve(t, `{
		var a = 1;
		{
			print a;
		}
	}`)
	if sink.HadError {
		t.Fatalf("unexpected resolve error")
	}
	outer := stmts[0].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	printStmt := inner.Statements[0].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	hops, ok := res.Locals[variable]
	if !ok {
		t.Fatalf("expected a recorded local for 'a'")
	}
	if hops != 1 {
		t.Errorf("got hops %d, want 1", hops)
	}
}

func TestResolveGlobalIsNotRecorded(t *testing.T) {
	stmts, res, sink := resolve(t, `var a = 1; print a;`)
	if sink.HadError {
		t.Fatalf("unexpected resolve error")
	}
	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	if _, ok := res.Locals[variable]; ok {
		t.Errorf("global reference should not appear in Locals")
	}
}

func TestResolveOwnInitializerIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `{ var a = a; }`)
	if !sink.HadError {
		t.Fatalf("expected an error reading a local in its own initializer")
	}
}

func TestResolveDuplicateLocalIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `{ var a = 1; var a = 2; }`)
	if !sink.HadError {
		t.Fatalf("expected a duplicate-local error")
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `return 1;`)
	if !sink.HadError {
		t.Fatalf("expected a top-level-return error")
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `print this;`)
	if !sink.HadError {
		t.Fatalf("expected a this-outside-class error")
	}
}

func TestResolveClassInheritingFromItselfIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `class Oops < Oops {}`)
	if !sink.HadError {
		t.Fatalf("expected a self-inheritance error")
	}
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, sink := resolve(t, `class A { bad() { super.foo(); } }`)
	if !sink.HadError {
		t.Fatalf("expected a super-without-superclass error")
	}
}

func TestResolveInitializerCannotReturnValue(t *testing.T) {
	_, _, sink := resolve(t, `class A { init() { return 1; } }`)
	if !sink.HadError {
		t.Fatalf("expected an initializer-cannot-return-value error")
	}
}
