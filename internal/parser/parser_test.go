package parser

import (
	"bytes"
	"testing"

	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/lexer"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *errors.Sink) {
	t.Helper()
	var out, errOut bytes.Buffer
	sink := errors.NewSink(&out, &errOut)
	toks := lexer.New(source, sink).ScanTokens()
	stmts := New(toks, sink).Parse()
	return stmts, sink
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, sink := parse(t, `var x = 1 + 2;`)
	if sink.HadError {
		t.Fatalf("unexpected parse error")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("got %T, want *ast.Var", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Errorf("got name %q, want x", v.Name.Lexeme)
	}
	if ast.Print(v.Initializer) != "(+ 1 2)" {
		t.Errorf("got initializer %q", ast.Print(v.Initializer))
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if sink.HadError {
		t.Fatalf("unexpected parse error")
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok || len(block.Statements) != 2 {
		t.Fatalf("expected a desugared init+while block, got %#v", stmts[0])
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Errorf("first statement should be the loop's var init, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("second statement should be *ast.While, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.Block)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("while body should bundle the print and the increment, got %#v", whileStmt.Body)
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, sink := parse(t, `class Sub < Base { init() { this.x = 1; } }`)
	if sink.HadError {
		t.Fatalf("unexpected parse error")
	}
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("got %T, want *ast.Class", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "Base" {
		t.Fatalf("expected superclass Base, got %#v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "init" {
		t.Fatalf("expected a single init method, got %#v", class.Methods)
	}
}

func TestParseAnonymousFunctionExpression(t *testing.T) {
	stmts, sink := parse(t, `var f = fun (a, b) { return a + b; };`)
	if sink.HadError {
		t.Fatalf("unexpected parse error")
	}
	v := stmts[0].(*ast.Var)
	fn, ok := v.Initializer.(*ast.AnonymousFunction)
	if !ok {
		t.Fatalf("got %T, want *ast.AnonymousFunction", v.Initializer)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
}

func TestParseMissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	stmts, sink := parse(t, "var x = 1\nvar y = 2;")
	if !sink.HadError {
		t.Fatalf("expected a parse error for the missing semicolon")
	}
	// Recovery should still yield the second, well-formed declaration.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected synchronize() to recover and parse 'var y', got %#v", stmts)
	}
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, sink := parse(t, `1 + 2 = 3;`)
	if !sink.HadError {
		t.Fatalf("expected an invalid-assignment-target error")
	}
}

func TestParseExpressionEntryPoint(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := errors.NewSink(&out, &errOut)
	toks := lexer.New("1 + 2 * 3", sink).ScanTokens()
	p := New(toks, sink)
	expr := p.ParseExpression()
	if sink.HadError {
		t.Fatalf("unexpected parse error")
	}
	if ast.Print(expr) != "(+ 1 (* 2 3))" {
		t.Errorf("got %q", ast.Print(expr))
	}
}
