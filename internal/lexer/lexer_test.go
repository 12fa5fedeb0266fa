package lexer

import (
	"bytes"
	"testing"

	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/token"
)

func scan(t *testing.T, source string) ([]token.Token, *errors.Sink) {
	t.Helper()
	var out, errOut bytes.Buffer
	sink := errors.NewSink(&out, &errOut)
	toks := New(source, sink).ScanTokens()
	return toks, sink
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	toks, sink := scan(t, "(){},.-+;*!= == <= >=")
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}

	want := []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.BangEqual, token.EqualEqual, token.LessEqual,
		token.GreaterEqual, token.Eof,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, typ)
		}
	}
}

func TestScanTokensSkipsLineComment(t *testing.T) {
	toks, sink := scan(t, "// a whole comment\nvar")
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}
	if len(toks) != 2 || toks[0].Type != token.Var || toks[1].Type != token.Eof {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Line != 2 {
		t.Errorf("got line %d, want 2", toks[0].Line)
	}
}

func TestScanTokensString(t *testing.T) {
	toks, sink := scan(t, `"hello world"`)
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}
	if toks[0].Type != token.String || toks[0].Literal != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, sink := scan(t, `"unterminated`)
	if !sink.HadError {
		t.Fatalf("expected a scan error")
	}
}

func TestScanTokensNumber(t *testing.T) {
	toks, sink := scan(t, "123.45")
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}
	if toks[0].Type != token.Number || toks[0].Literal.(float64) != 123.45 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	toks, sink := scan(t, "class fun orchid")
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}
	if toks[0].Type != token.Class || toks[1].Type != token.Fun || toks[2].Type != token.Identifier {
		t.Fatalf("got %v", toks)
	}
	if toks[2].Lexeme != "orchid" {
		t.Errorf("got lexeme %q, want orchid (keyword prefix must not shadow longer identifiers)", toks[2].Lexeme)
	}
}

func TestScanTokensUnexpectedCharacterReportsAndContinues(t *testing.T) {
	toks, sink := scan(t, "@ var")
	if !sink.HadError {
		t.Fatalf("expected a scan error")
	}
	if len(toks) != 2 || toks[0].Type != token.Var {
		t.Fatalf("scanning should continue past the bad character, got %v", toks)
	}
}

func TestScanTokensStringLiteralBytesPassThroughUnnormalized(t *testing.T) {
	decomposed := "e\u0301" // "e" + combining acute accent, not normalized
	toks, sink := scan(t, `"`+decomposed+`"`)
	if sink.HadError {
		t.Fatalf("unexpected scan error")
	}
	if toks[0].Literal != decomposed {
		t.Errorf("got %q, want the exact decomposed bytes %q", toks[0].Literal, decomposed)
	}
}
